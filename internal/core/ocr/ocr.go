// Package ocr renders PDF pages to images and recognizes their text.
//
// The Tesseract engine needs libtesseract headers at build time, so the real
// recognizer is only compiled with the "tesseract" build tag. Without it the
// recognizer reports ErrNotCompiled and the capability probe lists the engine
// as missing.
package ocr

import (
	"context"
	"errors"
)

const (
	// Scale is the linear upscale applied to every page before recognition.
	Scale = 2.0
	// BaseDPI is the native resolution of a PDF page (1 point = 1/72 inch).
	BaseDPI = 72.0
	// DefaultLanguage is the Tesseract language model used for reports.
	DefaultLanguage = "eng"
)

// ErrNotCompiled is returned by the recognizer in builds without the "tesseract" tag.
var ErrNotCompiled = errors.New("ocr: tesseract support not compiled in (build with -tags tesseract)")

// Rasterizer opens a PDF for page-by-page rendering.
type Rasterizer interface {
	Open(path string) (PageSet, error)
	// Probe renders a built-in one-page document to prove the renderer works.
	Probe() error
}

// PageSet is an opened document. Pages are zero-indexed.
type PageSet interface {
	NumPage() int
	// Render returns the page as an encoded PNG at Scale × native resolution.
	Render(page int) ([]byte, error)
	Close() error
}

// Recognizer turns an encoded page image into text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	// Probe verifies the engine and its language data can actually run.
	Probe() error
}
