//go:build !tesseract

package ocr

import "context"

type unavailableRecognizer struct{}

// NewRecognizer returns a recognizer that always reports ErrNotCompiled.
func NewRecognizer(languages ...string) Recognizer {
	return unavailableRecognizer{}
}

func (unavailableRecognizer) Recognize(context.Context, []byte) (string, error) {
	return "", ErrNotCompiled
}

func (unavailableRecognizer) Probe() error { return ErrNotCompiled }
