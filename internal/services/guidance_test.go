package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markdave123-py/reportvoice/internal/core/extraction"
)

func TestGuidance(t *testing.T) {
	unavailable := &extraction.Error{Kind: extraction.KindOCRUnavailable, Missing: []string{"Tesseract OCR runtime"}}

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "unsupported", err: extraction.ErrUnsupportedFormat, contains: "File type not allowed"},
		{name: "ocr unavailable", err: fmt.Errorf("intake: %w", unavailable), contains: "Missing: Tesseract OCR runtime"},
		{name: "ocr no text", err: extraction.ErrOCRNoText, contains: "no text could be recognized"},
		{name: "exhausted", err: extraction.ErrPDFExtractionExhausted, contains: "could not be read"},
		{name: "empty", err: extraction.ErrEmptyDocument, contains: "contains no text"},
		{name: "read failed", err: extraction.ErrReadFailed, contains: "could not be parsed"},
		{name: "too large", err: ErrFileTooLarge, contains: "smaller than"},
		{name: "too short", err: ErrTextTooShort, contains: "full report text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, strings.Join(Guidance(tt.err), "\n"), tt.contains)
		})
	}
}

func TestGuidance_Unknown(t *testing.T) {
	assert.Nil(t, Guidance(errors.New("boom")))
}

func TestGuidance_ListsAcceptedExtensions(t *testing.T) {
	assert.Equal(t,
		[]string{"File type not allowed. Please upload .txt, .pdf, .doc, or .docx files."},
		Guidance(extraction.ErrUnsupportedFormat))
}
