package extraction

import (
	"fmt"
	"strings"

	"github.com/markdave123-py/reportvoice/internal/models"
)

// Kind classifies an extraction failure.
type Kind string

const (
	KindUnsupportedFormat      Kind = "UnsupportedFormat"
	KindEmptyDocument          Kind = "EmptyDocument"
	KindOCRUnavailable         Kind = "OcrUnavailable"
	KindOCRNoText              Kind = "OcrNoText"
	KindPDFExtractionExhausted Kind = "PdfExtractionExhausted"
	// KindReadFailed is returned when the only parser for a non-PDF format errors.
	KindReadFailed Kind = "ReadFailed"
)

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrUnsupportedFormat      = &Error{Kind: KindUnsupportedFormat}
	ErrEmptyDocument          = &Error{Kind: KindEmptyDocument}
	ErrOCRUnavailable         = &Error{Kind: KindOCRUnavailable}
	ErrOCRNoText              = &Error{Kind: KindOCRNoText}
	ErrPDFExtractionExhausted = &Error{Kind: KindPDFExtractionExhausted}
	ErrReadFailed             = &Error{Kind: KindReadFailed}
)

// Error is the typed failure returned by the pipeline.
type Error struct {
	Kind     Kind
	Reason   string
	Attempts []models.ExtractionAttempt
	Missing  []string // OCR components, for KindOCRUnavailable
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "extraction: %s", e.Kind)
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " (missing: %s)", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by Kind. An OcrNoText failure also matches
// ErrEmptyDocument: the scanned document was read and held no text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == KindEmptyDocument && e.Kind == KindOCRNoText {
		return true
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, reason string, attempts []models.ExtractionAttempt) *Error {
	return &Error{Kind: kind, Reason: reason, Attempts: attempts}
}
