package services

import (
	"errors"
	"strings"

	"github.com/markdave123-py/reportvoice/internal/core/extraction"
)

// Guidance turns a failure into suggestions a user can act on. It returns
// nil when there is nothing specific to say.
func Guidance(err error) []string {
	var xerr *extraction.Error
	if !errors.As(err, &xerr) {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			return []string{"Upload a file smaller than the configured limit, or paste the report text directly."}
		case errors.Is(err, ErrTextTooShort), errors.Is(err, ErrNoInput):
			return []string{"Paste the full report text, or upload the report as a " + extensionList() + " file."}
		}
		return nil
	}

	switch xerr.Kind {
	case extraction.KindUnsupportedFormat:
		return []string{"File type not allowed. Please upload " + extensionList() + " files."}
	case extraction.KindOCRUnavailable:
		out := []string{
			"This appears to be a scanned/image-based PDF.",
			"To process image-based PDFs, enable OCR support:",
			"1. Install MuPDF and the Tesseract OCR engine with its language data.",
			"2. Build with -tags tesseract.",
		}
		for _, m := range xerr.Missing {
			out = append(out, "Missing: "+m)
		}
		return append(out, "Alternatively, copy the report text and paste it directly.")
	case extraction.KindOCRNoText:
		return []string{
			"This appears to be a scanned/image-based PDF, but no text could be recognized.",
			"Try a higher quality scan, or paste the report text directly.",
		}
	case extraction.KindPDFExtractionExhausted:
		return []string{
			"The PDF could not be read. It may be damaged or password protected.",
			"Try re-exporting the PDF, or paste the report text directly.",
		}
	case extraction.KindEmptyDocument:
		return []string{"The document contains no text. Check that the right file was selected."}
	case extraction.KindReadFailed:
		return []string{"The document could not be parsed. Try saving it as .docx or .txt."}
	}
	return nil
}

// extensionList renders the accepted extensions as ".txt, .pdf, .doc, or .docx".
func extensionList() string {
	exts := make([]string, len(extraction.AllowedExtensions))
	for i, e := range extraction.AllowedExtensions {
		exts[i] = "." + e
	}
	if len(exts) < 2 {
		return strings.Join(exts, "")
	}
	return strings.Join(exts[:len(exts)-1], ", ") + ", or " + exts[len(exts)-1]
}
