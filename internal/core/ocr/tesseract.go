//go:build tesseract

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer runs Tesseract through gosseract. A fresh client is
// created per page, so a single recognizer is safe for concurrent use.
type TesseractRecognizer struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

var _ Recognizer = (*TesseractRecognizer)(nil)

// NewRecognizer returns a Tesseract-backed recognizer for the given languages.
func NewRecognizer(languages ...string) Recognizer {
	if len(languages) == 0 {
		languages = []string{DefaultLanguage}
	}
	return &TesseractRecognizer{languages: languages, clientFactory: gosseract.NewClient}
}

func (t *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c := t.clientFactory()
	defer c.Close()

	if err := c.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// Probe initializes the engine with the configured language data against a
// blank page, which fails when the runtime or traineddata are missing.
func (t *TesseractRecognizer) Probe() error {
	if strings.TrimSpace(gosseract.Version()) == "" {
		return fmt.Errorf("tesseract: no version reported")
	}
	blank, err := encodePNG(blankPage())
	if err != nil {
		return err
	}
	if _, err := t.Recognize(context.Background(), blank); err != nil {
		return fmt.Errorf("tesseract: %w", err)
	}
	return nil
}
