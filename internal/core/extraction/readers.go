package extraction

import (
	"context"
	"fmt"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// PlainTextStrategy reads the whole file, dropping invalid UTF-8 sequences.
func PlainTextStrategy() Strategy {
	return NewStrategy(StrategyPlainText, readPlainText)
}

// ParagraphStrategy reads doc/docx paragraphs in document order through docconv.
func ParagraphStrategy() Strategy {
	return NewStrategy(StrategyParagraphs, readParagraphs)
}

// LayoutStrategy is the primary PDF parser: embedded text per page via ledongthuc/pdf.
func LayoutStrategy() Strategy {
	return NewStrategy(StrategyLayout, readLayoutText)
}

// AlternateLayoutStrategy is the secondary PDF parser: poppler's pdftotext via docconv.
func AlternateLayoutStrategy() Strategy {
	return NewStrategy(StrategyAlternateLayout, readAlternateLayoutText)
}

func readPlainText(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}

func readParagraphs(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var body string
	switch extension(path) {
	case "docx":
		body, _, err = docconv.ConvertDocx(f)
	case "doc":
		body, _, err = docconv.ConvertDoc(f)
	default:
		return "", fmt.Errorf("not a structured document: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}
	return joinLines(strings.Split(body, "\n")), nil
}

func readLayoutText(_ context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return joinLines(pages), nil
}

func readAlternateLayoutText(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	body, _, err := docconv.ConvertPDF(f)
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with a form feed.
	return joinLines(strings.Split(body, "\f")), nil
}

// joinLines trims each block, drops empty ones and joins the rest with a newline.
func joinLines(blocks []string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n")
}
