package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/markdave123-py/reportvoice/internal/models"
)

// AllowedExtensions lists the accepted upload extensions, without the dot.
var AllowedExtensions = []string{"txt", "pdf", "doc", "docx"}

// DetectFormat maps a file name to its declared format by extension, case-insensitively.
func DetectFormat(name string) (models.Format, error) {
	ext := extension(name)
	switch ext {
	case "txt":
		return models.FormatPlainText, nil
	case "doc", "docx":
		return models.FormatStructured, nil
	case "pdf":
		return models.FormatPDF, nil
	}
	return "", newError(KindUnsupportedFormat, fmt.Sprintf("unsupported file format: %q", ext), nil)
}

// Allowed reports whether name carries one of AllowedExtensions.
func Allowed(name string) bool {
	_, err := DetectFormat(name)
	return err == nil
}

// NewDocument describes the file at path. The format is checked before the
// file is touched, so an unsupported extension never reaches the filesystem.
func NewDocument(path string) (models.Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return models.Document{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return models.Document{}, fmt.Errorf("stat document: %s is a directory", path)
	}
	return models.Document{
		Path:   path,
		Name:   filepath.Base(path),
		Format: format,
		Size:   info.Size(),
	}, nil
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
