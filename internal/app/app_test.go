package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/reportvoice/internal/config"
)

func TestOCRLanguages(t *testing.T) {
	assert.Equal(t, []string{"eng", "fra"}, ocrLanguages("eng+fra"))
	assert.Equal(t, []string{"eng"}, ocrLanguages(" eng "))
	assert.Equal(t, []string{"eng"}, ocrLanguages(""))
}

func TestNewApp_WithoutOptionalServices(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		UploadDir:      filepath.Join(dir, "uploads"),
		AudioDir:       filepath.Join(dir, "audio"),
		MaxUploadBytes: 1 << 20,
		OCRLanguage:    "eng",
	}

	a, err := NewApp(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.ObjectClient)
	if !a.Pipeline.Capability().Available {
		assert.NotEmpty(t, a.Pipeline.Capability().Missing)
	}
	_, err = a.Reports()
	assert.ErrorIs(t, err, ErrLLMNotConfigured)

	src := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(src, []byte("IMPRESSION: No acute findings."), 0o600))

	in, err := a.Intake.Extract(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "IMPRESSION: No acute findings.", in.Result.Text)
}
