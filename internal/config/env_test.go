package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// empty integers fall back to their defaults
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("BATCH_WORKERS", "")
	t.Setenv("BUCKET_NAME", "")

	cfg := LoadConfig()
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 4, cfg.BatchWorkers)
	assert.False(t, cfg.ObjectStorageEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/tmp/reports")
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("AWS_ACCESS_KEY", "key")
	t.Setenv("AWS_SECRET_KEY", "secret")
	t.Setenv("BUCKET_NAME", "reports")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/reports", cfg.UploadDir)
	assert.Equal(t, 8, cfg.BatchWorkers)
	assert.True(t, cfg.ObjectStorageEnabled())
}

func TestGetEnvInt_MalformedFallsBack(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "many")
	assert.Equal(t, 4, getEnvInt("BATCH_WORKERS", 4))
}
