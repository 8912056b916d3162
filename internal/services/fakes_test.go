package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/reportvoice/internal/models"
)

// fakeExtractor returns the staged file's bytes as text and records the path it saw.
type fakeExtractor struct {
	mu     sync.Mutex
	staged []string
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, doc models.Document) (*models.ExtractionResult, error) {
	return f.ExtractFile(ctx, doc.Path)
}

func (f *fakeExtractor) ExtractFile(_ context.Context, path string) (*models.ExtractionResult, error) {
	f.mu.Lock()
	f.staged = append(f.staged, path)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &models.ExtractionResult{Text: strings.TrimSpace(string(data)), Strategy: "plain-text"}, nil
}

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Generate(_ context.Context, _, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.reply, f.err
}

type fakeSpeech struct {
	err      error
	text     string
	language string
}

func (f *fakeSpeech) Synthesize(_ context.Context, text, languageCode string) (*models.Audio, error) {
	f.text, f.language = text, languageCode
	if f.err != nil {
		return nil, f.err
	}
	return &models.Audio{Filename: "a.mp3", Language: languageCode}, nil
}

var errModel = errors.New("model overloaded")

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
