package extraction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/reportvoice/internal/core/ocr"
)

// countingStrategy returns a fixed result and counts its invocations.
type countingStrategy struct {
	name  string
	text  string
	err   error
	panic string
	calls atomic.Int32
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Extract(context.Context, string) (string, error) {
	s.calls.Add(1)
	if s.panic != "" {
		panic(s.panic)
	}
	return s.text, s.err
}

// fakeRasterizer serves pages whose rendered "image" is the page index.
type fakeRasterizer struct {
	pages   int
	openErr error
	opens   atomic.Int32
}

func (r *fakeRasterizer) Open(string) (ocr.PageSet, error) {
	r.opens.Add(1)
	if r.openErr != nil {
		return nil, r.openErr
	}
	return fakePages{n: r.pages}, nil
}

func (r *fakeRasterizer) Probe() error { return nil }

type fakePages struct{ n int }

func (p fakePages) NumPage() int { return p.n }

func (p fakePages) Render(page int) ([]byte, error) {
	return []byte(strconv.Itoa(page)), nil
}

func (p fakePages) Close() error { return nil }

// fakeRecognizer maps a zero-based page index to recognized text or an error.
type fakeRecognizer struct {
	text  map[int]string
	errs  map[int]error
	calls atomic.Int32
}

func (r *fakeRecognizer) Recognize(_ context.Context, image []byte) (string, error) {
	r.calls.Add(1)
	page, err := strconv.Atoi(string(image))
	if err != nil {
		return "", fmt.Errorf("bad fake image %q", image)
	}
	if e, ok := r.errs[page]; ok {
		return "", e
	}
	return r.text[page], nil
}

func (r *fakeRecognizer) Probe() error { return nil }

var errEngine = errors.New("tesseract: recognition failed")

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
