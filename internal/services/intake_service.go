package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/core"
	"github.com/markdave123-py/reportvoice/internal/core/extraction"
	objectclient "github.com/markdave123-py/reportvoice/internal/core/object-client"
	"github.com/markdave123-py/reportvoice/internal/models"
)

var (
	ErrFileTooLarge         = errors.New("intake: file exceeds upload limit")
	ErrStorageNotConfigured = errors.New("intake: object storage not configured")
)

// Intake is the extraction result of one staged input.
type Intake struct {
	Name   string
	Result *models.ExtractionResult
}

// IntakeService stages a report into the upload directory, extracts it, and
// removes the staged copy.
type IntakeService struct {
	extractor core.DocumentExtractor
	storage   core.ObjectClient
	uploadDir string
	maxBytes  int64
	logger    zerolog.Logger
}

// NewIntakeService builds the service; storage may be nil when no bucket is
// configured, in which case s3:// inputs are rejected.
func NewIntakeService(extractor core.DocumentExtractor, storage core.ObjectClient, uploadDir string, maxBytes int64, logger zerolog.Logger) *IntakeService {
	return &IntakeService{
		extractor: extractor,
		storage:   storage,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		logger:    logger.With().Str("component", "intake").Logger(),
	}
}

// Extract accepts a local path or an object URI (s3://bucket/key).
func (s *IntakeService) Extract(ctx context.Context, source string) (*Intake, error) {
	bucket, key, remote := objectclient.ParseObjectURI(source)

	name := filepath.Base(source)
	if remote {
		name = path.Base(key)
	}
	if _, err := extraction.DetectFormat(name); err != nil {
		return nil, err
	}

	var (
		rc  io.ReadCloser
		err error
	)
	if remote {
		if s.storage == nil {
			return nil, ErrStorageNotConfigured
		}
		rc, err = s.storage.GetObjectReader(ctx, bucket, key)
	} else {
		rc, err = os.Open(source)
	}
	if err != nil {
		return nil, fmt.Errorf("intake: open %s: %w", source, err)
	}
	defer rc.Close()

	staged, err := s.stage(rc, name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(staged); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", staged).Msg("staged file not removed")
		}
	}()

	s.logger.Debug().Str("source", source).Str("staged", staged).Msg("report staged")

	res, err := s.extractor.ExtractFile(ctx, staged)
	if err != nil {
		return nil, err
	}
	return &Intake{Name: name, Result: res}, nil
}

// stage copies r to <unix-nanos>_<name> in the upload directory.
func (s *IntakeService) stage(r io.Reader, name string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("intake: create upload dir: %w", err)
	}

	dst := filepath.Join(s.uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), safeName(name)))
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("intake: create staged file: %w", err)
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("intake: stage %s: %w", name, copyErr)
	case closeErr != nil:
		_ = os.Remove(dst)
		return "", fmt.Errorf("intake: stage %s: %w", name, closeErr)
	case s.maxBytes > 0 && n > s.maxBytes:
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w (%d bytes)", ErrFileTooLarge, s.maxBytes)
	}
	return dst, nil
}

func safeName(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == '\\' || r < 0x20:
			return -1
		}
		return r
	}, name)
}
