package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/core"
	"github.com/markdave123-py/reportvoice/internal/models"
)

const (
	DefaultBaseURL  = "https://translate.google.com/translate_tts"
	DefaultLanguage = "en"

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) reportvoice"
)

var ErrNothingToSay = errors.New("speech: no text to synthesize")

var _ core.SpeechSynthesizer = (*TTSClient)(nil)

type Options struct {
	BaseURL  string
	AudioDir string
	Timeout  time.Duration

	// Store and Bucket publish the audio file when both are set.
	Store  core.ObjectClient
	Bucket string
}

// TTSClient synthesizes MP3 audio from a Google-Translate-compatible endpoint.
type TTSClient struct {
	http     *resty.Client
	baseURL  string
	audioDir string
	store    core.ObjectClient
	bucket   string
	logger   zerolog.Logger
}

func NewTTSClient(opts Options, logger zerolog.Logger) *TTSClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.AudioDir == "" {
		opts.AudioDir = filepath.Join("static", "audio")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	http := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("User-Agent", userAgent)

	return &TTSClient{
		http:     http,
		baseURL:  opts.BaseURL,
		audioDir: opts.AudioDir,
		store:    opts.Store,
		bucket:   opts.Bucket,
		logger:   logger.With().Str("component", "speech").Logger(),
	}
}

// Synthesize fetches every chunk of text in order and writes the joined MP3
// stream to <uuid>.mp3 in the audio directory. When a store is configured the
// file is published first and removed again if the local write fails.
func (c *TTSClient) Synthesize(ctx context.Context, text, languageCode string) (*models.Audio, error) {
	if languageCode == "" {
		languageCode = DefaultLanguage
	}
	chunks := Chunk(text, MaxChunkRunes)
	if len(chunks) == 0 {
		return nil, ErrNothingToSay
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := c.fetch(ctx, chunk, languageCode, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("speech: chunk %d/%d: %w", i+1, len(chunks), err)
		}
		audio.Write(data)
	}

	filename := uuid.NewString() + ".mp3"
	key := "audio/" + filename

	var url string
	if c.store != nil && c.bucket != "" {
		u, err := c.store.UploadFile(ctx, c.bucket, key, bytes.NewReader(audio.Bytes()), "audio/mpeg")
		if err != nil {
			c.logger.Warn().Err(err).Str("file", filename).Msg("audio kept locally, upload failed")
		} else {
			url = u
		}
	}

	path := filepath.Join(c.audioDir, filename)
	if err := writeAudio(path, audio.Bytes()); err != nil {
		if url != "" {
			if derr := c.store.DeleteFile(ctx, c.bucket, key); derr != nil {
				c.logger.Warn().Err(derr).Str("key", key).Msg("published audio not removed")
			}
		}
		return nil, err
	}

	out := &models.Audio{
		Filename:  filename,
		Path:      path,
		URL:       url,
		Language:  languageCode,
		Bytes:     audio.Len(),
		CreatedAt: time.Now().UTC(),
	}

	c.logger.Info().
		Str("file", filename).
		Int("chunks", len(chunks)).
		Int("bytes", out.Bytes).
		Msg("speech synthesized")
	return out, nil
}

func writeAudio(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("speech: create audio dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("speech: write audio: %w", err)
	}
	return nil
}

func (c *TTSClient) fetch(ctx context.Context, chunk, lang string, idx, total int) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":      "UTF-8",
			"q":       chunk,
			"tl":      lang,
			"client":  "tw-ob",
			"idx":     strconv.Itoa(idx),
			"total":   strconv.Itoa(total),
			"textlen": strconv.Itoa(len([]rune(chunk))),
		}).
		Get(c.baseURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tts endpoint returned %s", resp.Status())
	}
	if len(resp.Body()) == 0 {
		return nil, errors.New("tts endpoint returned no audio")
	}
	return resp.Body(), nil
}
