package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/config"
	"github.com/markdave123-py/reportvoice/internal/core"
	"github.com/markdave123-py/reportvoice/internal/core/extraction"
	"github.com/markdave123-py/reportvoice/internal/core/llm"
	objectclient "github.com/markdave123-py/reportvoice/internal/core/object-client"
	"github.com/markdave123-py/reportvoice/internal/core/ocr"
	"github.com/markdave123-py/reportvoice/internal/core/speech"
	"github.com/markdave123-py/reportvoice/internal/services"
)

// ErrLLMNotConfigured is returned by Reports when no model API key is set.
var ErrLLMNotConfigured = errors.New("GEMINI_API_KEY not set: simplification is unavailable")

type App struct {
	Config       *config.Config
	Logger       zerolog.Logger
	Pipeline     *extraction.Pipeline
	ObjectClient core.ObjectClient
	Intake       *services.IntakeService

	reports *services.ReportService
	llm     *llm.GeminiLLM
}

// NewApp probes OCR once and wires the extraction pipeline and services.
// Object storage and the language model are optional.
func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	rasterizer := ocr.NewFitzRasterizer()
	recognizer := ocr.NewRecognizer(ocrLanguages(cfg.OCRLanguage)...)

	capability := ocr.Probe(rasterizer, recognizer, logger)
	if capability.Available {
		logger.Info().Msg("OCR dependencies available")
	} else {
		logger.Warn().Strs("missing", capability.Missing).Msg("OCR dependencies missing")
	}

	pipeline := extraction.NewPipeline(capability,
		extraction.WithLogger(logger),
		extraction.WithOCR(rasterizer, recognizer),
	)

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Pipeline: pipeline,
	}

	if cfg.ObjectStorageEnabled() {
		objClient, err := objectclient.NewS3Client(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize object storage: %w", err)
		}
		a.ObjectClient = objClient
		logger.Info().Str("bucket", cfg.BucketName).Msg("object client initialized and ready")
	}

	a.Intake = services.NewIntakeService(pipeline, a.ObjectClient, cfg.UploadDir, cfg.MaxUploadBytes, logger)

	if cfg.AIAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set; simplification disabled")
		return a, nil
	}

	llmProvider, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the llm: %w", err)
	}
	a.llm = llmProvider

	tts := speech.NewTTSClient(speech.Options{
		BaseURL:  cfg.TTSBaseURL,
		AudioDir: cfg.AudioDir,
		Store:    a.ObjectClient,
		Bucket:   cfg.BucketName,
	}, logger)

	a.reports = services.NewReportService(a.Intake, llmProvider, tts, logger)
	return a, nil
}

// Reports returns the simplification service, or ErrLLMNotConfigured.
func (a *App) Reports() (*services.ReportService, error) {
	if a.reports == nil {
		return nil, ErrLLMNotConfigured
	}
	return a.reports, nil
}

func (a *App) Close() {
	if a.llm != nil {
		_ = a.llm.Close()
	}
}

// ocrLanguages splits a Tesseract language list such as "eng+fra".
func ocrLanguages(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "+") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return []string{ocr.DefaultLanguage}
	}
	return out
}
