package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/core/ocr"
	"github.com/markdave123-py/reportvoice/internal/models"
)

// OCRStrategy rasterizes every page and recognizes it. Unlike the text-layer
// strategies it tolerates per-page failures: a page that fails to render or
// recognize contributes nothing and is listed in the attempt's FailedPages.
type OCRStrategy struct {
	rasterizer ocr.Rasterizer
	recognizer ocr.Recognizer
	logger     zerolog.Logger
}

func NewOCRStrategy(r ocr.Rasterizer, rec ocr.Recognizer, logger zerolog.Logger) *OCRStrategy {
	return &OCRStrategy{rasterizer: r, recognizer: rec, logger: logger}
}

// run returns the trimmed aggregate text and the attempt record. A failed
// outcome means the document could not be opened for rasterization at all.
func (s *OCRStrategy) run(ctx context.Context, path string) (string, models.ExtractionAttempt) {
	attempt := models.ExtractionAttempt{Strategy: StrategyOCR}
	start := time.Now()

	text, failed, err := s.recognizeAll(ctx, path)
	attempt.Duration = time.Since(start)
	attempt.FailedPages = failed

	if err != nil {
		attempt.Outcome = classify(err)
		attempt.Reason = err.Error()
		return "", attempt
	}
	if text == "" {
		attempt.Outcome = models.OutcomeNoText
		attempt.Reason = "ocr completed but no readable text was found"
		return "", attempt
	}

	attempt.Outcome = models.OutcomeSucceeded
	attempt.Chars = utf8.RuneCountInString(text)
	return text, attempt
}

func (s *OCRStrategy) recognizeAll(ctx context.Context, path string) (text string, failed []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ocr: panic: %v", r)
		}
	}()

	pages, err := s.rasterizer.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer pages.Close()

	var blocks []string
	for i := 0; i < pages.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", failed, err
		}
		pageText, err := s.recognizePage(ctx, pages, i)
		if err != nil {
			s.logger.Warn().Err(err).Int("page", i+1).Msg("ocr page failed")
			failed = append(failed, i+1)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		s.logger.Debug().Int("page", i+1).Int("chars", utf8.RuneCountInString(pageText)).Msg("ocr page completed")
		if pageText == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", i+1, pageText))
	}
	return strings.Join(blocks, "\n\n"), failed, nil
}

func (s *OCRStrategy) recognizePage(ctx context.Context, pages ocr.PageSet, page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: panic: %v", page+1, r)
		}
	}()
	img, err := pages.Render(page)
	if err != nil {
		return "", err
	}
	return s.recognizer.Recognize(ctx, img)
}
