package extraction

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/markdave123-py/reportvoice/internal/models"
)

// Strategy names, as reported in ExtractionResult.Strategy and attempts.
const (
	StrategyPlainText       = "plain-text"
	StrategyParagraphs      = "paragraphs"
	StrategyLayout          = "layout"
	StrategyAlternateLayout = "alternate-layout"
	StrategyOCR             = "ocr"
)

// ErrStrategyUnavailable marks a strategy whose library or binary is missing.
var ErrStrategyUnavailable = errors.New("strategy unavailable")

// Strategy produces raw text for the file at path. Implementations must not
// keep per-call state, since one pipeline serves concurrent requests.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

type funcStrategy struct {
	name string
	fn   func(ctx context.Context, path string) (string, error)
}

// NewStrategy adapts a function to the Strategy interface.
func NewStrategy(name string, fn func(ctx context.Context, path string) (string, error)) Strategy {
	return funcStrategy{name: name, fn: fn}
}

func (s funcStrategy) Name() string { return s.name }

func (s funcStrategy) Extract(ctx context.Context, path string) (string, error) {
	return s.fn(ctx, path)
}

// runStrategy executes s and never lets an error or panic escape: both become
// part of the returned attempt. text is trimmed and only non-empty on success.
func runStrategy(ctx context.Context, s Strategy, path string) (text string, attempt models.ExtractionAttempt) {
	attempt.Strategy = s.Name()
	start := time.Now()

	raw, err := safeExtract(ctx, s, path)
	attempt.Duration = time.Since(start)

	if err != nil {
		attempt.Outcome = classify(err)
		attempt.Reason = err.Error()
		return "", attempt
	}

	text = strings.TrimSpace(raw)
	if text == "" {
		attempt.Outcome = models.OutcomeNoText
		attempt.Reason = "no text extracted"
		return "", attempt
	}

	attempt.Outcome = models.OutcomeSucceeded
	attempt.Chars = utf8.RuneCountInString(text)
	return text, attempt
}

func safeExtract(ctx context.Context, s Strategy, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", s.Name(), r)
		}
	}()
	return s.Extract(ctx, path)
}

func classify(err error) models.AttemptOutcome {
	if errors.Is(err, ErrStrategyUnavailable) ||
		errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), exec.ErrNotFound.Error()) {
		return models.OutcomeUnavailable
	}
	return models.OutcomeFailed
}
