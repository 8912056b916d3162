package core

import (
	"context"

	"github.com/markdave123-py/reportvoice/internal/models"
)

type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// SpeechSynthesizer renders text to an audio file.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) (*models.Audio, error)
}
