package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/markdave123-py/reportvoice/internal/core"
)

const DefaultModel = "gemini-1.5-flash"

var (
	// ErrEmptyResponse is returned when the model produced no text candidate.
	ErrEmptyResponse = errors.New("gemini: empty response")
	// ErrBlocked is returned when the prompt or the answer was withheld by safety filters.
	ErrBlocked = errors.New("gemini: response blocked")
)

var _ core.LLMProvider = (*GeminiLLM)(nil)

// GeminiLLM rewrites report text. Output is kept close to deterministic so a
// report simplifies the same way twice.
type GeminiLLM struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiLLM(ctx context.Context, apiKey, modelName string) (*GeminiLLM, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key not set")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiLLM{client: cl, modelName: modelName, temperature: 0.2}, nil
}

func (g *GeminiLLM) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Generate sends one system/user turn and returns the trimmed answer.
func (g *GeminiLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	m.SetTemperature(g.temperature)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", fmt.Errorf("%w: %v", ErrBlocked, blocked)
		}
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return answerText(resp)
}

// answerText joins the text parts of the first candidate.
func answerText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("%w: prompt %s", ErrBlocked, fb.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: answer %s", ErrBlocked, cand.FinishReason)
	}
	if cand.Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
