package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/reportvoice/internal/core/extraction"
	"github.com/markdave123-py/reportvoice/internal/models"
)

const report = "FINDINGS: 4 mm nonobstructing calculus in the lower pole of the left kidney."

func newReportService(t *testing.T, ex *fakeExtractor, llm *fakeLLM, sp *fakeSpeech) *ReportService {
	t.Helper()
	intake := NewIntakeService(ex, nil, t.TempDir(), 1<<20, zerolog.Nop())
	if sp == nil {
		return NewReportService(intake, llm, nil, zerolog.Nop())
	}
	return NewReportService(intake, llm, sp, zerolog.Nop())
}

func TestSimplify_DirectTextWithDefaults(t *testing.T) {
	ex := &fakeExtractor{}
	llm := &fakeLLM{reply: "  You have a small kidney stone.  "}
	svc := newReportService(t, ex, llm, nil)

	got, err := svc.Simplify(context.Background(), models.SimplifyRequest{
		Text:     "  " + report + "\n",
		FilePath: writeFile(t, "ignored.txt", "other report text"),
	})
	require.NoError(t, err)

	assert.Equal(t, report, got.OriginalText)
	assert.Equal(t, "You have a small kidney stone.", got.SimplifiedText)
	assert.Equal(t, "direct text input", got.Source)
	assert.Equal(t, DefaultAudience, got.TargetAudience)
	assert.Equal(t, DefaultGradeLevel, got.GradeLevel)
	assert.Equal(t, DefaultLanguage, got.Language)
	assert.Empty(t, got.Strategy)
	assert.Empty(t, ex.staged)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "grade 6 reading level")
	assert.Contains(t, llm.prompts[0], "general audience")
	assert.Contains(t, llm.prompts[0], "Respond in English")
	assert.Contains(t, llm.prompts[0], report)
}

func TestSimplify_FromFile(t *testing.T) {
	llm := &fakeLLM{reply: "Small kidney stone."}
	svc := newReportService(t, &fakeExtractor{}, llm, nil)

	got, err := svc.Simplify(context.Background(), models.SimplifyRequest{
		FilePath:       writeFile(t, "ct.txt", report),
		TargetAudience: "elderly",
		GradeLevel:     4,
		Language:       "Spanish",
	})
	require.NoError(t, err)
	assert.Equal(t, "file upload (ct.txt)", got.Source)
	assert.Equal(t, "plain-text", got.Strategy)
	assert.Equal(t, report, got.OriginalText)
	assert.Contains(t, llm.prompts[0], "grade 4 reading level")
	assert.Contains(t, llm.prompts[0], "elderly audience")
	assert.Contains(t, llm.prompts[0], "Respond in Spanish")
}

func TestSimplify_NoInput(t *testing.T) {
	svc := newReportService(t, &fakeExtractor{}, &fakeLLM{}, nil)

	_, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestSimplify_TooShort(t *testing.T) {
	llm := &fakeLLM{}
	svc := newReportService(t, &fakeExtractor{}, llm, nil)

	_, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: "Normal."})
	assert.ErrorIs(t, err, ErrTextTooShort)
	assert.Empty(t, llm.prompts)
}

func TestSimplify_ExtractionFailurePassesThrough(t *testing.T) {
	svc := newReportService(t, &fakeExtractor{err: extraction.ErrOCRUnavailable}, &fakeLLM{}, nil)

	_, err := svc.Simplify(context.Background(), models.SimplifyRequest{FilePath: writeFile(t, "scan.pdf", "%PDF")})
	assert.ErrorIs(t, err, extraction.ErrOCRUnavailable)
}

func TestSimplify_ModelFailureCarriesPreview(t *testing.T) {
	long := strings.Repeat("x", 250)
	svc := newReportService(t, &fakeExtractor{}, &fakeLLM{err: errModel}, nil)

	_, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: long})
	require.ErrorIs(t, err, errModel)

	var gerr *GenerationError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, strings.Repeat("x", 200)+"...", gerr.Preview)
}

func TestSimplify_Speaks(t *testing.T) {
	sp := &fakeSpeech{}
	svc := newReportService(t, &fakeExtractor{}, &fakeLLM{reply: "A small stone."}, sp)

	got, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: report, Speak: true, LanguageCode: "es"})
	require.NoError(t, err)
	require.NotNil(t, got.Audio)
	assert.Equal(t, "A small stone.", sp.text)
	assert.Equal(t, "es", sp.language)
	assert.Empty(t, got.Warning)
}

func TestSimplify_SpeechFailureIsAWarning(t *testing.T) {
	sp := &fakeSpeech{err: errors.New("tts endpoint returned 429")}
	svc := newReportService(t, &fakeExtractor{}, &fakeLLM{reply: "A small stone."}, sp)

	got, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: report, Speak: true})
	require.NoError(t, err)
	assert.Nil(t, got.Audio)
	assert.Equal(t, "tts endpoint returned 429", got.AudioError)
	assert.Equal(t, "Text was simplified successfully, but audio generation failed.", got.Warning)
	assert.Equal(t, "A small stone.", got.SimplifiedText)
}

func TestSimplify_SpeechNotConfigured(t *testing.T) {
	svc := newReportService(t, &fakeExtractor{}, &fakeLLM{reply: "A small stone."}, nil)

	got, err := svc.Simplify(context.Background(), models.SimplifyRequest{Text: report, Speak: true})
	require.NoError(t, err)
	assert.Equal(t, "Text to speech service not available.", got.Warning)
}

func TestKeyFindings(t *testing.T) {
	llm := &fakeLLM{reply: "- Left renal calculus, 4 mm\n"}
	svc := newReportService(t, &fakeExtractor{}, llm, nil)

	got, err := svc.KeyFindings(context.Background(), report, "")
	require.NoError(t, err)
	assert.Equal(t, "- Left renal calculus, 4 mm", got)
	assert.Contains(t, llm.prompts[0], "bulleted list")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))
	assert.Equal(t, strings.Repeat("é", 200), Preview(strings.Repeat("é", 200)))
	assert.Equal(t, strings.Repeat("é", 200)+"...", Preview(strings.Repeat("é", 201)))
}
