package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/core"
	"github.com/markdave123-py/reportvoice/internal/models"
)

const (
	DefaultAudience   = "general"
	DefaultGradeLevel = 6
	DefaultLanguage   = "English"

	minReportRunes = 10
	previewRunes   = 200
)

var (
	ErrNoInput      = errors.New("no report provided: pass text or a file")
	ErrTextTooShort = errors.New("the text appears to be too short or empty")
)

// GenerationError reports a failed model call along with the start of the
// report it was given.
type GenerationError struct {
	Op      string
	Preview string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

const simplifySystemPrompt = `You are a medical translator assistant specialized in converting complex radiology reports into easy-to-understand language.`

const findingsSystemPrompt = `You are a medical assistant specialized in analyzing radiology reports.`

type ReportService struct {
	intake *IntakeService
	llm    core.LLMProvider
	speech core.SpeechSynthesizer
	logger zerolog.Logger
}

// NewReportService wires the report flows; speech may be nil.
func NewReportService(intake *IntakeService, llm core.LLMProvider, speech core.SpeechSynthesizer, logger zerolog.Logger) *ReportService {
	return &ReportService{
		intake: intake,
		llm:    llm,
		speech: speech,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

// Simplify rewrites a report in plain language and optionally speaks it.
// Direct text wins over a file. Speech failures are reported on the result.
func (s *ReportService) Simplify(ctx context.Context, req models.SimplifyRequest) (*models.SimplifiedReport, error) {
	applyDefaults(&req)

	text, source, strategy, err := s.resolveText(ctx, req.Text, req.FilePath)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`I will provide you with a radiology report, and your task is to:

1. Simplify the medical terminology while preserving the important clinical information
2. Target a grade %d reading level
3. Organize the information in a clear, structured way
4. Explain key medical terms when they first appear
5. Focus on what would be most important for a %s audience to understand
6. Respond in %s

Here is the radiology report to simplify:
%s

Please provide ONLY the simplified version, without any introduction or explanatory notes.`,
		req.GradeLevel, req.TargetAudience, req.Language, fence(text))

	simplified, err := s.llm.Generate(ctx, simplifySystemPrompt, prompt)
	if err != nil {
		return nil, &GenerationError{Op: "simplify report", Preview: Preview(text), Err: err}
	}

	report := &models.SimplifiedReport{
		OriginalText:   text,
		SimplifiedText: strings.TrimSpace(simplified),
		Source:         source,
		TargetAudience: req.TargetAudience,
		GradeLevel:     req.GradeLevel,
		Language:       req.Language,
		Strategy:       strategy,
	}

	if req.Speak {
		s.speak(ctx, report, req.LanguageCode)
	}

	s.logger.Info().
		Str("source", source).
		Int("original_chars", utf8.RuneCountInString(text)).
		Int("simplified_chars", utf8.RuneCountInString(report.SimplifiedText)).
		Bool("audio", report.Audio != nil).
		Msg("report simplified")
	return report, nil
}

// KeyFindings lists the report's findings by clinical significance.
func (s *ReportService) KeyFindings(ctx context.Context, text, filePath string) (string, error) {
	text, _, _, err := s.resolveText(ctx, text, filePath)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Extract the most important clinical findings from this radiology report, listing them in order of medical significance. Include both normal and abnormal findings.

Here is the radiology report:
%s

Format your response as a simple bulleted list without any additional commentary.`, fence(text))

	findings, err := s.llm.Generate(ctx, findingsSystemPrompt, prompt)
	if err != nil {
		return "", &GenerationError{Op: "identify key findings", Preview: Preview(text), Err: err}
	}
	return strings.TrimSpace(findings), nil
}

func (s *ReportService) resolveText(ctx context.Context, text, filePath string) (out, source, strategy string, err error) {
	if t := strings.TrimSpace(text); t != "" {
		out, source = t, "direct text input"
	} else if filePath != "" {
		in, err := s.intake.Extract(ctx, filePath)
		if err != nil {
			return "", "", "", err
		}
		out = in.Result.Text
		source = fmt.Sprintf("file upload (%s)", in.Name)
		strategy = in.Result.Strategy
	} else {
		return "", "", "", ErrNoInput
	}

	if utf8.RuneCountInString(strings.TrimSpace(out)) < minReportRunes {
		return "", "", "", fmt.Errorf("%w: %q", ErrTextTooShort, out)
	}
	return out, source, strategy, nil
}

func (s *ReportService) speak(ctx context.Context, report *models.SimplifiedReport, languageCode string) {
	if s.speech == nil {
		report.Warning = "Text to speech service not available."
		return
	}
	audio, err := s.speech.Synthesize(ctx, report.SimplifiedText, languageCode)
	if err != nil {
		s.logger.Warn().Err(err).Msg("speech synthesis failed")
		report.AudioError = err.Error()
		report.Warning = "Text was simplified successfully, but audio generation failed."
		return
	}
	report.Audio = audio
}

func applyDefaults(req *models.SimplifyRequest) {
	if req.TargetAudience == "" {
		req.TargetAudience = DefaultAudience
	}
	if req.GradeLevel <= 0 {
		req.GradeLevel = DefaultGradeLevel
	}
	if req.Language == "" {
		req.Language = DefaultLanguage
	}
}

// Preview returns the first 200 characters of text, marked when truncated.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes]) + "..."
}

func fence(text string) string {
	return "```\n" + text + "\n```"
}
