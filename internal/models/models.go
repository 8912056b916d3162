package models

import (
	"time"
)

// Format is the declared type of an uploaded report, derived from its extension.
type Format string

const (
	FormatPlainText  Format = "plain-text"
	FormatStructured Format = "structured-document" // doc, docx
	FormatPDF        Format = "pdf"
)

// Document represents one staged report file awaiting extraction.
type Document struct {
	Path   string `json:"path"`
	Name   string `json:"name"` // original file name, without the staging prefix
	Format Format `json:"format"`
	Size   int64  `json:"size"`
}

// AttemptOutcome describes how a single extraction strategy ended.
type AttemptOutcome string

const (
	OutcomeSucceeded   AttemptOutcome = "succeeded"
	OutcomeNoText      AttemptOutcome = "no-text"
	OutcomeFailed      AttemptOutcome = "failed"
	OutcomeUnavailable AttemptOutcome = "unavailable" // library or binary missing
)

// ExtractionAttempt is the diagnostic record of one strategy run. Never persisted.
type ExtractionAttempt struct {
	Strategy    string         `json:"strategy"`
	Outcome     AttemptOutcome `json:"outcome"`
	Reason      string         `json:"reason,omitempty"`
	Chars       int            `json:"chars"`
	FailedPages []int          `json:"failed_pages,omitempty"` // 1-indexed, OCR only
	Duration    time.Duration  `json:"duration"`
}

// ExtractionResult is returned only when Text is non-empty after trimming.
type ExtractionResult struct {
	Text     string              `json:"text"`
	Strategy string              `json:"strategy"`
	Attempts []ExtractionAttempt `json:"attempts"`
}

// SimplifyRequest carries the user's report and the rewriting preferences.
type SimplifyRequest struct {
	Text           string `json:"text"`
	FilePath       string `json:"file_path"` // local path or s3://bucket/key
	TargetAudience string `json:"target_audience"`
	GradeLevel     int    `json:"grade_level"`
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	Speak          bool   `json:"speak"`
}

// SimplifiedReport is the outcome of a simplification run.
type SimplifiedReport struct {
	OriginalText   string `json:"original_text"`
	SimplifiedText string `json:"simplified_text"`
	Source         string `json:"source"`
	TargetAudience string `json:"target_audience"`
	GradeLevel     int    `json:"grade_level"`
	Language       string `json:"language"`
	Strategy       string `json:"extraction_method,omitempty"`
	Audio          *Audio `json:"audio,omitempty"`
	AudioError     string `json:"audio_error,omitempty"`
	Warning        string `json:"warning,omitempty"`
}

// Audio describes a synthesized speech file.
type Audio struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	URL       string    `json:"url,omitempty"` // set when published to object storage
	Language  string    `json:"language"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}
