package extraction

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/reportvoice/internal/core"
	"github.com/markdave123-py/reportvoice/internal/core/ocr"
	"github.com/markdave123-py/reportvoice/internal/models"
)

var _ core.DocumentExtractor = (*Pipeline)(nil)

// Pipeline turns a staged document into plain text.
//
// plainText:  strategy for .txt files.
// paragraphs: strategy for .doc/.docx files.
// pdfText:    text-layer strategies for PDFs, tried in order.
// rasterizer: page renderer for the OCR fallback.
// recognizer: OCR engine for the OCR fallback.
// ocr:        last-resort PDF strategy, gated by capability.
// capability: OCR availability, fixed at construction.
//
// A Pipeline holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	plainText  Strategy
	paragraphs Strategy
	pdfText    []Strategy
	rasterizer ocr.Rasterizer
	recognizer ocr.Recognizer
	ocr        *OCRStrategy
	capability ocr.Capability
	logger     zerolog.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

func WithPlainTextStrategy(s Strategy) Option {
	return func(p *Pipeline) { p.plainText = s }
}

func WithParagraphStrategy(s Strategy) Option {
	return func(p *Pipeline) { p.paragraphs = s }
}

// WithPDFStrategies replaces the ordered text-layer strategies for PDFs.
func WithPDFStrategies(s ...Strategy) Option {
	return func(p *Pipeline) { p.pdfText = s }
}

// WithOCR sets the rasterizer and recognizer used by the OCR fallback.
func WithOCR(r ocr.Rasterizer, rec ocr.Recognizer) Option {
	return func(p *Pipeline) {
		p.rasterizer = r
		p.recognizer = rec
	}
}

// NewPipeline builds a pipeline with the default strategies: plain text,
// docconv paragraphs, ledongthuc/pdf then pdftotext for PDFs, and go-fitz +
// Tesseract for OCR.
func NewPipeline(capability ocr.Capability, opts ...Option) *Pipeline {
	p := &Pipeline{
		plainText:  PlainTextStrategy(),
		paragraphs: ParagraphStrategy(),
		pdfText:    []Strategy{LayoutStrategy(), AlternateLayoutStrategy()},
		capability: capability,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rasterizer == nil {
		p.rasterizer = ocr.NewFitzRasterizer()
	}
	if p.recognizer == nil {
		p.recognizer = ocr.NewRecognizer(ocr.DefaultLanguage)
	}
	p.ocr = NewOCRStrategy(p.rasterizer, p.recognizer, p.logger)
	return p
}

// Capability returns the OCR descriptor the pipeline was built with.
func (p *Pipeline) Capability() ocr.Capability {
	return p.capability
}

// ExtractFile describes the file at path and extracts it.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) (*models.ExtractionResult, error) {
	doc, err := NewDocument(path)
	if err != nil {
		return nil, err
	}
	return p.Extract(ctx, doc)
}

// Extract returns the document's text, or an *Error describing why none was found.
func (p *Pipeline) Extract(ctx context.Context, doc models.Document) (*models.ExtractionResult, error) {
	format := doc.Format
	if format == "" {
		f, err := DetectFormat(doc.Path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	switch format {
	case models.FormatPlainText:
		return p.extractSingle(ctx, doc, p.plainText)
	case models.FormatStructured:
		return p.extractSingle(ctx, doc, p.paragraphs)
	case models.FormatPDF:
		return p.extractPDF(ctx, doc)
	}
	return nil, newError(KindUnsupportedFormat, "unsupported file format: "+string(format), nil)
}

func (p *Pipeline) extractSingle(ctx context.Context, doc models.Document, s Strategy) (*models.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, attempt := runStrategy(ctx, s, doc.Path)
	p.logAttempt(doc, attempt)
	attempts := []models.ExtractionAttempt{attempt}

	switch attempt.Outcome {
	case models.OutcomeSucceeded:
		return &models.ExtractionResult{Text: text, Strategy: s.Name(), Attempts: attempts}, nil
	case models.OutcomeNoText:
		return nil, newError(KindEmptyDocument, "document appears to be empty", attempts)
	}
	return nil, newError(KindReadFailed, attempt.Reason, attempts)
}

// extractPDF runs the text-layer strategies, then OCR. Outputs are never
// mixed: the first strategy with non-empty text wins outright.
func (p *Pipeline) extractPDF(ctx context.Context, doc models.Document) (*models.ExtractionResult, error) {
	attempts := make([]models.ExtractionAttempt, 0, len(p.pdfText)+1)

	for _, s := range p.pdfText {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, attempt := runStrategy(ctx, s, doc.Path)
		p.logAttempt(doc, attempt)
		attempts = append(attempts, attempt)
		if attempt.Outcome == models.OutcomeSucceeded {
			return &models.ExtractionResult{Text: text, Strategy: s.Name(), Attempts: attempts}, nil
		}
	}

	if !p.capability.Available {
		e := newError(KindOCRUnavailable, "pdf appears to be image-based or scanned and ocr is not available", attempts)
		e.Missing = p.capability.MissingComponents()
		return nil, e
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.logger.Info().Str("document", doc.Name).Msg("standard pdf extraction failed, attempting ocr")

	text, attempt := p.ocr.run(ctx, doc.Path)
	p.logAttempt(doc, attempt)
	attempts = append(attempts, attempt)

	switch attempt.Outcome {
	case models.OutcomeSucceeded:
		return &models.ExtractionResult{Text: text, Strategy: StrategyOCR, Attempts: attempts}, nil
	case models.OutcomeNoText:
		return nil, newError(KindOCRNoText, attempt.Reason, attempts)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, newError(KindPDFExtractionExhausted, "all pdf extraction strategies failed", attempts)
}

func (p *Pipeline) logAttempt(doc models.Document, a models.ExtractionAttempt) {
	evt := p.logger.Debug()
	if a.Outcome != models.OutcomeSucceeded {
		evt = p.logger.Info()
	}
	evt.Str("document", doc.Name).
		Str("strategy", a.Strategy).
		Str("outcome", string(a.Outcome)).
		Int("chars", a.Chars).
		Dur("duration", a.Duration).
		Str("reason", a.Reason).
		Ints("failed_pages", a.FailedPages).
		Msg("extraction attempt")
}
