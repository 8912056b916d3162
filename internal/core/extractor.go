package core

import (
	"context"

	"github.com/markdave123-py/reportvoice/internal/models"
)

// DocumentExtractor turns a staged document into plain text.
type DocumentExtractor interface {
	// Extract returns a result with non-empty text, or a typed failure.
	Extract(ctx context.Context, doc models.Document) (*models.ExtractionResult, error)
	ExtractFile(ctx context.Context, path string) (*models.ExtractionResult, error)
}
