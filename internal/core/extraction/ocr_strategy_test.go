package extraction

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/markdave123-py/reportvoice/internal/models"
)

type panickyRecognizer struct{ fakeRecognizer }

func (r *panickyRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if string(image) == "0" {
		panic("leptonica: bad pix")
	}
	return r.fakeRecognizer.Recognize(ctx, image)
}

func TestOCRStrategy_PagePanicIsTolerated(t *testing.T) {
	rec := &panickyRecognizer{fakeRecognizer{text: map[int]string{1: "Degenerative changes."}}}
	s := NewOCRStrategy(&fakeRasterizer{pages: 2}, rec, zerolog.Nop())

	text, attempt := s.run(context.Background(), "scan.pdf")
	assert.Equal(t, "--- Page 2 ---\nDegenerative changes.", text)
	assert.Equal(t, models.OutcomeSucceeded, attempt.Outcome)
	assert.Equal(t, []int{1}, attempt.FailedPages)
	assert.Equal(t, len([]rune(text)), attempt.Chars)
}

func TestOCRStrategy_StopsOnCancel(t *testing.T) {
	rec := &fakeRecognizer{text: map[int]string{0: "a", 1: "b"}}
	s := NewOCRStrategy(&fakeRasterizer{pages: 2}, rec, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text, attempt := s.run(ctx, "scan.pdf")
	assert.Empty(t, text)
	assert.Equal(t, models.OutcomeFailed, attempt.Outcome)
	assert.Zero(t, rec.calls.Load())
}
