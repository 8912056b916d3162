package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunk_KeepsShortTextWhole(t *testing.T) {
	assert.Equal(t, []string{"Your scan looks normal."}, Chunk("  Your scan\nlooks   normal. ", MaxChunkRunes))
}

func TestChunk_Empty(t *testing.T) {
	assert.Empty(t, Chunk("   \n\t", MaxChunkRunes))
}

func TestChunk_BreaksOnSentences(t *testing.T) {
	text := "The lungs are clear. The heart is a normal size. There is no fluid around the lungs."
	got := Chunk(text, 50)
	assert.Equal(t, []string{
		"The lungs are clear. The heart is a normal size.",
		"There is no fluid around the lungs.",
	}, got)
}

func TestChunk_BreaksLongSentenceOnWords(t *testing.T) {
	got := Chunk("one two three four five six", 10)
	assert.Equal(t, []string{"one two", "three four", "five six"}, got)
}

func TestChunk_CutsOversizedWord(t *testing.T) {
	got := Chunk(strings.Repeat("é", 25), 10)
	assert.Equal(t, []string{strings.Repeat("é", 10), strings.Repeat("é", 10), strings.Repeat("é", 5)}, got)
}

func TestChunk_NeverExceedsLimit(t *testing.T) {
	text := strings.Repeat("Mild degenerative change is seen in the lower lumbar spine without canal stenosis. ", 12)
	for _, c := range Chunk(text, MaxChunkRunes) {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), MaxChunkRunes)
		assert.NotEmpty(t, c)
	}
}
