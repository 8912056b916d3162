package speech

import (
	"strings"
	"unicode/utf8"
)

// MaxChunkRunes is the longest text the translate TTS endpoint accepts per request.
const MaxChunkRunes = 100

// Chunk splits text into pieces of at most max runes. Sentences are kept
// together when they fit, otherwise they break between words; a single word
// longer than max is cut.
func Chunk(text string, max int) []string {
	if max <= 0 {
		max = MaxChunkRunes
	}

	var (
		chunks []string
		cur    strings.Builder
		curLen int
	)

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	add := func(piece string) {
		n := utf8.RuneCountInString(piece)
		if curLen > 0 && curLen+1+n > max {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(piece)
		curLen += n
	}

	for _, sentence := range sentences(text) {
		if utf8.RuneCountInString(sentence) <= max {
			add(sentence)
			continue
		}
		for _, word := range strings.Fields(sentence) {
			for _, part := range cut(word, max) {
				add(part)
			}
		}
	}
	flush()
	return chunks
}

// sentences groups whitespace-separated words into sentences ending in
// terminal punctuation.
func sentences(text string) []string {
	var (
		out   []string
		words []string
	)
	for _, w := range strings.Fields(text) {
		words = append(words, w)
		if strings.ContainsAny(w[len(w)-1:], ".!?;:") {
			out = append(out, strings.Join(words, " "))
			words = words[:0]
		}
	}
	if len(words) > 0 {
		out = append(out, strings.Join(words, " "))
	}
	return out
}

func cut(word string, max int) []string {
	if utf8.RuneCountInString(word) <= max {
		return []string{word}
	}
	var parts []string
	runes := []rune(word)
	for len(runes) > max {
		parts = append(parts, string(runes[:max]))
		runes = runes[max:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
