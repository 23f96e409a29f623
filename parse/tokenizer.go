// Package parse implements EDIFACT tokenizing (component A) and the
// event-stream parser built on top of it (component B).
package parse

import (
	"unicode/utf8"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Token is a raw segment span: the unsplit text of one segment, with any
// release-character sequences still in place, plus its byte offset into
// the original input.
type Token struct {
	Text       string
	ByteOffset int
}

// Tokenize splits an EDIFACT byte buffer into segment tokens, honoring the
// release character (so an escaped terminator never splits a segment),
// stripping CR/LF wherever they occur, skipping leading whitespace between
// segments, and skipping empty segments. A final residual segment is
// yielded iff it is non-empty after whitespace trimming.
//
// Malformed UTF-8 is tolerated: invalid byte sequences are replaced with
// the empty string rather than causing a panic or error, per the fuzzing
// invariant that no input may panic.
func Tokenize(data []byte, d *edifact.Delimiters) []Token {
	if d == nil {
		d = edifact.DefaultDelimiters()
	}
	clean := stripCRLF(data)

	var tokens []Token
	start := 0
	offset := 0
	runes, offsets := decodeRunes(clean)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == d.Release && i+1 < len(runes) {
			i++
			continue
		}
		if r == d.Terminator {
			seg := string(runes[start:i])
			tokens = appendSegmentToken(tokens, seg, offsets[start])
			start = i + 1
		}
	}
	if start < len(runes) {
		seg := string(runes[start:])
		tokens = appendSegmentToken(tokens, seg, offsets[start])
	}
	_ = offset
	return tokens
}

// appendSegmentToken trims leading whitespace and skips empty segments,
// mirroring the tokenizer's whitespace-between-segments rule.
func appendSegmentToken(tokens []Token, seg string, byteOffset int) []Token {
	trimmed := trimLeadingSpace(seg)
	if trimmed == "" {
		return tokens
	}
	return append(tokens, Token{Text: trimmed, ByteOffset: byteOffset})
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	trimmed := s[i:]
	// A segment that is pure whitespace is empty for our purposes.
	allSpace := true
	for _, r := range trimmed {
		if r != ' ' && r != '\t' {
			allSpace = false
			break
		}
	}
	if allSpace {
		return ""
	}
	return trimmed
}

func stripCRLF(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '\r' || b == '\n' {
			continue
		}
		out = append(out, b)
	}
	return out
}

// decodeRunes decodes data as a sequence of runes, tolerating invalid UTF-8
// by substituting the empty rune slot (dropped, not replaced with U+FFFD,
// so byte offsets for valid runes stay meaningful). It returns the runes
// alongside the byte offset at which each rune started.
func decodeRunes(data []byte) ([]rune, []int) {
	var runes []rune
	var offsets []int
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte: drop it and advance one byte.
			i++
			continue
		}
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, i) // sentinel for a trailing empty segment
	return runes, offsets
}

// SplitElements splits segment text (without its tag) into elements, and
// each element into components, honoring the release character. Trailing
// empty positions are preserved in the iterator output — trimming trailing
// empties is a decision made by the caller (Segment.Render strips them;
// the assembler and mapping engine do not).
func SplitElements(body string, d *edifact.Delimiters) [][]string {
	elements := splitOnRune(body, d.Element, d.Release)
	out := make([][]string, len(elements))
	for i, el := range elements {
		out[i] = splitOnRune(el, d.Component, d.Release)
	}
	return out
}

// splitOnRune splits s on sep, treating any rune immediately preceded by
// release as literal (not a split point).
func splitOnRune(s string, sep, release rune) []string {
	var parts []string
	var current []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == release && i+1 < len(runes) {
			current = append(current, r, runes[i+1])
			i++
			continue
		}
		if r == sep {
			parts = append(parts, string(current))
			current = nil
			continue
		}
		current = append(current, r)
	}
	parts = append(parts, string(current))
	return parts
}
