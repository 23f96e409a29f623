// Package escape provides EDIFACT release-character escaping and
// unescaping. Unlike HL7's named escape sequences (\F\, \S\, \Xhh\, ...),
// EDIFACT uses a single release character that makes the following byte
// literal — there is no escape alphabet to interpret, only delimiter bytes
// to neutralize.
package escape

import (
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Escaper encodes and decodes release-character escaping for a given
// delimiter set. It is used at the mapping boundary (component H): forward
// mapping unescapes wire text before handing it to BO4E JSON, reverse
// mapping escapes JSON string values before writing them into segments.
// Tokenizing and rendering (components A and G) never call this package —
// they carry escape sequences through as opaque raw text.
type Escaper struct {
	delims *edifact.Delimiters
}

// New creates an Escaper for the given delimiters. Nil falls back to the
// EDIFACT defaults.
func New(delims *edifact.Delimiters) *Escaper {
	if delims == nil {
		delims = edifact.DefaultDelimiters()
	}
	return &Escaper{delims: delims}
}

// Unescape removes release-character markers from wire text: `?+` becomes
// a literal `+`, `?:` a literal `:`, `??` a literal `?`, and so on for every
// delimiter byte. The release character is dropped before any following
// byte, delimiter or not, and that byte is kept as a literal; a release
// character at the very end of value is kept as is. Input is never
// rejected.
func (e *Escaper) Unescape(value string) string {
	if value == "" || !strings.ContainsRune(value, e.delims.Release) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value))
	runes := []rune(value)
	for i := 0; i < len(runes); i++ {
		if runes[i] == e.delims.Release && i+1 < len(runes) {
			sb.WriteRune(runes[i+1])
			i++
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// Escape inserts a release character before every occurrence of a
// delimiter byte (component, element, decimal, release, or terminator)
// within value, so the result is safe to embed as a single component.
func (e *Escaper) Escape(value string) string {
	if value == "" {
		return value
	}
	if !strings.ContainsAny(value, e.delimiterBytes()) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value) + 4)
	for _, r := range value {
		if e.isDelimiter(r) {
			sb.WriteRune(e.delims.Release)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (e *Escaper) isDelimiter(r rune) bool {
	return r == e.delims.Component || r == e.delims.Element ||
		r == e.delims.Decimal || r == e.delims.Release ||
		r == e.delims.Terminator
}

func (e *Escaper) delimiterBytes() string {
	return string([]rune{e.delims.Component, e.delims.Element, e.delims.Decimal, e.delims.Release, e.delims.Terminator})
}
