package parse

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// ParseSegment turns a single tokenizer Token into an edifact.Segment. The
// first three characters are the tag; anything after that (if it starts
// with the element delimiter) is split into elements and components.
func ParseSegment(tok Token, d *edifact.Delimiters) (*edifact.Segment, error) {
	if len(tok.Text) < 3 {
		return nil, &edifact.ParseError{Message: "segment shorter than 3-character tag", Cause: edifact.ErrSegmentTooShort}
	}

	runes := []rune(tok.Text)
	if len(runes) < 3 {
		return nil, &edifact.ParseError{Message: "segment shorter than 3-character tag", Cause: edifact.ErrSegmentTooShort}
	}

	tag := string(runes[:3])
	rest := string(runes[3:])

	seg := edifact.NewSegment(tag)
	if rest == "" {
		return seg, nil
	}

	// rest begins with the element delimiter; drop it before splitting so
	// we don't get a leading empty element.
	runesRest := []rune(rest)
	if runesRest[0] == d.Element {
		rest = string(runesRest[1:])
	}

	seg.Elements = SplitElements(rest, d)
	return seg, nil
}
