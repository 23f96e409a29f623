package pid

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

func findSegment(segs []*edifact.Segment, tag string) *edifact.Segment {
	for _, s := range segs {
		if s.Is(tag) {
			return s
		}
	}
	return nil
}

func nonNil(segs ...*edifact.Segment) []*edifact.Segment {
	out := make([]*edifact.Segment, 0, len(segs))
	for _, s := range segs {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
