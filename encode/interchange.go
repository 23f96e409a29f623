package encode

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

// Message is one UNH/body/UNT run within an interchange. Header and
// Trailer are supplied by the caller (interchange orchestrator, component
// I) with whatever reference numbers and message-type data they carry;
// only the Trailer's segment-count element is recomputed by Encode.
type Message struct {
	Header  *edifact.Segment // UNH
	Body    []*edifact.Segment
	Trailer *edifact.Segment // UNT
}

// Interchange is the full envelope: UNB, one or more Messages, and UNZ.
// Header and Trailer are supplied by the caller; only the Trailer's
// message-count element is recomputed by Encode.
type Interchange struct {
	Header   *edifact.Segment // UNB
	Messages []Message
	Trailer  *edifact.Segment // UNZ
}

// segmentCount returns 1 (UNH) + len(body) + 1 (UNT).
func (m Message) segmentCount() int {
	return len(m.Body) + 2
}
