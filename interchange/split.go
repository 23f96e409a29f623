package interchange

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/parse"
)

// MessageChunk is one UNH..UNT run within an interchange: the header and
// trailer service segments plus the content segments between them.
type MessageChunk struct {
	Header  *edifact.Segment
	Body    []*edifact.Segment
	Trailer *edifact.Segment
}

// Split is a flat segment stream partitioned at its UNH/UNT boundaries.
type Split struct {
	Delimiters *edifact.Delimiters
	Envelope   *edifact.Segment // UNB, nil if absent
	Messages   []MessageChunk
	Trailer    *edifact.Segment // UNZ, nil if absent
}

// SplitInterchange parses data and partitions it into an envelope plus
// per-message chunks. It does not validate against any schema; malformed
// service-segment nesting surfaces as a shorter-than-expected Messages
// list rather than an error, mirroring the parser's own tolerant stance.
func SplitInterchange(data []byte) (*Split, error) {
	h := &splitHandler{}
	if err := parse.Run(data, h); err != nil {
		return nil, err
	}
	return &h.result, nil
}

type splitHandler struct {
	result  Split
	current *MessageChunk
}

func (h *splitHandler) OnDelimiters(d *edifact.Delimiters, explicitUNA bool) parse.Control {
	h.result.Delimiters = d
	return parse.Continue
}

func (h *splitHandler) OnInterchangeStart(seg *edifact.Segment) parse.Control {
	h.result.Envelope = seg
	return parse.Continue
}

func (h *splitHandler) OnMessageStart(seg *edifact.Segment) parse.Control {
	h.current = &MessageChunk{Header: seg}
	return parse.Continue
}

func (h *splitHandler) OnSegment(seg *edifact.Segment) parse.Control {
	if h.current == nil {
		return parse.Continue
	}
	switch {
	case seg.Is("UNH"), seg.Is("UNT"), seg.Is("UNB"), seg.Is("UNZ"):
		// service segments are attached by the dedicated callbacks below
	default:
		h.current.Body = append(h.current.Body, seg)
	}
	return parse.Continue
}

func (h *splitHandler) OnMessageEnd(seg *edifact.Segment) parse.Control {
	if h.current != nil {
		h.current.Trailer = seg
		h.result.Messages = append(h.result.Messages, *h.current)
		h.current = nil
	}
	return parse.Continue
}

func (h *splitHandler) OnInterchangeEnd(seg *edifact.Segment) parse.Control {
	h.result.Trailer = seg
	return parse.Continue
}

func (h *splitHandler) OnError(err error) parse.Control {
	return parse.Continue
}
