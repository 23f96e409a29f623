package parse

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Control tells the parser whether to keep driving the event stream.
type Control int

const (
	// Continue tells the parser to keep processing segments.
	Continue Control = iota
	// Stop terminates parsing cleanly, without an error.
	Stop
)

// Handler receives the event stream produced by Run. Every callback
// returns a Control value; returning Stop from any of them ends parsing
// immediately and cleanly.
type Handler interface {
	// OnDelimiters is invoked once, after UNA detection (or defaulting).
	OnDelimiters(d *edifact.Delimiters, explicitUNA bool) Control
	// OnInterchangeStart is invoked for the UNB segment.
	OnInterchangeStart(seg *edifact.Segment) Control
	// OnMessageStart is invoked for each UNH segment.
	OnMessageStart(seg *edifact.Segment) Control
	// OnSegment is invoked for every segment, service and content alike,
	// including UNB/UNH/UNT/UNZ.
	OnSegment(seg *edifact.Segment) Control
	// OnMessageEnd is invoked for each UNT segment.
	OnMessageEnd(seg *edifact.Segment) Control
	// OnInterchangeEnd is invoked for the UNZ segment.
	OnInterchangeEnd(seg *edifact.Segment) Control
	// OnError is invoked for a recoverable issue; the handler decides
	// whether parsing should continue.
	OnError(err error) Control
}

// Run tokenizes data and drives handler through the EDIFACT event stream.
// Segment numbering starts at 1 and excludes any UNA; message numbering
// increments on UNH and is zero for envelope-level segments (UNB, UNZ).
func Run(data []byte, handler Handler) error {
	d, unaLen, err := edifact.DetectDelimiters(data)
	if err != nil {
		if handler.OnError(err) == Stop {
			return nil
		}
		d = edifact.DefaultDelimiters()
		unaLen = 0
	}

	if handler.OnDelimiters(d, unaLen > 0) == Stop {
		return nil
	}

	tokens := Tokenize(data[unaLen:], d)

	segNum := 0
	msgNum := 0
	for _, tok := range tokens {
		segNum++
		seg, perr := ParseSegment(tok, d)
		if perr != nil {
			if handler.OnError(perr) == Stop {
				return nil
			}
			continue
		}
		seg.Position = edifact.Position{SegmentNumber: segNum, ByteOffset: tok.ByteOffset + unaLen, MessageNumber: msgNum}

		switch {
		case seg.Is("UNH"):
			msgNum++
			seg.Position.MessageNumber = msgNum
			if handler.OnSegment(seg) == Stop {
				return nil
			}
			if handler.OnMessageStart(seg) == Stop {
				return nil
			}
			continue
		case seg.Is("UNB"):
			if handler.OnSegment(seg) == Stop {
				return nil
			}
			if handler.OnInterchangeStart(seg) == Stop {
				return nil
			}
			continue
		case seg.Is("UNT"):
			if handler.OnSegment(seg) == Stop {
				return nil
			}
			if handler.OnMessageEnd(seg) == Stop {
				return nil
			}
			continue
		case seg.Is("UNZ"):
			seg.Position.MessageNumber = 0
			if handler.OnSegment(seg) == Stop {
				return nil
			}
			if handler.OnInterchangeEnd(seg) == Stop {
				return nil
			}
			continue
		default:
			if handler.OnSegment(seg) == Stop {
				return nil
			}
		}
	}

	return nil
}
