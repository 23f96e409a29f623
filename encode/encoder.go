package encode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Encoder renders an Interchange to EDIFACT wire bytes.
type Encoder interface {
	// Encode renders ic in full, including UNA/UNB/UNH/UNT/UNZ, with
	// segment and message counts recomputed from ic's own content.
	Encode(ic *Interchange) ([]byte, error)

	// EncodeToWriter streams the rendered interchange to w. The context
	// is checked before writing starts and before each message, so a long
	// render can be cancelled between messages.
	EncodeToWriter(ctx context.Context, w io.Writer, ic *Interchange) error
}

type encoder struct {
	config encoderConfig
}

// New creates an Encoder with the given options. Without options,
// segments render with the default EDIFACT delimiter set and no UNA.
func New(opts ...EncoderOption) Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &encoder{config: cfg}
}

func (e *encoder) Encode(ic *Interchange) ([]byte, error) {
	if err := validateInterchange(ic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if e.config.forceUNA || !e.config.delimiters.IsDefault() {
		buf.WriteString(e.config.delimiters.UNA())
		buf.WriteString(e.config.lineEnding)
	}

	e.writeSegment(&buf, ic.Header)

	for _, msg := range ic.Messages {
		e.writeSegment(&buf, msg.Header)
		for _, seg := range msg.Body {
			e.writeSegment(&buf, seg)
		}
		e.writeSegment(&buf, withCount(msg.Trailer, 0, msg.segmentCount()))
	}

	e.writeSegment(&buf, withCount(ic.Trailer, 0, len(ic.Messages)))

	return buf.Bytes(), nil
}

func (e *encoder) EncodeToWriter(ctx context.Context, w io.Writer, ic *Interchange) error {
	if err := validateInterchange(ic); err != nil {
		return err
	}
	if err := ctxDone(ctx); err != nil {
		return err
	}

	if e.config.forceUNA || !e.config.delimiters.IsDefault() {
		if _, err := io.WriteString(w, e.config.delimiters.UNA()+e.config.lineEnding); err != nil {
			return &Error{Message: "failed to write UNA", Cause: err}
		}
	}

	if err := e.writeSegmentTo(w, ic.Header); err != nil {
		return err
	}

	for _, msg := range ic.Messages {
		if err := ctxDone(ctx); err != nil {
			return err
		}
		if err := e.writeSegmentTo(w, msg.Header); err != nil {
			return err
		}
		for _, seg := range msg.Body {
			if err := e.writeSegmentTo(w, seg); err != nil {
				return err
			}
		}
		if err := e.writeSegmentTo(w, withCount(msg.Trailer, 0, msg.segmentCount())); err != nil {
			return err
		}
	}

	if err := e.writeSegmentTo(w, withCount(ic.Trailer, 0, len(ic.Messages))); err != nil {
		return err
	}
	return nil
}

func (e *encoder) writeSegment(buf *bytes.Buffer, seg *edifact.Segment) {
	buf.WriteString(seg.Render(e.config.delimiters))
	buf.WriteRune(e.config.delimiters.Terminator)
	buf.WriteString(e.config.lineEnding)
}

func (e *encoder) writeSegmentTo(w io.Writer, seg *edifact.Segment) error {
	rendered := seg.Render(e.config.delimiters) + string(e.config.delimiters.Terminator) + e.config.lineEnding
	if _, err := io.WriteString(w, rendered); err != nil {
		return &Error{Message: "failed to write segment", Segment: seg.Tag, Cause: err}
	}
	return nil
}

// withCount returns a clone of seg with its idx-th element's first
// component set to count, growing the element list if needed. Segment
// and message counts are authoritative at render time and are never
// carried from the caller's trailer value.
func withCount(seg *edifact.Segment, idx, count int) *edifact.Segment {
	out := seg.Clone()
	for len(out.Elements) <= idx {
		out.Elements = append(out.Elements, []string{""})
	}
	out.Elements[idx] = []string{strconv.Itoa(count)}
	return out
}

func validateInterchange(ic *Interchange) error {
	if ic == nil {
		return &Error{Message: "cannot encode nil interchange"}
	}
	if ic.Header == nil {
		return &Error{Message: "interchange has no UNB header"}
	}
	if ic.Trailer == nil {
		return &Error{Message: "interchange has no UNZ trailer"}
	}
	for i, msg := range ic.Messages {
		if msg.Header == nil {
			return &Error{Message: "message has no UNH header", Position: i}
		}
		if msg.Trailer == nil {
			return &Error{Message: "message has no UNT trailer", Position: i}
		}
	}
	return nil
}

func ctxDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Error represents an error that occurred while rendering an interchange.
type Error struct {
	Message  string
	Segment  string
	Position int
	Cause    error
}

func (e *Error) Error() string {
	msg := "encode error"
	if e.Segment != "" {
		msg = fmt.Sprintf("%s at segment %s", msg, e.Segment)
	}
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
