package edifact

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the tokenizer, parser and segment model.
var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrEmptySegment    = errors.New("empty segment")
	ErrSegmentTooShort = errors.New("segment shorter than a 3-character tag")
	ErrInvalidIndex    = errors.New("invalid index")
)

// ParseError describes a failure while tokenizing or assembling a segment
// stream, carrying enough positional context to report a useful diagnostic.
type ParseError struct {
	Message       string
	SegmentNumber int
	ByteOffset    int
	Cause         error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.SegmentNumber > 0 {
		msg = fmt.Sprintf("%s at segment %d", msg, e.SegmentNumber)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
