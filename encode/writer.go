package encode

import (
	"bufio"
	"io"
	"sync"
)

// Writer provides a streaming interface for rendering interchanges one at
// a time to a shared underlying writer (e.g. a network connection).
type Writer interface {
	// Write renders and writes one interchange.
	Write(ic *Interchange) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes any remaining data and releases resources. After
	// Close, the Writer must not be used.
	Close() error
}

type writer struct {
	w      *bufio.Writer
	enc    *encoder
	mu     sync.Mutex
	closed bool
}

// NewWriter creates a Writer that renders interchanges to w using
// buffered I/O. Options configure the same things New does.
func NewWriter(w io.Writer, opts ...EncoderOption) Writer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &writer{
		w:   bufio.NewWriter(w),
		enc: &encoder{config: cfg},
	}
}

func (wr *writer) Write(ic *Interchange) error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return &Error{Message: "writer is closed"}
	}
	if err := validateInterchange(ic); err != nil {
		return err
	}

	if wr.enc.config.forceUNA || !wr.enc.config.delimiters.IsDefault() {
		if _, err := io.WriteString(wr.w, wr.enc.config.delimiters.UNA()+wr.enc.config.lineEnding); err != nil {
			return &Error{Message: "failed to write UNA", Cause: err}
		}
	}

	if err := wr.enc.writeSegmentTo(wr.w, ic.Header); err != nil {
		return err
	}
	for _, msg := range ic.Messages {
		if err := wr.enc.writeSegmentTo(wr.w, msg.Header); err != nil {
			return err
		}
		for _, seg := range msg.Body {
			if err := wr.enc.writeSegmentTo(wr.w, seg); err != nil {
				return err
			}
		}
		if err := wr.enc.writeSegmentTo(wr.w, withCount(msg.Trailer, 0, msg.segmentCount())); err != nil {
			return err
		}
	}
	return wr.enc.writeSegmentTo(wr.w, withCount(ic.Trailer, 0, len(ic.Messages)))
}

func (wr *writer) Flush() error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return &Error{Message: "writer is closed"}
	}
	if err := wr.w.Flush(); err != nil {
		return &Error{Message: "failed to flush buffer", Cause: err}
	}
	return nil
}

func (wr *writer) Close() error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return nil
	}
	err := wr.w.Flush()
	wr.closed = true
	if err != nil {
		return &Error{Message: "failed to flush on close", Cause: err}
	}
	return nil
}
