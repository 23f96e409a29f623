// Package encode renders an interchange built by the disassembler back to
// EDIFACT wire bytes: UNA (only when delimiters are non-default or the
// caller asks for it explicitly), UNB, one UNH/body/UNT run per message,
// and UNZ — with segment and message counts recomputed rather than
// carried from whatever the caller supplied.
package encode

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

// Default rendering settings.
const (
	// DefaultSegmentTerminator is the standard EDIFACT segment terminator.
	DefaultSegmentTerminator = '\''
)

// encoderConfig holds the configuration options for rendering an interchange.
type encoderConfig struct {
	delimiters  *edifact.Delimiters
	forceUNA    bool // emit UNA even when delimiters equal the default set
	lineEnding  string
}

func defaultConfig() encoderConfig {
	return encoderConfig{
		delimiters: edifact.DefaultDelimiters(),
		lineEnding: "",
	}
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption func(*encoderConfig)

// WithDelimiters sets the delimiter set segments are rendered with. The
// default is edifact.DefaultDelimiters().
func WithDelimiters(d *edifact.Delimiters) EncoderOption {
	return func(c *encoderConfig) {
		if d != nil {
			c.delimiters = d
		}
	}
}

// WithExplicitUNA forces a UNA service string advice segment to be
// emitted even when the delimiter set matches the default, so the
// receiver never has to assume defaults.
func WithExplicitUNA(explicit bool) EncoderOption {
	return func(c *encoderConfig) {
		c.forceUNA = explicit
	}
}

// WithLineEnding inserts a separator (e.g. "\n") after every rendered
// segment terminator, purely for human-readable output; EDIFACT itself
// has no segment line-ending requirement beyond the terminator.
func WithLineEnding(ending string) EncoderOption {
	return func(c *encoderConfig) {
		c.lineEnding = ending
	}
}
