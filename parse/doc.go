// Package parse implements EDIFACT tokenizing (component A) and the
// event-stream parser built on top of it (component B).
//
// # Tokenizing
//
// Tokenize splits a byte buffer into segment spans honoring the release
// character, CR/LF stripping, and leading-whitespace skipping described in
// spec §4.A. SplitElements further splits a segment's body into elements
// and components, again honoring the release character, but preserves
// trailing empty positions — trimming those is left to the caller.
//
// # Parsing
//
// Run drives a Handler through the segment stream with named events for
// service segments (UNB/UNH/UNT/UNZ) and a catch-all OnSegment for every
// segment including those. Every callback returns a Control value; Stop
// ends parsing immediately without error. No input can make Run panic:
// malformed UTF-8 is dropped rather than rejected, and segments shorter
// than a 3-character tag are reported via OnError rather than aborting the
// whole run.
package parse

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

// Collector is a Handler that simply accumulates every segment it sees,
// in file order, with no other behavior. It is the simplest way to turn
// raw bytes into a flat segment list for components that consume one
// (the assembler, the interchange orchestrator).
type Collector struct {
	Delimiters  *edifact.Delimiters
	ExplicitUNA bool
	Segments    []*edifact.Segment
	Errors      []error
}

// NewCollector returns a ready-to-use Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) OnDelimiters(d *edifact.Delimiters, explicitUNA bool) Control {
	c.Delimiters = d
	c.ExplicitUNA = explicitUNA
	return Continue
}

func (c *Collector) OnInterchangeStart(seg *edifact.Segment) Control { return Continue }
func (c *Collector) OnMessageStart(seg *edifact.Segment) Control     { return Continue }

func (c *Collector) OnSegment(seg *edifact.Segment) Control {
	c.Segments = append(c.Segments, seg)
	return Continue
}

func (c *Collector) OnMessageEnd(seg *edifact.Segment) Control     { return Continue }
func (c *Collector) OnInterchangeEnd(seg *edifact.Segment) Control { return Continue }

func (c *Collector) OnError(err error) Control {
	c.Errors = append(c.Errors, err)
	return Continue
}

// CollectSegments tokenizes and parses data, returning the flat segment
// list and the delimiters in effect. It never returns an error itself;
// recoverable issues are reported in the returned Collector.Errors.
func CollectSegments(data []byte) (*Collector, error) {
	c := NewCollector()
	if err := Run(data, c); err != nil {
		return c, err
	}
	return c, nil
}
