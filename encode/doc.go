// Package encode renders the ordered segment lists produced by
// disassemble (component G) into EDIFACT wire bytes: a UNA advice string
// when delimiters are non-default, the UNB header, one UNH/body/UNT run
// per message, and the UNZ trailer.
//
// # Basic usage
//
//	enc := encode.New()
//	data, err := enc.Encode(&encode.Interchange{
//	    Header:   unb,
//	    Messages: []encode.Message{{Header: unh, Body: body, Trailer: unt}},
//	    Trailer:  unz,
//	})
//
// Segment and message counts in UNT/UNZ are recomputed from the
// Interchange's own content; whatever count the caller's trailer segment
// carries is overwritten, matching the complementary invariant to
// tokenize/parse: counts read off the wire are never trusted either.
//
// # Streaming
//
// NewWriter wraps an io.Writer (e.g. a network connection) for rendering
// interchanges one at a time without building the whole byte slice in
// memory first.
package encode
