// Package edifact provides the core wire-level types for EDIFACT message
// processing: delimiters, segments, and the errors raised while tokenizing
// and rendering them.
package edifact

import (
	"errors"
	"fmt"
)

// Default EDIFACT delimiter values, used whenever an interchange carries no
// explicit UNA service string.
const (
	DefaultComponent  = ':'
	DefaultElement    = '+'
	DefaultDecimal    = '.'
	DefaultRelease    = '?'
	DefaultReserved   = ' '
	DefaultTerminator = '\''
)

// unaLength is the fixed byte length of the UNA service string: the 3-letter
// tag plus the 6 delimiter bytes in canonical order.
const unaLength = 9

// Errors returned while detecting or validating delimiters.
var (
	ErrEmptyInput    = errors.New("empty input")
	ErrNotUNASegment = errors.New("input does not start with UNA")
	ErrUNATooShort   = errors.New("UNA prefix shorter than 9 bytes")
)

// Delimiters holds the six EDIFACT delimiter bytes. Component, Element and
// Terminator matter for tokenizing and rendering; Decimal and Reserved are
// carried through unused by the codec itself but are part of the UNA
// contract and must round-trip.
type Delimiters struct {
	Component  rune // separates components within a composite element
	Element    rune // separates elements within a segment
	Decimal    rune // decimal notation mark
	Release    rune // escape character
	Reserved   rune // reserved for future use
	Terminator rune // terminates a segment
}

// DefaultDelimiters returns the canonical EDIFACT delimiter set.
func DefaultDelimiters() *Delimiters {
	return &Delimiters{
		Component:  DefaultComponent,
		Element:    DefaultElement,
		Decimal:    DefaultDecimal,
		Release:    DefaultRelease,
		Reserved:   DefaultReserved,
		Terminator: DefaultTerminator,
	}
}

// DetectDelimiters inspects the start of an interchange for a UNA service
// string. If present, it is parsed and consumed; otherwise the default
// delimiter set applies and the returned byte count is 0.
//
// UNA layout: "UNA" + component + element + decimal + release + reserved +
// terminator (exactly 9 bytes, no trailing terminator of its own).
func DetectDelimiters(data []byte) (*Delimiters, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if len(data) < 3 || string(data[:3]) != "UNA" {
		return DefaultDelimiters(), 0, nil
	}
	if len(data) < unaLength {
		return nil, 0, fmt.Errorf("%w: got %d bytes", ErrUNATooShort, len(data))
	}
	d := &Delimiters{
		Component:  rune(data[3]),
		Element:    rune(data[4]),
		Decimal:    rune(data[5]),
		Release:    rune(data[6]),
		Reserved:   rune(data[7]),
		Terminator: rune(data[8]),
	}
	return d, unaLength, nil
}

// UNA renders the delimiters as the 9-byte UNA service string.
func (d *Delimiters) UNA() string {
	return fmt.Sprintf("UNA%c%c%c%c%c%c", d.Component, d.Element, d.Decimal, d.Release, d.Reserved, d.Terminator)
}

// Equal reports whether two delimiter sets carry identical byte values.
func (d *Delimiters) Equal(other *Delimiters) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Component == other.Component &&
		d.Element == other.Element &&
		d.Decimal == other.Decimal &&
		d.Release == other.Release &&
		d.Reserved == other.Reserved &&
		d.Terminator == other.Terminator
}

// IsDefault reports whether the delimiter set equals the EDIFACT defaults.
func (d *Delimiters) IsDefault() bool {
	return d.Equal(DefaultDelimiters())
}
