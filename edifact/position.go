package edifact

// Position locates a segment within an interchange: its 1-based segment
// number (excluding any UNA), its byte offset into the original buffer, and
// the 1-based message number it belongs to (0 for envelope-level segments
// such as UNB and UNZ, which sit outside any UNH/UNT pair).
type Position struct {
	SegmentNumber int
	ByteOffset    int
	MessageNumber int
}
