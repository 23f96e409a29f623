package assemble

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

// cursor walks a flat segment list with save/restore support for the
// assembler's backtracking group-repetition attempts.
type cursor struct {
	segs []*edifact.Segment
	pos  int
}

func newCursor(segs []*edifact.Segment) *cursor {
	return &cursor{segs: segs}
}

// Peek returns the segment at the current position without consuming it,
// or nil if the cursor is exhausted.
func (c *cursor) Peek() *edifact.Segment {
	if c.pos >= len(c.segs) {
		return nil
	}
	return c.segs[c.pos]
}

// Next consumes and returns the segment at the current position.
func (c *cursor) Next() *edifact.Segment {
	s := c.Peek()
	if s != nil {
		c.pos++
	}
	return s
}

// Save returns a marker that Restore can roll back to.
func (c *cursor) Save() int {
	return c.pos
}

// Restore rewinds the cursor to a previously saved position.
func (c *cursor) Restore(mark int) {
	c.pos = mark
}

// Done reports whether every segment has been consumed.
func (c *cursor) Done() bool {
	return c.pos >= len(c.segs)
}
