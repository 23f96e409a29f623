package assemble

import (
	"fmt"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
)

// Assemble matches the flat body segment list against mig, returning the
// assembled tree plus any structure diagnostics collected along the way.
// Assembly is best-effort: it never aborts on a bad segment, it only
// records a diagnostic and keeps going.
func Assemble(segments []*edifact.Segment, mig *schema.MIG) (*Tree, []Diagnostic) {
	c := newCursor(segments)
	tree := &Tree{}
	var diags []Diagnostic

	for _, sdef := range mig.Segments {
		if seg := c.Peek(); seg != nil && seg.Is(sdef.Tag) {
			tree.Pre = append(tree.Pre, c.Next())
			continue
		}
		if sdef.Mandatory {
			diags = append(diags, Diagnostic{
				Code: CodeMissingRequired,
				Tag:  sdef.Tag,
			})
		}
	}

	for _, g := range mig.Groups {
		occ, gdiags := matchGroupOccurrences(c, g)
		diags = append(diags, gdiags...)
		if occ != nil {
			tree.Groups = append(tree.Groups, *occ)
		}
	}

	for !c.Done() {
		tree.Post = append(tree.Post, c.Next())
	}

	return tree, diags
}

// matchGroupOccurrences repeatedly attempts one group's repetition, up to
// its max-rep bound, and reports an over-repetition diagnostic if another
// repetition was available beyond that bound.
func matchGroupOccurrences(c *cursor, g schema.Group) (*GroupOccurrence, []Diagnostic) {
	maxRep := g.MaxRep
	if maxRep <= 0 {
		maxRep = 1
	}

	occ := &GroupOccurrence{GroupID: g.ID, Qualifier: g.Qualifier}
	var diags []Diagnostic

	for len(occ.Repetitions) < maxRep {
		rep, rdiags, ok := matchRepetition(c, g)
		if !ok {
			break
		}
		occ.Repetitions = append(occ.Repetitions, *rep)
		diags = append(diags, rdiags...)
	}

	if len(occ.Repetitions) == maxRep {
		save := c.Save()
		if _, _, ok := matchRepetition(c, g); ok {
			diags = append(diags, Diagnostic{
				Code:    CodeOverRepetition,
				GroupID: g.ID,
				Detail:  fmt.Sprintf("more than %d repetitions available", maxRep),
			})
		}
		c.Restore(save)
	}

	if len(occ.Repetitions) == 0 {
		return nil, diags
	}
	return occ, diags
}

// matchRepetition attempts a single repetition of g at the cursor's
// current position. It restores the cursor and returns ok=false if no
// slot (segment or nested group) matched anything.
func matchRepetition(c *cursor, g schema.Group) (*Repetition, []Diagnostic, bool) {
	save := c.Save()

	if g.Qualifier != "" && len(g.Segments) > 0 {
		lead := g.Segments[0]
		seg := c.Peek()
		if seg == nil || !seg.Is(lead.Tag) || seg.Element(0) != g.Qualifier {
			c.Restore(save)
			return nil, nil, false
		}
	}

	rep := &Repetition{}
	var diags []Diagnostic
	any := false

	for _, sdef := range g.Segments {
		for {
			seg := c.Peek()
			if seg != nil && seg.Is(sdef.Tag) {
				rep.Segments = append(rep.Segments, c.Next())
				any = true
				break
			}
			if seg != nil && any && matchesLaterSlot(seg, g.Segments, g.Groups) {
				// Belongs to another slot in this group (a later segment in
				// this repetition, or the lead of the next repetition);
				// leave it for that position.
				break
			}
			if seg != nil && any {
				// Matches nothing remaining in this repetition: discard.
				c.Next()
				diags = append(diags, Diagnostic{
					Code:    CodeUnexpectedSegment,
					Tag:     seg.Tag,
					GroupID: g.ID,
				})
				continue
			}
			if sdef.Mandatory && any {
				diags = append(diags, Diagnostic{
					Code: CodeMissingRequired,
					Tag:  sdef.Tag,
				})
			}
			break
		}
	}

	for _, child := range g.Groups {
		occ, gdiags := matchGroupOccurrences(c, child)
		if occ != nil {
			rep.Groups = append(rep.Groups, *occ)
			any = true
		}
		if any {
			diags = append(diags, gdiags...)
		}
	}

	if !any {
		c.Restore(save)
		return nil, nil, false
	}
	return rep, diags, true
}

// matchesLaterSlot reports whether seg's tag matches any of the given
// segment slots or a child group's lead segment, meaning it should be left
// for a later position rather than treated as unexpected here. The caller
// passes every slot of the group, so a tag of an already-filled slot (such
// as the lead of the next repetition) also matches.
func matchesLaterSlot(seg *edifact.Segment, laterSegments []schema.SegmentDef, groups []schema.Group) bool {
	for _, s := range laterSegments {
		if seg.Is(s.Tag) {
			return true
		}
	}
	for _, g := range groups {
		if len(g.Segments) > 0 && seg.Is(g.Segments[0].Tag) {
			return true
		}
	}
	return false
}
