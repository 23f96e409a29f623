// Package disassemble implements the disassembler (component G): walking
// an assembled tree in MIG schema order to re-emit an ordered segment
// list suitable for rendering.
//
// The walk is schema-guided rather than tree-guided so that it handles
// two inputs uniformly: a tree produced by the assembler (already in
// schema order) and a tree produced by reverse mapping, whose group
// occurrences may appear in arbitrary order but must still be
// structurally valid. Each schema position consumes a matching node from
// the tree exactly once, tracked with a per-level consumed bitmap.
package disassemble

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
)

// Disassemble walks mig and tree together, returning the body segments in
// canonical schema order plus any structure diagnostics (missing
// mandatory segments or groups the schema expects but the tree lacks).
func Disassemble(tree *assemble.Tree, mig *schema.MIG) ([]*edifact.Segment, []assemble.Diagnostic) {
	var out []*edifact.Segment
	var diags []assemble.Diagnostic

	pre := newSegmentPool(tree.Pre)
	for _, sdef := range mig.Segments {
		if s := pre.take(sdef.Tag); s != nil {
			out = append(out, s)
		} else if sdef.Mandatory {
			diags = append(diags, assemble.Diagnostic{
				Code: assemble.CodeMissingRequired,
				Tag:  sdef.Tag,
			})
		}
	}

	used := make([]bool, len(tree.Groups))
	for _, g := range mig.Groups {
		segs, gdiags := disassembleGroup(tree.Groups, used, g)
		out = append(out, segs...)
		diags = append(diags, gdiags...)
	}

	out = append(out, tree.Post...)
	return out, diags
}

func disassembleGroup(occs []assemble.GroupOccurrence, used []bool, g schema.Group) ([]*edifact.Segment, []assemble.Diagnostic) {
	var out []*edifact.Segment
	var diags []assemble.Diagnostic

	idx := findOccurrence(occs, used, g.ID, g.Qualifier)
	if idx < 0 {
		return nil, nil
	}
	used[idx] = true

	for _, rep := range occs[idx].Repetitions {
		segs, rdiags := disassembleRepetition(rep, g)
		out = append(out, segs...)
		diags = append(diags, rdiags...)
	}
	return out, diags
}

func disassembleRepetition(rep assemble.Repetition, g schema.Group) ([]*edifact.Segment, []assemble.Diagnostic) {
	var out []*edifact.Segment
	var diags []assemble.Diagnostic

	pool := newSegmentPool(rep.Segments)
	for _, sdef := range g.Segments {
		if s := pool.take(sdef.Tag); s != nil {
			out = append(out, s)
		} else if sdef.Mandatory {
			diags = append(diags, assemble.Diagnostic{
				Code:    assemble.CodeMissingRequired,
				Tag:     sdef.Tag,
				GroupID: g.ID,
			})
		}
	}

	used := make([]bool, len(rep.Groups))
	for _, child := range g.Groups {
		segs, gdiags := disassembleGroup(rep.Groups, used, child)
		out = append(out, segs...)
		diags = append(diags, gdiags...)
	}
	return out, diags
}

// findOccurrence returns the index of the first not-yet-consumed
// occurrence matching id/qualifier, or -1 if none remains.
func findOccurrence(occs []assemble.GroupOccurrence, used []bool, id, qualifier string) int {
	for i, o := range occs {
		if !used[i] && o.GroupID == id && o.Qualifier == qualifier {
			return i
		}
	}
	return -1
}

// segmentPool lets a schema walk claim each segment in a flat list at
// most once, regardless of the order the list happens to be in.
type segmentPool struct {
	segs []*edifact.Segment
	used []bool
}

func newSegmentPool(segs []*edifact.Segment) *segmentPool {
	return &segmentPool{segs: segs, used: make([]bool, len(segs))}
}

func (p *segmentPool) take(tag string) *edifact.Segment {
	for i, s := range p.segs {
		if !p.used[i] && s.Is(tag) {
			p.used[i] = true
			return s
		}
	}
	return nil
}
