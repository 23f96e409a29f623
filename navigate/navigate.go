// Package navigate implements the tree navigator and path resolver
// (component M): a linear pre-walk of a MIG schema plus its assembled
// tree, after which resolving a symbolic schema path (e.g.
// "SG4/SG5/LOC/C517/3225") to the component values present at that
// position is a pair of map lookups.
package navigate

import (
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
)

// resolvedPath is where one schema path lands: the flat-segment-index
// chain key it belongs under, plus its element/component position.
type resolvedPath struct {
	chainKey     string
	elementIndex int
	componentIndex int
}

// Navigator resolves schema paths against one assembled tree.
type Navigator struct {
	paths map[string]resolvedPath
	segs  map[string][]*edifact.Segment
}

// New builds a Navigator for tree against mig. Both indices are built in
// a single linear walk each; Resolve thereafter is O(1) per lookup.
func New(tree *assemble.Tree, mig *schema.MIG) *Navigator {
	return &Navigator{
		paths: buildPathIndex(mig),
		segs:  buildSegIndex(tree),
	}
}

// Resolve returns every non-empty component value found at path across
// every repetition it occurs in. ok is false if path names no known
// schema position or if no non-empty value is present at it (use Known
// to tell the two apart).
func (n *Navigator) Resolve(path string) (values []string, ok bool) {
	rp, known := n.paths[path]
	if !known {
		return nil, false
	}
	for _, s := range n.segs[rp.chainKey] {
		if v := s.Component(rp.elementIndex, rp.componentIndex); v != "" {
			values = append(values, v)
		}
	}
	return values, len(values) > 0
}

// Known reports whether path names a position this schema defines, even
// if no value is present for it in the tree.
func (n *Navigator) Known(path string) bool {
	_, ok := n.paths[path]
	return ok
}

func buildPathIndex(mig *schema.MIG) map[string]resolvedPath {
	idx := map[string]resolvedPath{}
	indexSegments(mig.Segments, nil, idx)
	for _, g := range mig.Groups {
		indexGroup(g, nil, idx)
	}
	return idx
}

func indexGroup(g schema.Group, chain []string, idx map[string]resolvedPath) {
	chain = append(append([]string{}, chain...), g.ID)
	indexSegments(g.Segments, chain, idx)
	for _, child := range g.Groups {
		indexGroup(child, chain, idx)
	}
}

func indexSegments(segs []schema.SegmentDef, chain []string, idx map[string]resolvedPath) {
	for _, s := range segs {
		chainKey := strings.Join(append(append([]string{}, chain...), s.Tag), "/")
		for i, el := range s.Elements {
			if len(el.Components) > 0 {
				for j, c := range el.Components {
					if c.ID == "" {
						continue
					}
					idx[chainKey+"/"+el.ID+"/"+c.ID] = resolvedPath{chainKey: chainKey, elementIndex: i, componentIndex: j}
				}
				continue
			}
			if el.ID == "" {
				continue
			}
			idx[chainKey+"/"+el.ID] = resolvedPath{chainKey: chainKey, elementIndex: i, componentIndex: 0}
		}
	}
}

func buildSegIndex(tree *assemble.Tree) map[string][]*edifact.Segment {
	idx := map[string][]*edifact.Segment{}
	if tree == nil {
		return idx
	}
	addSegs(tree.Pre, nil, idx)
	for _, occ := range tree.Groups {
		walkOccurrence(occ, nil, idx)
	}
	return idx
}

func addSegs(segs []*edifact.Segment, chain []string, idx map[string][]*edifact.Segment) {
	for _, s := range segs {
		key := strings.Join(append(append([]string{}, chain...), s.Tag), "/")
		idx[key] = append(idx[key], s)
	}
}

func walkOccurrence(occ assemble.GroupOccurrence, chain []string, idx map[string][]*edifact.Segment) {
	chain = append(append([]string{}, chain...), occ.GroupID)
	for _, rep := range occ.Repetitions {
		addSegs(rep.Segments, chain, idx)
		for _, child := range rep.Groups {
			walkOccurrence(child, chain, idx)
		}
	}
}
