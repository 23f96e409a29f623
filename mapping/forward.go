package mapping

import (
	"fmt"
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/internal/escape"
)

// wireEscaper unescapes release-character sequences out of component
// text read off the assembled tree. Mapping definitions are authored
// against the default EDIFACT delimiter set; a scope assembled with a
// non-default UNA would need its own Escaper, not currently threaded
// through Forward's signature.
var wireEscaper = escape.New(nil)

// Forward projects one instance of def's group onto a BO4E-shaped JSON
// object. segments and groups are the current scope: either the whole
// message (tree.Pre/tree.Groups) or one transaction's own subtree
// (rep.Segments/rep.Groups), as selected by the caller (the interchange
// orchestrator, component I).
func Forward(segments []*edifact.Segment, groups []assemble.GroupOccurrence, def Definition, instanceIndex int) (map[string]any, error) {
	leaf, err := leafSegments(segments, groups, def.GroupPath, def.Discriminator, instanceIndex)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	for _, f := range def.Fields {
		if v, ok := readField(leaf, f); ok {
			setNested(out, f.Key, v)
		} else if f.Default != "" {
			setNested(out, f.Key, f.Default)
		}
	}
	for _, comp := range def.Companions {
		cv, err := Forward(leaf, nil, comp, 0)
		if err != nil {
			continue
		}
		out[comp.Entity+"_edifact"] = cv
	}
	return out, nil
}

// CountInstances reports how many repetitions def's group path (filtered
// by its discriminator, if any) resolves to within the given scope.
func CountInstances(segments []*edifact.Segment, groups []assemble.GroupOccurrence, def Definition) int {
	if len(def.GroupPath) == 0 {
		return 1
	}
	reps, err := resolveLeafRepetitions(groups, def.GroupPath, def.Discriminator)
	if err != nil {
		return 0
	}
	return len(reps)
}

// MapAll runs every definition across all of its matching instances and
// merges the results under their entity keys: an array when multiple
// un-discriminated repetitions exist, a bare object otherwise.
func MapAll(segments []*edifact.Segment, groups []assemble.GroupOccurrence, defs []Definition) (map[string]any, error) {
	out := map[string]any{}
	for _, def := range defs {
		n := CountInstances(segments, groups, def)
		if n == 0 {
			continue
		}
		var results []map[string]any
		for i := 0; i < n; i++ {
			r, err := Forward(segments, groups, def, i)
			if err != nil {
				continue
			}
			results = append(results, r)
		}
		if len(results) == 0 {
			continue
		}
		if def.Discriminator != nil || len(results) == 1 {
			out[def.Entity] = results[0]
		} else {
			arr := make([]any, len(results))
			for i, r := range results {
				arr[i] = r
			}
			out[def.Entity] = arr
		}
	}
	return out, nil
}

func leafSegments(segments []*edifact.Segment, groups []assemble.GroupOccurrence, path []string, disc *Discriminator, instanceIndex int) ([]*edifact.Segment, error) {
	if len(path) == 0 {
		return segments, nil
	}
	reps, err := resolveLeafRepetitions(groups, path, disc)
	if err != nil {
		return nil, err
	}
	if instanceIndex < 0 || instanceIndex >= len(reps) {
		return nil, fmt.Errorf("mapping: instance index %d out of range (%d repetitions)", instanceIndex, len(reps))
	}
	return reps[instanceIndex].Segments, nil
}

// resolveLeafRepetitions descends path through groups, taking the first
// matching occurrence's first repetition at every level but the last,
// where every repetition across every matching occurrence is flattened
// and filtered by disc.
func resolveLeafRepetitions(groups []assemble.GroupOccurrence, path []string, disc *Discriminator) ([]assemble.Repetition, error) {
	cur := groups
	for i, id := range path {
		matched := filterByID(cur, id)
		if len(matched) == 0 {
			return nil, fmt.Errorf("mapping: group %q not present in scope", id)
		}
		if i < len(path)-1 {
			if len(matched[0].Repetitions) == 0 {
				return nil, fmt.Errorf("mapping: group %q has no repetitions", id)
			}
			cur = matched[0].Repetitions[0].Groups
			continue
		}
		reps := flattenReps(matched)
		if disc != nil {
			reps = filterDiscriminator(reps, *disc)
		}
		return reps, nil
	}
	return nil, fmt.Errorf("mapping: empty group path")
}

func filterByID(occs []assemble.GroupOccurrence, id string) []assemble.GroupOccurrence {
	var out []assemble.GroupOccurrence
	for _, o := range occs {
		if o.GroupID == id {
			out = append(out, o)
		}
	}
	return out
}

func flattenReps(occs []assemble.GroupOccurrence) []assemble.Repetition {
	var out []assemble.Repetition
	for _, o := range occs {
		out = append(out, o.Repetitions...)
	}
	return out
}

func filterDiscriminator(reps []assemble.Repetition, d Discriminator) []assemble.Repetition {
	var out []assemble.Repetition
	for _, r := range reps {
		if len(r.Segments) == 0 {
			continue
		}
		if r.Segments[0].Element(d.ElementIndex) == d.Value {
			out = append(out, r)
		}
	}
	return out
}

func readField(segs []*edifact.Segment, f Field) (any, bool) {
	tag, elIdx, compIdx, err := parsePath(f.Path)
	if err != nil {
		return nil, false
	}
	for _, s := range segs {
		if !s.Is(tag) {
			continue
		}
		v := wireEscaper.Unescape(s.Component(elIdx, compIdx))
		if v == "" {
			return nil, false
		}
		if f.Codes != nil {
			meaning, known := f.Codes[v]
			if !known {
				meaning = ""
			}
			return map[string]any{"code": v, "meaning": meaning}, true
		}
		return v, true
	}
	return nil, false
}

// setNested writes v into m at a dotted key, creating intermediate
// objects as needed.
func setNested(m map[string]any, dottedKey string, v any) {
	parts := strings.Split(dottedKey, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}
