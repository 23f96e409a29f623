package mapping

import (
	"fmt"
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Reverse reconstructs a partial assembled-tree repetition from a
// BO4E-shaped JSON object, writing each field's value into a newly
// constructed segment at the path's element/component position. Unknown
// keys (present in data but named by no Field or Companion) are ignored;
// they carry no schema position to attach to.
func Reverse(data map[string]any, def Definition) (*assemble.Repetition, error) {
	rep := &assemble.Repetition{}

	segsByTag := map[string]*edifact.Segment{}
	var tagOrder []string

	for _, f := range def.Fields {
		v, ok := getNested(data, f.Key)
		if !ok {
			continue
		}
		tag, elIdx, compIdx, err := parsePath(f.Path)
		if err != nil {
			return nil, err
		}
		seg, seen := segsByTag[tag]
		if !seen {
			seg = edifact.NewSegment(tag)
			segsByTag[tag] = seg
			tagOrder = append(tagOrder, tag)
		}
		ensureComponent(seg, elIdx, compIdx)
		seg.Elements[elIdx][compIdx] = wireEscaper.Escape(scalarString(v))
	}

	for _, tag := range tagOrder {
		rep.Segments = append(rep.Segments, segsByTag[tag])
	}

	for _, comp := range def.Companions {
		leadID := lastID(comp.GroupPath)
		switch val := data[comp.Entity].(type) {
		case []any:
			occ := assemble.GroupOccurrence{GroupID: leadID}
			for _, item := range val {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				childRep, err := Reverse(m, comp)
				if err != nil {
					return nil, err
				}
				occ.Repetitions = append(occ.Repetitions, *childRep)
			}
			if len(occ.Repetitions) > 0 {
				rep.Groups = append(rep.Groups, occ)
			}
		case map[string]any:
			childRep, err := Reverse(val, comp)
			if err != nil {
				return nil, err
			}
			rep.Groups = append(rep.Groups, assemble.GroupOccurrence{
				GroupID:     leadID,
				Repetitions: []assemble.Repetition{*childRep},
			})
		}
	}

	return rep, nil
}

func lastID(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

func scalarString(v any) string {
	if m, ok := v.(map[string]any); ok {
		if code, ok := m["code"].(string); ok {
			return code
		}
	}
	return fmt.Sprintf("%v", v)
}

func getNested(m map[string]any, dottedKey string) (any, bool) {
	parts := strings.Split(dottedKey, ".")
	cur := any(m)
	for _, p := range parts {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := obj[p]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func ensureComponent(seg *edifact.Segment, elIdx, compIdx int) {
	for len(seg.Elements) <= elIdx {
		seg.Elements = append(seg.Elements, []string{})
	}
	for len(seg.Elements[elIdx]) <= compIdx {
		seg.Elements[elIdx] = append(seg.Elements[elIdx], "")
	}
}
