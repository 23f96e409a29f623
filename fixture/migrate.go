package fixture

import (
	"fmt"
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Severity classifies how serious a migration Note is.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

// Note flags something the migrator could not do mechanically.
type Note struct {
	Severity Severity
	GroupID  string
	Message  string
}

// Result is the output of one migration run.
type Result struct {
	Segments []*edifact.Segment
	Notes    []Note
}

// UNH composite element 1 holds "messageType:version:release:agency:..."
// (e.g. "UTILMD:D:11A:UN:S1.0"); the schema version a diff replaces is the
// release string ("11A"), at component index 2.
const (
	unhMessageTypeElement = 1
	unhVersionComponent   = 2
)

// Migrate applies diff to segments: the UNH version string is replaced,
// removed segments are dropped, and matching code renames are
// substituted in place. Restructured and added groups produce Notes
// requiring manual review rather than synthesized payload data.
func Migrate(segments []*edifact.Segment, diff SchemaDiff) *Result {
	removed := toTagSet(diff.RemovedSegments)
	result := &Result{}

	for _, s := range segments {
		switch {
		case s.Is("UNH"):
			result.Segments = append(result.Segments, withVersion(s, diff.NewVersion))
		case removed[strings.ToUpper(s.Tag)]:
			continue
		default:
			result.Segments = append(result.Segments, applyRenames(s, diff.CodeRenames))
		}
	}

	for _, g := range diff.RestructuredGroups {
		result.Notes = append(result.Notes, Note{
			Severity: SeverityError,
			GroupID:  g,
			Message:  fmt.Sprintf("group %s was restructured between schema versions; manual review required", g),
		})
	}
	for _, g := range diff.AddedGroups {
		result.Notes = append(result.Notes, Note{
			Severity: SeverityWarning,
			GroupID:  g,
			Message:  fmt.Sprintf("group %s is new in the target schema; fixture does not populate it", g),
		})
	}

	return result
}

func toTagSet(tags []string) map[string]bool {
	out := make(map[string]bool, len(tags))
	for _, t := range tags {
		out[strings.ToUpper(t)] = true
	}
	return out
}

func withVersion(seg *edifact.Segment, version string) *edifact.Segment {
	if version == "" {
		return seg
	}
	out := seg.Clone()
	for len(out.Elements) <= unhMessageTypeElement {
		out.Elements = append(out.Elements, []string{})
	}
	for len(out.Elements[unhMessageTypeElement]) <= unhVersionComponent {
		out.Elements[unhMessageTypeElement] = append(out.Elements[unhMessageTypeElement], "")
	}
	out.Elements[unhMessageTypeElement][unhVersionComponent] = version
	return out
}

func applyRenames(seg *edifact.Segment, renames []CodeRename) *edifact.Segment {
	var out *edifact.Segment
	for _, r := range renames {
		if !seg.Is(r.Tag) || seg.Component(r.ElementIndex, r.ComponentIndex) != r.From {
			continue
		}
		if out == nil {
			out = seg.Clone()
		}
		out.Elements[r.ElementIndex][r.ComponentIndex] = r.To
	}
	if out == nil {
		return seg
	}
	return out
}
