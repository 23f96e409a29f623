package schema

// Filter reduces a MIG tree to the subset of nodes referenced by the given
// set of segment numbers (as named in a Workflow's SegmentNumbers),
// keeping every ancestor of a kept node so the tree stays well-formed.
// A group whose Number is itself in the set, or that contains any kept
// descendant, is kept in full structural position (its id/max-rep/order
// are preserved); its children are filtered recursively.
//
// Used to speed up assembly and validation for a single PID by skipping
// nodes that cannot appear in its workflow.
func Filter(mig *MIG, numbers map[int]bool) *MIG {
	if mig == nil {
		return nil
	}
	out := &MIG{
		MessageType:   mig.MessageType,
		Variant:       mig.Variant,
		Version:       mig.Version,
		FormatVersion: mig.FormatVersion,
	}
	for _, s := range mig.Segments {
		if keepSegment(s, numbers) {
			out.Segments = append(out.Segments, s)
		}
	}
	for _, g := range mig.Groups {
		if fg, ok := filterGroup(g, numbers); ok {
			out.Groups = append(out.Groups, fg)
		}
	}
	return out
}

func keepSegment(s SegmentDef, numbers map[int]bool) bool {
	return numbers[s.Number]
}

func filterGroup(g Group, numbers map[int]bool) (Group, bool) {
	out := Group{ID: g.ID, Qualifier: g.Qualifier, MaxRep: g.MaxRep, Number: g.Number}
	kept := numbers[g.Number]

	for _, s := range g.Segments {
		if keepSegment(s, numbers) {
			out.Segments = append(out.Segments, s)
			kept = true
		}
	}
	for _, child := range g.Groups {
		if fc, ok := filterGroup(child, numbers); ok {
			out.Groups = append(out.Groups, fc)
			kept = true
		}
	}
	return out, kept
}
