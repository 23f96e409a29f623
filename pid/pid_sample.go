package pid

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Sample is a second, bespoke typed view demonstrating a
// qualifier-discriminated group: SG12 splits into two lead-segment
// qualifier variants (DP, Z09), the pattern schema.Group's Qualifier
// field exists to model.
type Sample struct {
	BGM *edifact.Segment
	DTM *edifact.Segment
	DP  []SampleSG12DP
	Z09 []SampleSG12Z09
}

// SampleSG12DP is the "DP" (Lieferant - delivery party) qualifier variant.
type SampleSG12DP struct {
	NAD *edifact.Segment
}

// SampleSG12Z09 is the "Z09" qualifier variant, which additionally
// carries a reference segment.
type SampleSG12Z09 struct {
	NAD *edifact.Segment
	RFF *edifact.Segment
}

// FromTreeSample extracts a Sample view from an assembled tree.
func FromTreeSample(tree *assemble.Tree) *Sample {
	p := &Sample{
		BGM: findSegment(tree.Pre, "BGM"),
		DTM: findSegment(tree.Pre, "DTM"),
	}
	for _, occ := range tree.Groups {
		if occ.GroupID != "SG12" {
			continue
		}
		switch occ.Qualifier {
		case "DP":
			for _, rep := range occ.Repetitions {
				p.DP = append(p.DP, SampleSG12DP{NAD: findSegment(rep.Segments, "NAD")})
			}
		case "Z09":
			for _, rep := range occ.Repetitions {
				p.Z09 = append(p.Z09, SampleSG12Z09{
					NAD: findSegment(rep.Segments, "NAD"),
					RFF: findSegment(rep.Segments, "RFF"),
				})
			}
		}
	}
	return p
}

// ToGroups converts the view back into the qualifier-discriminated
// sibling GroupOccurrence shape the disassembler expects.
func (p *Sample) ToGroups() []assemble.GroupOccurrence {
	var groups []assemble.GroupOccurrence
	if len(p.DP) > 0 {
		occ := assemble.GroupOccurrence{GroupID: "SG12", Qualifier: "DP"}
		for _, v := range p.DP {
			occ.Repetitions = append(occ.Repetitions, assemble.Repetition{Segments: nonNil(v.NAD)})
		}
		groups = append(groups, occ)
	}
	if len(p.Z09) > 0 {
		occ := assemble.GroupOccurrence{GroupID: "SG12", Qualifier: "Z09"}
		for _, v := range p.Z09 {
			occ.Repetitions = append(occ.Repetitions, assemble.Repetition{Segments: nonNil(v.NAD, v.RFF)})
		}
		groups = append(groups, occ)
	}
	return groups
}
