package pid

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
)

// Pid55001 is a typed view over PID 55001 (UTILMD Anmeldung): a
// message-level header plus a repeating party group (SG2) and a
// repeating object/location group (SG4).
type Pid55001 struct {
	BGM      *edifact.Segment
	DTM      *edifact.Segment
	Parteien []Pid55001SG2
	Objekte  []Pid55001SG4
}

// Pid55001SG2 is one party (NAD) repetition.
type Pid55001SG2 struct {
	NAD *edifact.Segment
}

// Pid55001SG4 is one object/location (SEQ + LOC) repetition.
type Pid55001SG4 struct {
	SEQ *edifact.Segment
	LOC *edifact.Segment
}

// FromTree55001 extracts a Pid55001 view from an assembled tree. Missing
// segments or groups leave the corresponding field nil or empty; this
// view is read-only convenience, not a validator.
func FromTree55001(tree *assemble.Tree) *Pid55001 {
	p := &Pid55001{
		BGM: findSegment(tree.Pre, "BGM"),
		DTM: findSegment(tree.Pre, "DTM"),
	}
	for _, occ := range tree.Groups {
		switch occ.GroupID {
		case "SG2":
			for _, rep := range occ.Repetitions {
				p.Parteien = append(p.Parteien, Pid55001SG2{NAD: findSegment(rep.Segments, "NAD")})
			}
		case "SG4":
			for _, rep := range occ.Repetitions {
				p.Objekte = append(p.Objekte, Pid55001SG4{
					SEQ: findSegment(rep.Segments, "SEQ"),
					LOC: findSegment(rep.Segments, "LOC"),
				})
			}
		}
	}
	return p
}

// ToGroups converts the view back into the group-occurrence shape the
// disassembler expects, for round-tripping through disassemble.Disassemble.
func (p *Pid55001) ToGroups() []assemble.GroupOccurrence {
	var groups []assemble.GroupOccurrence
	if len(p.Parteien) > 0 {
		occ := assemble.GroupOccurrence{GroupID: "SG2"}
		for _, party := range p.Parteien {
			occ.Repetitions = append(occ.Repetitions, assemble.Repetition{Segments: nonNil(party.NAD)})
		}
		groups = append(groups, occ)
	}
	if len(p.Objekte) > 0 {
		occ := assemble.GroupOccurrence{GroupID: "SG4"}
		for _, obj := range p.Objekte {
			occ.Repetitions = append(occ.Repetitions, assemble.Repetition{Segments: nonNil(obj.SEQ, obj.LOC)})
		}
		groups = append(groups, occ)
	}
	return groups
}
