package disassemble_test

import (
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/disassemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(tag string, elements ...string) *edifact.Segment {
	s := edifact.NewSegment(tag)
	for _, e := range elements {
		s.Elements = append(s.Elements, []string{e})
	}
	return s
}

func TestDisassembleRoundTripsAssembledTree(t *testing.T) {
	mig := &schema.MIG{
		Segments: []schema.SegmentDef{{Tag: "BGM", Mandatory: true}},
		Groups: []schema.Group{
			{ID: "SG4", MaxRep: 9, Segments: []schema.SegmentDef{{Tag: "NAD", Mandatory: true}}},
		},
	}
	input := []*edifact.Segment{seg("BGM", "380"), seg("NAD", "MS"), seg("NAD", "MR"), seg("UNT", "3")}

	tree, diags := assemble.Assemble(input, mig)
	require.Empty(t, diags)

	out, ddiags := disassemble.Disassemble(tree, mig)
	require.Empty(t, ddiags)

	require.Len(t, out, 4)
	assert.Equal(t, "BGM", out[0].Tag)
	assert.Equal(t, "NAD", out[1].Tag)
	assert.Equal(t, "MS", out[1].Element(0))
	assert.Equal(t, "NAD", out[2].Tag)
	assert.Equal(t, "MR", out[2].Element(0))
	assert.Equal(t, "UNT", out[3].Tag)
}

func TestDisassembleHandlesOutOfOrderGroupOccurrences(t *testing.T) {
	mig := &schema.MIG{
		Groups: []schema.Group{
			{ID: "SG8", Qualifier: "Z01", Segments: []schema.SegmentDef{{Tag: "SEQ", Mandatory: true}}},
			{ID: "SG8", Qualifier: "Z98", Segments: []schema.SegmentDef{{Tag: "SEQ", Mandatory: true}}},
		},
	}
	// Reverse-mapped trees may list group occurrences in any order; put
	// Z98 first to prove the walk still follows schema order for output.
	tree := &assemble.Tree{
		Groups: []assemble.GroupOccurrence{
			{GroupID: "SG8", Qualifier: "Z98", Repetitions: []assemble.Repetition{
				{Segments: []*edifact.Segment{seg("SEQ", "Z98")}},
			}},
			{GroupID: "SG8", Qualifier: "Z01", Repetitions: []assemble.Repetition{
				{Segments: []*edifact.Segment{seg("SEQ", "Z01")}},
			}},
		},
	}

	out, diags := disassemble.Disassemble(tree, mig)
	require.Empty(t, diags)
	require.Len(t, out, 2)
	assert.Equal(t, "Z01", out[0].Element(0))
	assert.Equal(t, "Z98", out[1].Element(0))
}

func TestDisassembleReportsMissingMandatorySegment(t *testing.T) {
	mig := &schema.MIG{
		Groups: []schema.Group{
			{ID: "SG4", Segments: []schema.SegmentDef{
				{Tag: "NAD", Mandatory: true},
				{Tag: "LOC", Mandatory: true},
			}},
		},
	}
	tree := &assemble.Tree{
		Groups: []assemble.GroupOccurrence{
			{GroupID: "SG4", Repetitions: []assemble.Repetition{
				{Segments: []*edifact.Segment{seg("NAD", "MS")}},
			}},
		},
	}

	out, diags := disassemble.Disassemble(tree, mig)
	require.Len(t, out, 1)
	require.Len(t, diags, 1)
	assert.Equal(t, assemble.CodeMissingRequired, diags[0].Code)
	assert.Equal(t, "LOC", diags[0].Tag)
}
