package pid_test

import (
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/pid"
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

func TestFromTree55001ExtractsPartiesAndObjects(t *testing.T) {
	tree := &assemble.Tree{
		Pre: []*edifact.Segment{seg("BGM", "E01"), seg("DTM", "137")},
		Groups: []assemble.GroupOccurrence{
			{
				GroupID: "SG2",
				Repetitions: []assemble.Repetition{
					{Segments: []*edifact.Segment{seg("NAD", "MS")}},
					{Segments: []*edifact.Segment{seg("NAD", "MR")}},
				},
			},
			{
				GroupID: "SG4",
				Repetitions: []assemble.Repetition{
					{Segments: []*edifact.Segment{seg("SEQ", "Z01"), seg("LOC", "172")}},
				},
			},
		},
	}

	view := pid.FromTree55001(tree)

	require.NotNil(t, view.BGM)
	assert.Equal(t, "E01", view.BGM.Element(0))
	require.Len(t, view.Parteien, 2)
	assert.Equal(t, "MS", view.Parteien[0].NAD.Element(0))
	require.Len(t, view.Objekte, 1)
	assert.Equal(t, "172", view.Objekte[0].LOC.Element(0))
}

func TestPid55001ToGroupsRoundTrips(t *testing.T) {
	original := &assemble.Tree{
		Groups: []assemble.GroupOccurrence{
			{GroupID: "SG2", Repetitions: []assemble.Repetition{{Segments: []*edifact.Segment{seg("NAD", "MS")}}}},
			{GroupID: "SG4", Repetitions: []assemble.Repetition{{Segments: []*edifact.Segment{seg("SEQ", "Z01"), seg("LOC", "172")}}}},
		},
	}

	view := pid.FromTree55001(original)
	groups := view.ToGroups()

	require.Len(t, groups, 2)
	assert.Equal(t, "SG2", groups[0].GroupID)
	assert.Equal(t, "SG4", groups[1].GroupID)
	assert.Equal(t, "MS", groups[0].Repetitions[0].Segments[0].Element(0))
}

func TestFromTreeSampleSplitsQualifierVariants(t *testing.T) {
	tree := &assemble.Tree{
		Groups: []assemble.GroupOccurrence{
			{GroupID: "SG12", Qualifier: "DP", Repetitions: []assemble.Repetition{
				{Segments: []*edifact.Segment{seg("NAD", "DP")}},
			}},
			{GroupID: "SG12", Qualifier: "Z09", Repetitions: []assemble.Repetition{
				{Segments: []*edifact.Segment{seg("NAD", "Z09"), seg("RFF", "Z13")}},
			}},
		},
	}

	view := pid.FromTreeSample(tree)

	require.Len(t, view.DP, 1)
	assert.Equal(t, "DP", view.DP[0].NAD.Element(0))
	require.Len(t, view.Z09, 1)
	assert.Equal(t, "Z09", view.Z09[0].NAD.Element(0))
	assert.Equal(t, "Z13", view.Z09[0].RFF.Element(0))
}

func TestSampleToGroupsPreservesQualifiers(t *testing.T) {
	view := &pid.Sample{
		DP:  []pid.SampleSG12DP{{NAD: seg("NAD", "DP")}},
		Z09: []pid.SampleSG12Z09{{NAD: seg("NAD", "Z09"), RFF: seg("RFF", "Z13")}},
	}

	groups := view.ToGroups()

	require.Len(t, groups, 2)
	assert.Equal(t, "DP", groups[0].Qualifier)
	assert.Equal(t, "Z09", groups[1].Qualifier)
}
