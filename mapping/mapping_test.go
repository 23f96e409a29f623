package mapping_test

import (
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/mapping"
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

func TestForwardReadsFieldsWithDefaultsAndCodes(t *testing.T) {
	segments := []*edifact.Segment{seg("BGM", "E01")}
	def := mapping.Definition{
		Entity: "nachricht",
		Fields: []mapping.Field{
			{Path: "BGM.0.0", Key: "dokumentenart", Codes: map[string]string{"E01": "Anmeldung"}},
			{Path: "BGM.1.0", Key: "fehlendesFeld", Default: "unbekannt"},
		},
	}

	out, err := mapping.Forward(segments, nil, def, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"code": "E01", "meaning": "Anmeldung"}, out["dokumentenart"])
	assert.Equal(t, "unbekannt", out["fehlendesFeld"])
}

func TestForwardAppliesDiscriminatorAcrossOccurrences(t *testing.T) {
	groups := []assemble.GroupOccurrence{
		{GroupID: "SG8", Repetitions: []assemble.Repetition{
			{Segments: []*edifact.Segment{seg("SEQ", "Z01"), seg("RFF", "one")}},
			{Segments: []*edifact.Segment{seg("SEQ", "Z98"), seg("RFF", "two")}},
		}},
	}
	def := mapping.Definition{
		Entity:        "zaehlwerk",
		GroupPath:     []string{"SG8"},
		Discriminator: &mapping.Discriminator{ElementIndex: 0, Value: "Z98"},
		Fields:        []mapping.Field{{Path: "RFF.0.0", Key: "referenz"}},
	}

	out, err := mapping.Forward(nil, groups, def, 0)
	require.NoError(t, err)
	assert.Equal(t, "two", out["referenz"])
}

func TestMapAllMergesMultipleRepetitionsAsArray(t *testing.T) {
	groups := []assemble.GroupOccurrence{
		{GroupID: "SG4", Repetitions: []assemble.Repetition{
			{Segments: []*edifact.Segment{seg("NAD", "MS")}},
			{Segments: []*edifact.Segment{seg("NAD", "MR")}},
		}},
	}
	defs := []mapping.Definition{
		{
			Entity:    "marktpartner",
			GroupPath: []string{"SG4"},
			Fields:    []mapping.Field{{Path: "NAD.0.0", Key: "rolle"}},
		},
	}

	out, err := mapping.MapAll(nil, groups, defs)
	require.NoError(t, err)
	arr, ok := out["marktpartner"].([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)
	assert.Equal(t, "MS", arr[0].(map[string]any)["rolle"])
	assert.Equal(t, "MR", arr[1].(map[string]any)["rolle"])
}

func TestReverseBuildsSegmentsFromFields(t *testing.T) {
	def := mapping.Definition{
		Entity: "nachricht",
		Fields: []mapping.Field{
			{Path: "BGM.0.0", Key: "dokumentenart"},
		},
	}
	data := map[string]any{"dokumentenart": map[string]any{"code": "E01", "meaning": "Anmeldung"}}

	rep, err := mapping.Reverse(data, def)
	require.NoError(t, err)
	require.Len(t, rep.Segments, 1)
	assert.Equal(t, "BGM", rep.Segments[0].Tag)
	assert.Equal(t, "E01", rep.Segments[0].Element(0))
}

func TestReverseBuildsGroupRepetitionsFromArrays(t *testing.T) {
	def := mapping.Definition{
		Entity: "nachricht",
		Companions: []mapping.Definition{
			{
				Entity:    "marktpartner",
				GroupPath: []string{"SG4"},
				Fields:    []mapping.Field{{Path: "NAD.0.0", Key: "rolle"}},
			},
		},
	}
	data := map[string]any{
		"marktpartner": []any{
			map[string]any{"rolle": "MS"},
			map[string]any{"rolle": "MR"},
		},
	}

	rep, err := mapping.Reverse(data, def)
	require.NoError(t, err)
	require.Len(t, rep.Groups, 1)
	assert.Equal(t, "SG4", rep.Groups[0].GroupID)
	require.Len(t, rep.Groups[0].Repetitions, 2)
	assert.Equal(t, "MS", rep.Groups[0].Repetitions[0].Segments[0].Element(0))
	assert.Equal(t, "MR", rep.Groups[0].Repetitions[1].Segments[0].Element(0))
}

func TestLoadDefinitionsParsesTOML(t *testing.T) {
	doc := `
[[definition]]
entity = "nachricht"

[[definition.field]]
path = "BGM.0.0"
key = "dokumentenart"

[definition.field.codes]
E01 = "Anmeldung"
`
	defs, err := mapping.LoadDefinitions([]byte(doc))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "nachricht", defs[0].Entity)
	require.Len(t, defs[0].Fields, 1)
	assert.Equal(t, "Anmeldung", defs[0].Fields[0].Codes["E01"])
}
