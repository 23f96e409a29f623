package validate_test

import (
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/condition"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/navigate"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
	"github.com/JoschaMetze/edifact-mapper-sub002/validate"
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

type alwaysTrueInternal struct{}

func (alwaysTrueInternal) EvaluateInternal(schema.ConditionEntry) condition.Tri { return condition.True }

func TestValidateStructureLevelOnlyReportsAssemblyDiagnostics(t *testing.T) {
	diags := []assemble.Diagnostic{{Code: assemble.CodeMissingRequired, Tag: "NAD"}}
	report := validate.Validate(navigate.New(&assemble.Tree{}, &schema.MIG{}), diags, schema.Workflow{
		Fields: []schema.FieldRule{{Path: "BGM/1001", Name: "doc type", Status: "Muss"}},
	}, &schema.RuleSet{}, nil, nil, nil, validate.Structure)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, validate.CategoryStructure, report.Issues[0].Category)
	assert.False(t, report.Valid())
}

func TestValidateConditionsFlagsMissingRequiredField(t *testing.T) {
	mig := &schema.MIG{Segments: []schema.SegmentDef{
		{Tag: "DTM", Elements: []schema.DataElement{{ID: "2005"}}},
	}}
	tree := &assemble.Tree{} // no DTM present
	wf := schema.Workflow{Fields: []schema.FieldRule{
		{Path: "DTM/2005", Name: "Nachrichtendatum", Status: "Muss"},
	}}

	report := validate.Validate(navigate.New(tree, mig), nil, wf, &schema.RuleSet{}, mig, nil, nil, validate.Conditions)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, validate.SeverityError, report.Issues[0].Severity)
	assert.Equal(t, validate.CategoryAHB, report.Issues[0].Category)
	assert.False(t, report.Valid())
}

func TestValidatePresentRequiredFieldPasses(t *testing.T) {
	mig := &schema.MIG{Segments: []schema.SegmentDef{
		{Tag: "DTM", Elements: []schema.DataElement{{ID: "2005"}}},
	}}
	tree := &assemble.Tree{Pre: []*edifact.Segment{seg("DTM", "20260731")}}
	wf := schema.Workflow{Fields: []schema.FieldRule{
		{Path: "DTM/2005", Name: "Nachrichtendatum", Status: "Muss"},
	}}

	report := validate.Validate(navigate.New(tree, mig), nil, wf, &schema.RuleSet{}, mig, nil, nil, validate.Conditions)
	assert.Empty(t, report.Issues)
	assert.True(t, report.Valid())
}

func TestValidateUnknownConditionEmitsInfoNotError(t *testing.T) {
	mig := &schema.MIG{Segments: []schema.SegmentDef{{Tag: "DTM", Elements: []schema.DataElement{{ID: "2005"}}}}}
	rs := &schema.RuleSet{Conditions: map[string]schema.ConditionEntry{"9": {ID: "9"}}}
	wf := schema.Workflow{Fields: []schema.FieldRule{
		{Path: "DTM/2005", Name: "Nachrichtendatum", Status: "Muss [9]"},
	}}

	report := validate.Validate(navigate.New(&assemble.Tree{}, mig), nil, wf, rs, mig, nil, nil, validate.Conditions)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, validate.SeverityInfo, report.Issues[0].Severity)
	assert.Equal(t, validate.CategoryAHB, report.Issues[0].Category)
	assert.True(t, report.Valid()) // Info doesn't fail validity
}

func TestValidateCodeRuleRejectsDisallowedValue(t *testing.T) {
	mig := &schema.MIG{Segments: []schema.SegmentDef{{Tag: "BGM", Elements: []schema.DataElement{{ID: "1001"}}}}}
	tree := &assemble.Tree{Pre: []*edifact.Segment{seg("BGM", "Z99")}}
	wf := schema.Workflow{Fields: []schema.FieldRule{
		{
			Path: "BGM/1001", Name: "Dokumentenart", Status: "Muss",
			Codes: []schema.CodeRule{{Value: "E01", Description: "Anmeldung", Status: "Muss"}},
		},
	}}

	report := validate.Validate(navigate.New(tree, mig), nil, wf, &schema.RuleSet{}, mig, nil, alwaysTrueInternal{}, validate.Conditions)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, validate.CategoryCode, report.Issues[0].Category)
}

func TestReportEnrichSetsBO4EPath(t *testing.T) {
	report := &validate.Report{Issues: []validate.Issue{{Path: "BGM/1001", Message: "x"}}}
	report.Enrich(map[string]string{"BGM/1001": "nachricht.dokumentenart"})
	assert.Equal(t, "nachricht.dokumentenart", report.Issues[0].BO4EPath)
}
