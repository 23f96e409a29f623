package validate

import (
	"fmt"
	"strings"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/condition"
	"github.com/JoschaMetze/edifact-mapper-sub002/navigate"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
)

// Validate checks an assembled message against one workflow's AHB field
// and code rules, at the given level, returning an issue report.
// structureDiags is whatever the assembler (component F) returned for
// the same tree; nav resolves field paths against that tree; mig
// supplies the report's message-type/format-version header fields.
func Validate(
	nav *navigate.Navigator,
	structureDiags []assemble.Diagnostic,
	wf schema.Workflow,
	rs *schema.RuleSet,
	mig *schema.MIG,
	ext condition.ExternalProvider,
	internal condition.InternalEvaluator,
	level Level,
) *Report {
	report := &Report{Pruefidentifikator: wf.PID, Level: level}
	if mig != nil {
		report.MessageType = mig.MessageType
		report.FormatVersion = mig.FormatVersion
	}

	if level.wantsStructure() {
		for _, d := range structureDiags {
			sev := SeverityWarning
			if d.Code == assemble.CodeMissingRequired {
				sev = SeverityError
			}
			report.Issues = append(report.Issues, Issue{
				Severity: sev,
				Category: CategoryStructure,
				Code:     string(d.Code),
				Tag:      d.Tag,
				Message:  string(d.Code),
			})
		}
	}

	if level.wantsConditions() {
		ctx := &condition.Context{RuleSet: rs, External: ext, Internal: internal}
		for _, f := range wf.Fields {
			validateField(report, nav, ctx, f)
		}
	}

	return report
}

func validateField(report *Report, nav *navigate.Navigator, ctx *condition.Context, f schema.FieldRule) {
	stmt, err := condition.Parse(f.Status)
	if err != nil {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Category: CategoryFormat,
			Code:     "malformed_status_expression",
			Path:     f.Path,
			Rule:     f.Status,
			Message:  fmt.Sprintf("invalid status expression for %s: %v", f.Name, err),
		})
		return
	}

	result := stmt.Eval(ctx)
	values, present := nav.Resolve(f.Path)

	switch {
	case result == condition.Unknown:
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityInfo,
			Category: CategoryAHB,
			Code:     "condition_unknown",
			Path:     f.Path,
			Rule:     f.Status,
			Message:  fmt.Sprintf("condition for %s could not be evaluated", f.Name),
		})
	case stmt.Required() && result == condition.True && !present:
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Category: CategoryAHB,
			Code:     "required_field_missing",
			Path:     f.Path,
			Rule:     f.Status,
			Message:  fmt.Sprintf("%s is required but missing", f.Name),
		})
	}

	if len(f.Codes) == 0 || !present {
		return
	}
	for _, v := range values {
		validateCode(report, ctx, f, v)
	}
}

func validateCode(report *Report, ctx *condition.Context, f schema.FieldRule, value string) {
	for _, cr := range f.Codes {
		if cr.Value != value {
			continue
		}
		stmt, err := condition.Parse(cr.Status)
		if err != nil {
			report.Issues = append(report.Issues, Issue{
				Severity:    SeverityError,
				Category:    CategoryFormat,
				Code:        "malformed_code_status_expression",
				Path:        f.Path,
				Rule:        cr.Status,
				ActualValue: value,
				Message:     fmt.Sprintf("invalid code status expression for %s=%s: %v", f.Name, value, err),
			})
			return
		}
		if stmt.Eval(ctx) == condition.False {
			report.Issues = append(report.Issues, Issue{
				Severity:    SeverityError,
				Category:    CategoryCode,
				Code:        "code_not_currently_allowed",
				Path:        f.Path,
				Rule:        cr.Status,
				ActualValue: value,
				Message:     fmt.Sprintf("code %q is not currently allowed for %s", value, f.Name),
			})
		}
		return
	}
	allowed := make([]string, len(f.Codes))
	for i, cr := range f.Codes {
		allowed[i] = cr.Value
	}
	report.Issues = append(report.Issues, Issue{
		Severity:      SeverityError,
		Category:      CategoryCode,
		Code:          "code_not_recognized",
		Path:          f.Path,
		ActualValue:   value,
		ExpectedValue: strings.Join(allowed, "|"),
		Message:       fmt.Sprintf("code %q is not a recognized value for %s", value, f.Name),
	})
}
