// Package validate implements the validator (component K): walking an
// assembled tree plus a workflow's AHB field rules to produce an issue
// report, with three levels of scrutiny (structure-only, conditions-
// only, or both) and optional BO4E path enrichment.
package validate

// Severity classifies how serious an Issue is.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
	SeverityInfo    Severity = "Info"
)

// Category classifies what kind of check raised an Issue.
type Category string

const (
	CategoryStructure Category = "Structure"
	CategoryFormat    Category = "Format"
	CategoryCode      Category = "Code"
	CategoryAHB       Category = "AHB"
)

// Issue is one finding in a Report.
type Issue struct {
	Severity Severity
	Category Category
	// Code is a machine-readable identifier for the kind of issue, stable
	// across locales (Message is the human-readable text).
	Code string
	// Path is the schema path the issue concerns (e.g.
	// "SG4/SG5/LOC/C517/3225"), empty for interchange-wide issues.
	Path string
	// BO4EPath is set during enrichment when Path resolves through the
	// mapping engine's index to a BO4E dot-path.
	BO4EPath string
	// Tag is the segment tag a structure issue concerns, if applicable.
	Tag string
	// SegmentPosition is the 1-based segment number the issue concerns,
	// zero if not applicable.
	SegmentPosition int
	// Rule is the raw AHB status expression text that produced this
	// issue, empty for issues with no governing status expression.
	Rule string
	// ActualValue carries the field's value for issues raised by a code
	// rule (Code category, or Format for a malformed code status
	// expression). ExpectedValue lists the allowed codes, joined with "|",
	// for an unrecognized code. Both are empty for other issues.
	ActualValue   string
	ExpectedValue string
	Message       string
}

// Report is the full result of one validation run.
type Report struct {
	MessageType        string
	Pruefidentifikator string
	FormatVersion      string
	Level              Level
	Issues             []Issue
}

// Valid reports whether the report carries no Error-severity issues.
func (r *Report) Valid() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Enrich sets BO4EPath on every issue whose Path resolves through idx
// (typically mapping.BuildBO4EIndex's output).
func (r *Report) Enrich(idx map[string]string) {
	for i, issue := range r.Issues {
		if issue.Path == "" {
			continue
		}
		if bo4e, ok := idx[issue.Path]; ok {
			r.Issues[i].BO4EPath = bo4e
		}
	}
}
