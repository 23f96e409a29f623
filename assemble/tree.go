// Package assemble implements the assembler (component F): matching a flat
// EDIFACT segment stream against a MIG schema tree to produce an assembled
// tree plus structure diagnostics, via a backtracking cursor walk.
package assemble

import "github.com/JoschaMetze/edifact-mapper-sub002/edifact"

// Repetition is one matched occurrence of a group: the segments and nested
// group occurrences consumed during that single pass, in schema order.
type Repetition struct {
	Segments []*edifact.Segment
	Groups   []GroupOccurrence
}

// GroupOccurrence is every repetition matched for one schema group slot
// (or, for a qualifier-discriminated group, one qualifier variant of it).
type GroupOccurrence struct {
	GroupID     string
	Qualifier   string
	Repetitions []Repetition
}

// Tree is the assembled output for one message body: the segments matched
// before any group, the top-level group occurrences in schema order, and
// whatever remained unconsumed (service trailers such as UNT/UNZ).
type Tree struct {
	Pre   []*edifact.Segment
	Groups []GroupOccurrence
	Post  []*edifact.Segment
}

// DiagnosticCode classifies a structure diagnostic raised during assembly.
type DiagnosticCode string

const (
	// CodeMissingRequired marks a mandatory segment slot left unfilled.
	CodeMissingRequired DiagnosticCode = "MISSING_REQUIRED_SEGMENT"
	// CodeUnexpectedSegment marks a segment that matched no slot in its
	// enclosing repetition and was discarded to let assembly proceed.
	CodeUnexpectedSegment DiagnosticCode = "UNEXPECTED_SEGMENT"
	// CodeOverRepetition marks a group repetition available beyond the
	// schema's max-repetition bound.
	CodeOverRepetition DiagnosticCode = "OVER_REPETITION"
)

// Diagnostic is one structure-level finding raised during assembly. It
// carries enough to be rendered as a validator Issue without re-walking
// the tree (see validate.Report).
type Diagnostic struct {
	Code    DiagnosticCode
	Tag     string
	GroupID string
	Detail  string
}
