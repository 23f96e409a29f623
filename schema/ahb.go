package schema

// ConditionEntry is one AHB condition, keyed by its bracket reference
// (e.g. "502", "UB1", "10P1..5" — these are free-form identifiers, not
// necessarily integers). External conditions additionally carry a
// snake_case Name used to dispatch to the external provider interface
// (spec §6: "evaluate(name) → True|False|Unknown").
type ConditionEntry struct {
	ID          string
	Name        string
	Description string
	External    bool
}

// CodeRule restricts which code values are currently allowed for a field,
// gated by its own AHB status expression.
type CodeRule struct {
	Value       string
	Description string
	Status      string // AHB status expression, e.g. "Muss [502]"
}

// FieldRule is one line of a workflow's field list: a schema path, its
// display name, the AHB status expression governing whether it is
// required, and any code rules restricting its values.
type FieldRule struct {
	Path   string // e.g. "SG4/SG5/LOC/C517/3225"
	Name   string
	Status string // free text beginning with Muss/Soll/Kann/X
	Codes  []CodeRule
}

// Workflow is one PID's rule set: its field list plus the MIG node numbers
// it exercises (used by the PID filter, component E).
type Workflow struct {
	PID             string
	Description     string
	Direction       string
	Fields          []FieldRule
	SegmentNumbers  map[int]bool
}

// RuleSet is the full AHB: every workflow keyed by PID, plus the shared
// condition catalogue referenced by their status expressions.
type RuleSet struct {
	Workflows  map[string]Workflow
	Conditions map[string]ConditionEntry
}

// Workflow looks up a PID's rule set.
func (r *RuleSet) Workflow(pid string) (Workflow, bool) {
	w, ok := r.Workflows[pid]
	return w, ok
}

// Condition looks up a condition's catalogue entry by its bracket
// reference.
func (r *RuleSet) Condition(id string) (ConditionEntry, bool) {
	c, ok := r.Conditions[id]
	return c, ok
}
