package validate

// Level controls how much of Validate's checking runs.
type Level int

const (
	// Structure runs only the structural diagnostics carried over from
	// assembly (missing required segments, unexpected segments,
	// over-repetition).
	Structure Level = iota
	// Conditions runs only condition evaluation and field-presence
	// checks.
	Conditions
	// Full runs both Structure and Conditions.
	Full
)

func (l Level) wantsStructure() bool  { return l == Structure || l == Full }
func (l Level) wantsConditions() bool { return l == Conditions || l == Full }
