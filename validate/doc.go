// Package validate wires the navigator (component M) and the condition
// engine (component J) together against one workflow's AHB rules.
//
// Validate never aborts on the first problem: every field rule is
// checked independently and every finding becomes one Issue, so a
// single Report describes the full state of a message at once.
package validate
