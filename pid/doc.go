// Package pid carries a couple of hand-written, representative typed
// views over the generic assembled tree — the shape a PID-specific code
// generator would produce from a MIG schema, following the teacher's
// segments package pattern of one struct per message type with
// FromTree/ToGroups conversions instead of generic tree walks.
package pid
