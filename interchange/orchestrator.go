package interchange

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/mapping"
	"github.com/JoschaMetze/edifact-mapper-sub002/schema"
)

// Orchestrator wires one MIG schema and two layers of mapping
// definitions (message level and transaction level) into forward and
// reverse interchange conversion.
type Orchestrator struct {
	mig                *schema.MIG
	messageDefs        []mapping.Definition
	transactionDefs    []mapping.Definition
	transactionGroupID string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMessageDefinitions sets the definitions mapped against the
// message-level scope (tree.Pre/tree.Groups), producing a Nachricht's
// Stammdaten.
func WithMessageDefinitions(defs []mapping.Definition) Option {
	return func(o *Orchestrator) { o.messageDefs = defs }
}

// WithTransactionDefinitions sets the definitions mapped against each
// transaction subgroup repetition's own scope, producing a
// transaction's merged Stammdaten/Transaktionsdaten map.
func WithTransactionDefinitions(defs []mapping.Definition) Option {
	return func(o *Orchestrator) { o.transactionDefs = defs }
}

// WithTransactionGroup overrides which top-level group ID is treated as
// the transaction subgroup. Defaults to "SG4".
func WithTransactionGroup(id string) Option {
	return func(o *Orchestrator) { o.transactionGroupID = id }
}

// New creates an Orchestrator for mig with the given options.
func New(mig *schema.MIG, opts ...Option) *Orchestrator {
	o := &Orchestrator{mig: mig, transactionGroupID: "SG4"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
