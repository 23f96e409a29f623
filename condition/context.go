package condition

import "github.com/JoschaMetze/edifact-mapper-sub002/schema"

// ExternalProvider answers condition references the catalogue classifies
// as external (resolved outside the message itself — contract data,
// market-partner registries, and the like). name is the condition's
// snake_case symbolic name (e.g. "data_clearing_required",
// "message_splitting"), per spec §6's external provider interface.
type ExternalProvider interface {
	Evaluate(name string) Tri
}

// InternalEvaluator answers condition references the catalogue
// classifies as internal by inspecting the current message/transaction
// context (the assembled tree under validation).
type InternalEvaluator interface {
	EvaluateInternal(cond schema.ConditionEntry) Tri
}

// Context is the evaluation environment for a parsed Statement: the
// condition catalogue plus the two resolvers a reference may dispatch
// to. Either resolver may be nil, in which case references routed to it
// evaluate Unknown.
type Context struct {
	RuleSet  *schema.RuleSet
	External ExternalProvider
	Internal InternalEvaluator
}

// Eval evaluates s against ctx.
func (s Statement) Eval(ctx *Context) Tri {
	return s.Expr.eval(ctx)
}

func (ctx *Context) evalRef(id string) Tri {
	entry, ok := ctx.RuleSet.Condition(id)
	if !ok {
		return Unknown
	}
	if entry.External {
		if ctx.External == nil {
			return Unknown
		}
		return ctx.External.Evaluate(entry.Name)
	}
	if ctx.Internal == nil {
		return Unknown
	}
	return ctx.Internal.EvaluateInternal(entry)
}
