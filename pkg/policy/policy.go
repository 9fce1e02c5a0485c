// Package policy decides whether a resolved navigate action's verb must be
// rewritten before dispatch, based on the caller's intent hint and the
// current tree shape.
//
// The rules are mutually exclusive and order-sensitive, so they are held as
// an ordered table evaluated with first-match-wins semantics rather than a
// cascade of flags. Each rule is a (predicate, rewrite) pair and can be
// exercised in isolation.
package policy

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/wayfind/pkg/kinds"
	"github.com/arthur-debert/wayfind/pkg/logging"
	"github.com/arthur-debert/wayfind/pkg/navtree"
)

// DetailExtractor extracts the domain identifier of the open detail view
// from a state tree. ok is false when the tree holds no detail view.
type DetailExtractor func(state *navtree.State) (id string, ok bool)

// Rule names, stable for logging and assertions
const (
	RuleForcedUp   = "forced-up"
	RuleDetailPush = "detail-push"
	RuleUp         = "up"
	RuleModalPush  = "modal-push"
	RuleNone       = "none"
)

// Input is everything one policy evaluation may look at
type Input struct {
	// Action is the resolved action, before minimization
	Action navtree.Action

	// Intent is the caller-supplied hint
	Intent navtree.Intent

	// RootState is the current tree snapshot
	RootState *navtree.State

	// TargetState is the freshly parsed target state tree
	TargetState *navtree.State
}

// Outcome is the policy's decision. DismissModal names the overlay that
// must be dismissed before the action is dispatched; empty means none.
type Outcome struct {
	Action       navtree.Action
	Rule         string
	DismissModal string
}

type rule struct {
	name    string
	applies func(p *Policy, in Input) bool
	apply   func(p *Policy, in Input) Outcome
}

// Policy is the intent override decision table
type Policy struct {
	kinds   *kinds.Table
	extract DetailExtractor
	rules   []rule
	logger  zerolog.Logger
}

// New builds a policy over the given kind table and detail extractor.
// extract may be nil, in which case the detail-push rule never applies.
func New(table *kinds.Table, extract DetailExtractor) *Policy {
	p := &Policy{
		kinds:   table,
		extract: extract,
		logger:  logging.GetLogger("policy"),
	}
	p.rules = []rule{
		{
			// The caller asserts the current screen must be fully
			// superseded; it no longer exists in the resulting stack.
			name:    RuleForcedUp,
			applies: func(p *Policy, in Input) bool { return in.Intent == navtree.IntentForcedUp },
			apply:   rewriteType(navtree.ActionReplace),
		},
		{
			// Navigating to a different logical detail view under the same
			// navigator kind must add a new stack entry so back-navigation
			// returns to the previous detail view.
			name:    RuleDetailPush,
			applies: (*Policy).detailViewChanges,
			apply:   rewriteType(navtree.ActionPush),
		},
		{
			// A deep link into a sub-flow replaces the current top screen
			// with the sub-flow's entry screen, keeping what was below it
			// as the eventual back target.
			name:    RuleUp,
			applies: func(p *Policy, in Input) bool { return in.Intent == navtree.IntentUp },
			apply:   rewriteType(navtree.ActionReplace),
		},
		{
			// Opening an overlay that is not already on top pushes a fresh
			// instance; a different overlay currently on top is dismissed
			// first.
			name:    RuleModalPush,
			applies: (*Policy).modalNotOnTop,
			apply: func(p *Policy, in Input) Outcome {
				out := Outcome{Action: in.Action, Rule: RuleModalPush}
				out.Action.Type = navtree.ActionPush
				if top := in.RootState.TopRoute(); top != nil && p.kinds.IsModal(top.Name) {
					out.DismissModal = top.Name
				}
				return out
			},
		},
	}
	return p
}

// Apply evaluates the table against the input. Only NAVIGATE actions are
// subject to overrides; anything else passes through untouched.
func (p *Policy) Apply(in Input) Outcome {
	if in.Action.Type != navtree.ActionNavigate {
		return Outcome{Action: in.Action, Rule: RuleNone}
	}

	for _, r := range p.rules {
		if !r.applies(p, in) {
			continue
		}
		out := r.apply(p, in)
		p.logger.Debug().
			Str("rule", out.Rule).
			Str("type", string(out.Action.Type)).
			Str("dismiss", out.DismissModal).
			Msg("intent override applied")
		return out
	}

	return Outcome{Action: in.Action, Rule: RuleNone}
}

// rewriteType builds an apply func that only changes the action verb
func rewriteType(t navtree.ActionType) func(p *Policy, in Input) Outcome {
	return func(p *Policy, in Input) Outcome {
		out := Outcome{Action: in.Action}
		out.Action.Type = t
		switch t {
		case navtree.ActionReplace:
			if in.Intent == navtree.IntentForcedUp {
				out.Rule = RuleForcedUp
			} else {
				out.Rule = RuleUp
			}
		case navtree.ActionPush:
			out.Rule = RuleDetailPush
		}
		return out
	}
}

// detailViewChanges reports whether the action targets the detail-pane
// navigator while the open detail identifier differs between the current
// and target trees
func (p *Policy) detailViewChanges(in Input) bool {
	if p.extract == nil || !p.kinds.IsDetail(in.Action.Payload.Name) {
		return false
	}
	currentID, _ := p.extract(in.RootState)
	targetID, _ := p.extract(in.TargetState)
	return currentID != targetID
}

// modalNotOnTop reports whether the action targets an overlay navigator
// that is not already the topmost route of the root stack
func (p *Policy) modalNotOnTop(in Input) bool {
	name := in.Action.Payload.Name
	if !p.kinds.IsModal(name) {
		return false
	}
	top := in.RootState.TopRoute()
	return top == nil || top.Name != name
}
