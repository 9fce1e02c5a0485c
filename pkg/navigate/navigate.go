// Package navigate composes the reconciliation engine: it resolves a path
// into a target state and action via external collaborators, applies the
// intent override policy, minimizes overlay-bound actions, and dispatches
// the result against the live tree.
//
// One call is one synchronous pass; there is no queue, no retry, and no
// suspension point between the tree reads and the final mutation. Callers
// must not invoke the engine reentrantly against the same tree.
package navigate

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/kinds"
	"github.com/arthur-debert/wayfind/pkg/logging"
	"github.com/arthur-debert/wayfind/pkg/minimize"
	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/policy"
)

// PathResolver converts a raw path into a nested target state tree.
// Deterministic: the same path always yields a structurally equal tree for
// a given routing configuration.
type PathResolver func(path string) (*navtree.State, error)

// ActionResolver converts a target state tree into a root-addressed action.
// ok is false when the state cannot be expressed as an incremental action
// against the routing configuration; the engine then falls back to a full
// tree reset.
type ActionResolver func(state *navtree.State) (navtree.Action, bool)

// OverlayDismisser pops the currently displayed overlay navigator before a
// new one is pushed
type OverlayDismisser func(reason string, handle navtree.Handle) error

// Options qualify a NavigateTo call
type Options struct {
	// Intent is the caller's hint about how to treat existing history
	Intent navtree.Intent

	// IsActiveRoute reports whether the caller considers the target
	// already active; a false value combined with a PUSH intent forces a
	// genuinely new history entry
	IsActiveRoute bool
}

// Plan records what one NavigateTo call decided, for logging and the
// inspection CLI
type Plan struct {
	// Rule is the policy rule that fired (policy.RuleNone when none)
	Rule string

	// DismissModal names the overlay dismissed before dispatch, if any
	DismissModal string

	// Minimized is true when the overlay minimization pass retargeted
	// the action below the root
	Minimized bool

	// Action is the action to dispatch; meaningless when Reset is true
	Action navtree.Action

	// Reset is true when no action could be derived and the tree is
	// replaced with TargetState wholesale
	Reset bool

	// TargetState is the parsed target tree
	TargetState *navtree.State
}

// Engine wires the collaborators together
type Engine struct {
	kinds         *kinds.Table
	policy        *policy.Policy
	resolvePath   PathResolver
	resolveAction ActionResolver
	dismiss       OverlayDismisser
	logger        zerolog.Logger
}

// New builds an engine. resolvePath and resolveAction are required;
// dismiss may be nil when the application has no dismissible overlays.
func New(table *kinds.Table, pol *policy.Policy, resolvePath PathResolver, resolveAction ActionResolver, dismiss OverlayDismisser) *Engine {
	return &Engine{
		kinds:         table,
		policy:        pol,
		resolvePath:   resolvePath,
		resolveAction: resolveAction,
		dismiss:       dismiss,
		logger:        logging.GetLogger("navigate"),
	}
}

// NavigateTo resolves path into the minimal mutation of the tree behind
// handle and applies it. A nil handle is a hard error; an unresolvable
// action is not (it triggers the reset fallback). Dispatch failures, such
// as a minimized target that no longer exists, propagate untouched.
func (e *Engine) NavigateTo(handle navtree.Handle, path string, opts Options) error {
	plan, root, err := e.plan(handle, path, opts)
	if err != nil {
		return err
	}

	if plan.DismissModal != "" && e.dismiss != nil {
		if err := e.dismiss("opening "+plan.Action.Payload.Name, root); err != nil {
			return err
		}
	}

	if plan.Reset {
		return root.ResetRoot(plan.TargetState)
	}
	return root.Dispatch(plan.Action)
}

// Plan computes the reconciliation decision for a path without mutating
// the tree
func (e *Engine) Plan(handle navtree.Handle, path string, opts Options) (Plan, error) {
	plan, _, err := e.plan(handle, path, opts)
	return plan, err
}

func (e *Engine) plan(handle navtree.Handle, path string, opts Options) (Plan, navtree.Handle, error) {
	if handle == nil {
		return Plan{}, nil, errors.New(errors.ErrNoHandle, "navigation handle is nil").
			WithDetail("path", path)
	}

	// The handle may be scoped to a nested navigator; root-relative
	// decisions need the true root.
	root := handle
	for parent := root.Parent(); parent != nil; parent = root.Parent() {
		root = parent
	}

	// A single root snapshot serves the whole call: policy and
	// minimization must not observe different trees.
	rootState := root.RootState()

	targetState, err := e.resolvePath(path)
	if err != nil {
		return Plan{}, nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %q", path)
	}

	plan := Plan{TargetState: targetState, Rule: policy.RuleNone}

	action, ok := e.resolveAction(targetState)
	if !ok {
		// Structurally incompatible with the routing configuration:
		// expected, recoverable, handled by a full reset.
		e.logger.Debug().Str("path", path).Msg("no action derivable, falling back to reset")
		plan.Reset = true
		return plan, root, nil
	}

	outcome := e.policy.Apply(policy.Input{
		Action:      action,
		Intent:      opts.Intent,
		RootState:   rootState,
		TargetState: targetState,
	})
	plan.Rule = outcome.Rule
	plan.DismissModal = outcome.DismissModal
	plan.Action = outcome.Action

	if e.kinds.IsModal(outcome.Action.Payload.Name) {
		minimized := minimize.Minimize(outcome.Action, rootState)
		if minimized.Payload.Name != "" {
			// Forcing rules: an inactive caller pushing must get a
			// genuinely new entry; a replace hint survives minimization
			// (used when silently redirecting away from an inaccessible
			// target).
			if !opts.IsActiveRoute && opts.Intent == navtree.IntentPush {
				minimized.Type = navtree.ActionPush
			}
			if opts.Intent == navtree.IntentReplace {
				minimized.Type = navtree.ActionReplace
			}
			plan.Action = minimized
			plan.Minimized = minimized.Target != ""
		}
	}

	e.logger.Debug().
		Str("path", path).
		Str("rule", plan.Rule).
		Str("type", string(plan.Action.Type)).
		Str("target", plan.Action.Target).
		Bool("minimized", plan.Minimized).
		Msg("navigation plan computed")

	return plan, root, nil
}

// DismissTopModal returns an OverlayDismisser that pops the topmost root
// route when it is an overlay navigator. Used as the default dismiss
// collaborator for Controller-backed trees.
func DismissTopModal(table *kinds.Table) OverlayDismisser {
	logger := logging.GetLogger("navigate.dismiss")
	return func(reason string, handle navtree.Handle) error {
		root := handle
		for parent := root.Parent(); parent != nil; parent = root.Parent() {
			root = parent
		}
		state := root.RootState()
		top := state.TopRoute()
		if top == nil || !table.IsModal(top.Name) {
			return nil
		}

		logger.Debug().Str("overlay", top.Name).Str("reason", reason).Msg("dismissing overlay")

		state.Routes = state.Routes[:len(state.Routes)-1]
		if len(state.Routes) > 0 && state.Index >= len(state.Routes) {
			state.Index = len(state.Routes) - 1
		}
		return root.ResetRoot(state)
	}
}
