// Package minimize reduces a root-addressed navigation action to the
// smallest equivalent action.
//
// A resolved deep link always addresses the full chain from the root, one
// nesting level per {screen, params, path} triple. Dispatching that full
// chain at the root would make every intermediate navigator process a
// navigation event even where nothing changes, and can reset or reorder
// sibling history at intermediate levels. Peeling off the levels that
// already match leaves every ancestor's history untouched and applies the
// action only at the first node whose active content actually changes.
package minimize

import (
	"github.com/arthur-debert/wayfind/pkg/logging"
	"github.com/arthur-debert/wayfind/pkg/navtree"
)

// Minimize descends from the root while the action's name chain matches the
// tree's active branch and nested state exists, returning an equivalent
// action addressed (via Target) at the deepest node where further descent
// is impossible. When no descent happens the input action is returned
// unchanged, with no target.
func Minimize(action navtree.Action, state *navtree.State) navtree.Action {
	logger := logging.GetLogger("minimize")
	depth := 0

	for {
		// Nothing left to compare: this is the minimal addressable point
		if action.Payload.Name == "" {
			break
		}

		// Empty route lists fail the name match: stop, do not descend
		active, ok := state.ActiveRoute()
		if !ok || active.Name != action.Payload.Name {
			// The tree has already diverged from the requested chain
			break
		}

		// The name matches but there is no deeper tree to descend into
		if active.State == nil {
			break
		}

		state = active.State
		next, _ := action.Payload.NextLevel()
		action = navtree.Action{
			Type:    action.Type,
			Payload: next,
			Target:  state.Key,
		}
		depth++
	}

	logger.Debug().
		Int("depth", depth).
		Str("target", action.Target).
		Str("name", action.Payload.Name).
		Msg("minimized action")

	return action
}
