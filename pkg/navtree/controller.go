package navtree

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/logging"
)

// Handle is the navigation surface the engine operates against. A handle
// may be scoped to a nested navigator; Parent walks one level up and
// returns nil at the root. Snapshot and RootState return point-in-time
// copies: two consecutive calls are not guaranteed to observe the same
// tree if a dispatch happened in between.
type Handle interface {
	Parent() Handle
	Snapshot() *State
	RootState() *State
	Dispatch(action Action) error
	ResetRoot(state *State) error
}

// Controller is the in-memory Handle implementation. It owns (a view into)
// a single mutable tree; all controllers derived from the same root share
// that tree. Not safe for concurrent use: callers must serialize dispatches.
type Controller struct {
	root   *State
	node   *State
	parent *Controller
	logger zerolog.Logger
}

// NewController returns a root controller for the given tree
func NewController(root *State) *Controller {
	return &Controller{
		root:   root,
		node:   root,
		logger: logging.GetLogger("navtree.controller"),
	}
}

// At returns a controller scoped to the navigator with the given key,
// with its parent chain wired up to the root
func (c *Controller) At(key string) (*Controller, error) {
	path, found := findPath(c.root, key, nil)
	if !found {
		return nil, errors.Newf(errors.ErrTargetNotFound, "no navigator with key %q", key).
			WithDetail("key", key)
	}
	cur := &Controller{root: c.root, node: path[0], logger: c.logger}
	for _, node := range path[1:] {
		cur = &Controller{root: c.root, node: node, parent: cur, logger: c.logger}
	}
	return cur, nil
}

// findPath collects the chain of navigator states from s down to the node
// with the given key, inclusive on both ends
func findPath(s *State, key string, acc []*State) ([]*State, bool) {
	if s == nil {
		return nil, false
	}
	acc = append(acc, s)
	if s.Key == key {
		return acc, true
	}
	for _, r := range s.Routes {
		if path, ok := findPath(r.State, key, acc); ok {
			return path, true
		}
	}
	return nil, false
}

// Parent returns the enclosing navigator's controller, or nil at the root
func (c *Controller) Parent() Handle {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// Snapshot returns a point-in-time copy of this navigator's state
func (c *Controller) Snapshot() *State {
	return c.node.Clone()
}

// RootState returns a point-in-time copy of the whole tree
func (c *Controller) RootState() *State {
	return c.root.Clone()
}

// Dispatch applies one action to the tree. An action with no target applies
// at the root; a target key that resolves to no live node is a hard error.
// Every successful dispatch re-normalizes the tree so that only the active
// chain carries nested state.
func (c *Controller) Dispatch(action Action) error {
	node := c.root
	if action.Target != "" {
		node = c.root.FindNode(action.Target)
		if node == nil {
			return errors.Newf(errors.ErrTargetNotFound,
				"dispatch target %q does not exist in the tree", action.Target).
				WithDetail("target", action.Target).
				WithDetail("type", string(action.Type))
		}
	}

	c.logger.Debug().
		Str("type", string(action.Type)).
		Str("name", action.Payload.Name).
		Str("target", action.Target).
		Msg("dispatching action")

	var err error
	switch action.Type {
	case ActionNavigate:
		err = navigate(node, action.Payload)
	case ActionPush:
		err = push(node, action.Payload)
	case ActionReplace:
		err = replace(node, action.Payload)
	case ActionReset:
		err = resetNode(node, action.State)
	default:
		err = errors.Newf(errors.ErrInvalidAction, "unsupported action type %q", action.Type)
	}
	if err != nil {
		return err
	}

	c.root.Normalize()
	return nil
}

// ResetRoot replaces the whole tree with the given state
func (c *Controller) ResetRoot(state *State) error {
	if err := state.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidState, "reset state is not a valid tree")
	}
	c.logger.Debug().Str("key", state.Key).Int("routes", len(state.Routes)).Msg("resetting root state")
	replacement := state.Clone()
	*c.root = *replacement
	c.root.Normalize()
	return nil
}

// navigate activates the named route, reusing an existing entry when one
// is present and appending a new one otherwise, then carries any nested
// {screen, params, path} triple one level down
func navigate(node *State, payload Payload) error {
	if payload.Name == "" {
		return errors.New(errors.ErrInvalidAction, "navigate payload has no name")
	}

	i := node.RouteIndex(payload.Name)
	if i < 0 {
		node.Routes = append(node.Routes, &Route{
			Name:   payload.Name,
			Key:    NewRouteKey(payload.Name),
			Params: payload.Params,
		})
		i = len(node.Routes) - 1
	} else if payload.Params != nil {
		node.Routes[i].Params = payload.Params
	}
	node.Index = i

	// When the target route already hosts a live nested navigator, the
	// deeper levels navigate immediately; otherwise the triple stays in
	// the params for the nested navigator to consume when it mounts.
	route := node.Routes[i]
	if next, ok := payload.NextLevel(); ok && route.State != nil {
		return navigate(route.State, next)
	}
	return nil
}

// push always appends a fresh history entry
func push(node *State, payload Payload) error {
	if payload.Name == "" {
		return errors.New(errors.ErrInvalidAction, "push payload has no name")
	}
	node.Routes = append(node.Routes, &Route{
		Name:   payload.Name,
		Key:    NewRouteKey(payload.Name),
		Params: payload.Params,
	})
	node.Index = len(node.Routes) - 1
	return nil
}

// replace supersedes the active route in place; the replaced route no
// longer exists in the resulting stack
func replace(node *State, payload Payload) error {
	if payload.Name == "" {
		return errors.New(errors.ErrInvalidAction, "replace payload has no name")
	}
	fresh := &Route{
		Name:   payload.Name,
		Key:    NewRouteKey(payload.Name),
		Params: payload.Params,
	}
	if len(node.Routes) == 0 {
		node.Routes = []*Route{fresh}
		node.Index = 0
		return nil
	}
	if node.Index < 0 || node.Index >= len(node.Routes) {
		node.Index = len(node.Routes) - 1
	}
	node.Routes[node.Index] = fresh
	return nil
}

// resetNode replaces one navigator's routes and index wholesale, keeping
// the node's identity so existing targets stay valid
func resetNode(node *State, state *State) error {
	if state == nil {
		return errors.New(errors.ErrInvalidAction, "reset action carries no state")
	}
	if err := state.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidState, "reset action state is not a valid tree")
	}
	replacement := state.Clone()
	node.Routes = replacement.Routes
	node.Index = replacement.Index
	return nil
}
