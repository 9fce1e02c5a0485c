package navtree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arthur-debert/wayfind/pkg/errors"
)

// Params is the opaque data attached to a route. A deep-link path encodes a
// chain of nested navigations by nesting a {screen, params, path} triple
// under these well-known keys.
type Params map[string]interface{}

// Well-known param keys carrying the next nesting level of a deep link
const (
	ParamScreen = "screen"
	ParamParams = "params"
	ParamPath   = "path"
)

// Route is one entry in a navigator's route list
type Route struct {
	// Name identifies the screen or nested navigator; stable, used for
	// equality comparisons
	Name string `yaml:"name" json:"name"`

	// Key uniquely identifies this mount of the route; never reused
	Key string `yaml:"key" json:"key"`

	// Params is arbitrary data attached to this route
	Params Params `yaml:"params,omitempty" json:"params,omitempty"`

	// State is the nested navigator state, present only while this route
	// is on the active chain and has navigated internally
	State *State `yaml:"state,omitempty" json:"state,omitempty"`
}

// State is the state of one navigator instance
type State struct {
	// Key uniquely identifies this navigator instance
	Key string `yaml:"key" json:"key"`

	// Routes is the history-ordered route list
	Routes []*Route `yaml:"routes" json:"routes"`

	// Index points at the active route
	Index int `yaml:"index" json:"index"`
}

// NewRouteKey returns a fresh, never-reused key for a route mount
func NewRouteKey(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString())
}

// NewStateKey returns a fresh key for a navigator instance
func NewStateKey() string {
	return fmt.Sprintf("nav-%s", uuid.NewString())
}

// ActiveRoute returns the route at Index, or the last route when Index is
// out of range. ok is false when the navigator has no routes at all.
func (s *State) ActiveRoute() (*Route, bool) {
	if s == nil || len(s.Routes) == 0 {
		return nil, false
	}
	if s.Index >= 0 && s.Index < len(s.Routes) {
		return s.Routes[s.Index], true
	}
	return s.Routes[len(s.Routes)-1], true
}

// TopRoute returns the last route of the list (the topmost entry of a
// stack navigator), or nil when empty
func (s *State) TopRoute() *Route {
	if s == nil || len(s.Routes) == 0 {
		return nil
	}
	return s.Routes[len(s.Routes)-1]
}

// FindNode searches the tree rooted at s for the navigator with the given
// key, following every route's nested state, and returns nil when no such
// node exists
func (s *State) FindNode(key string) *State {
	if s == nil {
		return nil
	}
	if s.Key == key {
		return s
	}
	for _, r := range s.Routes {
		if found := r.State.FindNode(key); found != nil {
			return found
		}
	}
	return nil
}

// RouteIndex returns the position of the first route with the given name,
// or -1 when absent
func (s *State) RouteIndex(name string) int {
	for i, r := range s.Routes {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Normalize enforces the active-chain invariant: every route that is not
// the active route of its navigator has its nested state cleared, at every
// depth. Mutations must call this so that stale sibling state can never be
// mistaken for the current chain.
func (s *State) Normalize() {
	if s == nil {
		return
	}
	active, ok := s.ActiveRoute()
	if !ok {
		return
	}
	for _, r := range s.Routes {
		if r != active {
			r.State = nil
			continue
		}
		r.State.Normalize()
	}
}

// Validate checks the structural invariants of the tree: a non-empty
// navigator's index must address an existing route, keys must be non-empty,
// and nested states must validate recursively
func (s *State) Validate() error {
	if s == nil {
		return errors.New(errors.ErrInvalidState, "navigator state is nil")
	}
	if s.Key == "" {
		return errors.New(errors.ErrInvalidState, "navigator state has no key")
	}
	if len(s.Routes) > 0 && (s.Index < 0 || s.Index >= len(s.Routes)) {
		return errors.Newf(errors.ErrInvalidState,
			"index %d out of range for %d routes in navigator %q", s.Index, len(s.Routes), s.Key)
	}
	for _, r := range s.Routes {
		if r.Name == "" {
			return errors.Newf(errors.ErrInvalidState, "route with empty name in navigator %q", s.Key)
		}
		if r.State != nil {
			if err := r.State.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the tree. Params maps are copied shallowly;
// the engine treats param values as opaque and never mutates them in place.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{Key: s.Key, Index: s.Index, Routes: make([]*Route, len(s.Routes))}
	for i, r := range s.Routes {
		out.Routes[i] = r.Clone()
	}
	return out
}

// Clone returns a deep copy of the route
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}
	out := &Route{Name: r.Name, Key: r.Key, State: r.State.Clone()}
	if r.Params != nil {
		out.Params = make(Params, len(r.Params))
		for k, v := range r.Params {
			out.Params[k] = v
		}
	}
	return out
}
