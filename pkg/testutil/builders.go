// Package testutil provides builders for navigation trees used across the
// engine's tests. Builders assign deterministic keys so assertions can
// address nodes without chasing generated identifiers.
package testutil

import (
	"github.com/arthur-debert/wayfind/pkg/navtree"
)

// Stack builds a navigator state with the given key, active index and routes
func Stack(key string, index int, routes ...*navtree.Route) *navtree.State {
	return &navtree.State{Key: key, Index: index, Routes: routes}
}

// Route builds a leaf route with a deterministic key derived from its name
func Route(name string) *navtree.Route {
	return &navtree.Route{Name: name, Key: name + "-key"}
}

// RouteWithParams builds a leaf route carrying params
func RouteWithParams(name string, params navtree.Params) *navtree.Route {
	return &navtree.Route{Name: name, Key: name + "-key", Params: params}
}

// RouteWithState builds a route hosting a nested navigator
func RouteWithState(name string, state *navtree.State) *navtree.Route {
	return &navtree.Route{Name: name, Key: name + "-key", State: state}
}

// Nested chains payloads into a single payload whose params carry the
// {screen, params, path} triple one level per hop, deepest last
func Nested(levels ...navtree.Payload) navtree.Payload {
	if len(levels) == 0 {
		return navtree.Payload{}
	}
	out := levels[len(levels)-1]
	for i := len(levels) - 2; i >= 0; i-- {
		cur := levels[i]
		if cur.Params == nil {
			cur.Params = navtree.Params{}
		}
		cur.Params = cur.Params.WithNested(out)
		out = cur
	}
	return out
}
