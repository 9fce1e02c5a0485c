// Package routing provides reference implementations of the engine's
// external collaborators: a segment-based path resolver, a state-to-action
// resolver, and a detail identifier extractor, all driven by the static
// configuration.
//
// Path templates and route registration DSLs are deliberately not part of
// this package: a path is resolved segment by segment, each segment naming
// one nesting level, with query params attached to the deepest route.
package routing

import (
	"net/url"
	"strings"

	"github.com/arthur-debert/wayfind/pkg/config"
	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/navigate"
	"github.com/arthur-debert/wayfind/pkg/navtree"
)

// NewPathResolver returns a PathResolver that maps each path segment to one
// nesting level of the target state tree. "/main/detail-pane?entityID=42"
// becomes a root whose single route "main" nests a navigator whose single
// route is "detail-pane" carrying {entityID: 42}.
func NewPathResolver(cfg *config.Config) navigate.PathResolver {
	roots := make(map[string]bool, len(cfg.Navigators.Roots))
	for _, r := range cfg.Navigators.Roots {
		roots[r] = true
	}

	return func(path string) (*navtree.State, error) {
		segments, params, err := splitPath(path)
		if err != nil {
			return nil, err
		}
		if len(roots) > 0 && !roots[segments[0]] {
			return nil, errors.Newf(errors.ErrNotFound, "path root %q is not a configured entry point", segments[0]).
				WithDetail("path", path)
		}

		// Build the chain bottom-up so each level nests the next
		var nested *navtree.State
		for i := len(segments) - 1; i >= 0; i-- {
			route := &navtree.Route{
				Name:  segments[i],
				Key:   navtree.NewRouteKey(segments[i]),
				State: nested,
			}
			if i == len(segments)-1 && len(params) > 0 {
				route.Params = params
			}
			nested = &navtree.State{
				Key:    navtree.NewStateKey(),
				Routes: []*navtree.Route{route},
				Index:  0,
			}
		}
		return nested, nil
	}
}

// NewActionResolver returns an ActionResolver that expresses a target state
// tree as a single root-addressed NAVIGATE action, one nested {screen,
// params, path} triple per level. It reports absent when some level does
// not hold exactly one route: such a shape cannot be expressed as an
// incremental action and must reset the tree instead.
func NewActionResolver(cfg *config.Config) navigate.ActionResolver {
	return func(state *navtree.State) (navtree.Action, bool) {
		payload, ok := payloadChain(state)
		if !ok {
			return navtree.Action{}, false
		}
		return navtree.Action{Type: navtree.ActionNavigate, Payload: payload}, true
	}
}

func payloadChain(state *navtree.State) (navtree.Payload, bool) {
	if state == nil || len(state.Routes) != 1 {
		return navtree.Payload{}, false
	}
	route := state.Routes[0]
	payload := navtree.Payload{Name: route.Name, Params: route.Params}
	if route.State == nil {
		return payload, true
	}
	next, ok := payloadChain(route.State)
	if !ok {
		return navtree.Payload{}, false
	}
	if payload.Params == nil {
		payload.Params = navtree.Params{}
	}
	payload.Params = payload.Params.WithNested(next)
	return payload, true
}

// NewDetailExtractor returns the collaborator extracting the identity of
// the open detail view: the configured detail param of the deepest active
// route under the detail navigator. ok is false when no detail view is
// open in the tree.
func NewDetailExtractor(cfg *config.Config) func(state *navtree.State) (string, bool) {
	detail := cfg.Navigators.Detail
	param := cfg.Navigators.DetailParam

	return func(state *navtree.State) (string, bool) {
		route := findOnActiveChain(state, detail)
		if route == nil {
			return "", false
		}
		// The identifier lives on the detail route itself or on the
		// deepest active route below it
		for route != nil {
			if id, ok := route.Params[param].(string); ok {
				return id, true
			}
			next, ok := route.State.ActiveRoute()
			if !ok {
				break
			}
			route = next
		}
		return "", false
	}
}

// findOnActiveChain walks the active chain from the root looking for a
// route with the given name
func findOnActiveChain(state *navtree.State, name string) *navtree.Route {
	for state != nil {
		route, ok := state.ActiveRoute()
		if !ok {
			return nil
		}
		if route.Name == name {
			return route
		}
		state = route.State
	}
	return nil
}

// splitPath breaks a path into its segments and the query params of its
// final segment
func splitPath(path string) (segments []string, params navtree.Params, err error) {
	trimmed := strings.Trim(path, "/")
	raw, query, _ := strings.Cut(trimmed, "?")
	if raw == "" {
		return nil, nil, errors.New(errors.ErrInvalidInput, "path has no segments")
	}

	for _, seg := range strings.Split(raw, "/") {
		if seg == "" {
			return nil, nil, errors.Newf(errors.ErrInvalidInput, "path %q has an empty segment", path)
		}
		segments = append(segments, seg)
	}

	if query != "" {
		values, qerr := url.ParseQuery(query)
		if qerr != nil {
			return nil, nil, errors.Wrapf(qerr, errors.ErrInvalidInput, "path %q has an invalid query", path)
		}
		params = make(navtree.Params, len(values))
		for k := range values {
			params[k] = values.Get(k)
		}
	}

	return segments, params, nil
}
