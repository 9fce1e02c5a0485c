// Package navtree defines the navigation tree model: routes, navigator
// states, and the actions that mutate them. A navigator's state is a
// recursively nested tree where each route may itself hold the state of a
// nested navigator. Only the active chain (the chain reachable by following
// Routes[Index].State from the root) carries live nested state; Normalize
// enforces this by clearing nested state off the chain.
//
// The Controller type is the mutation handle the rest of the engine works
// against: read-only snapshots plus Dispatch and ResetRoot primitives.
package navtree
