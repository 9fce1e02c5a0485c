package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wayfind/pkg/config"
	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/kinds"
	"github.com/arthur-debert/wayfind/pkg/navigate"
	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/policy"
	"github.com/arthur-debert/wayfind/pkg/testutil"
)

func TestResolvePath(t *testing.T) {
	resolve := NewPathResolver(config.Default())

	t.Run("single segment", func(t *testing.T) {
		state, err := resolve("/inbox")
		require.NoError(t, err)

		require.Len(t, state.Routes, 1)
		assert.Equal(t, "inbox", state.Routes[0].Name)
		assert.Nil(t, state.Routes[0].State)
	})

	t.Run("nested segments with query", func(t *testing.T) {
		state, err := resolve("/main/detail-pane?entityID=42")
		require.NoError(t, err)

		require.Len(t, state.Routes, 1)
		assert.Equal(t, "main", state.Routes[0].Name)
		inner := state.Routes[0].State
		require.NotNil(t, inner)
		require.Len(t, inner.Routes, 1)
		assert.Equal(t, "detail-pane", inner.Routes[0].Name)
		assert.Equal(t, "42", inner.Routes[0].Params["entityID"])
	})

	t.Run("deterministic structure", func(t *testing.T) {
		a, err := resolve("/main/feed")
		require.NoError(t, err)
		b, err := resolve("/main/feed")
		require.NoError(t, err)
		// Keys are fresh per resolution, but the structure is equal
		assert.Equal(t, a.Routes[0].Name, b.Routes[0].Name)
		assert.Equal(t, a.Routes[0].State.Routes[0].Name, b.Routes[0].State.Routes[0].Name)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := resolve("/")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("empty segment", func(t *testing.T) {
		_, err := resolve("/main//feed")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestResolvePathRoots(t *testing.T) {
	cfg := config.Default()
	cfg.Navigators.Roots = []string{"main"}
	resolve := NewPathResolver(cfg)

	_, err := resolve("/main/feed")
	assert.NoError(t, err)

	_, err = resolve("/secret")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestResolveAction(t *testing.T) {
	resolve := NewActionResolver(config.Default())

	t.Run("single-chain state becomes a nested navigate", func(t *testing.T) {
		state, err := NewPathResolver(config.Default())("/main/detail-pane?entityID=42")
		require.NoError(t, err)

		action, ok := resolve(state)
		require.True(t, ok)

		assert.Equal(t, navtree.ActionNavigate, action.Type)
		assert.Equal(t, "main", action.Payload.Name)
		assert.Empty(t, action.Target, "resolved actions address the root")

		next, ok := action.Payload.NextLevel()
		require.True(t, ok)
		assert.Equal(t, "detail-pane", next.Name)
		assert.Equal(t, "42", next.Params["entityID"])
	})

	t.Run("multi-route level is absent", func(t *testing.T) {
		state := testutil.Stack("root", 0, testutil.Route("a"), testutil.Route("b"))
		_, ok := resolve(state)
		assert.False(t, ok, "two routes at one level cannot be an incremental action")
	})

	t.Run("nil state is absent", func(t *testing.T) {
		_, ok := resolve(nil)
		assert.False(t, ok)
	})
}

func TestDetailExtractor(t *testing.T) {
	extract := NewDetailExtractor(config.Default())

	t.Run("identifier on the detail route", func(t *testing.T) {
		root := testutil.Stack("root", 0,
			testutil.RouteWithParams(kinds.DetailPane, navtree.Params{"entityID": "42"}),
		)
		id, ok := extract(root)
		require.True(t, ok)
		assert.Equal(t, "42", id)
	})

	t.Run("identifier below the detail route", func(t *testing.T) {
		inner := testutil.Stack("inner", 0,
			testutil.RouteWithParams("record", navtree.Params{"entityID": "99"}),
		)
		root := testutil.Stack("root", 0, testutil.RouteWithState(kinds.DetailPane, inner))

		id, ok := extract(root)
		require.True(t, ok)
		assert.Equal(t, "99", id)
	})

	t.Run("no detail view open", func(t *testing.T) {
		root := testutil.Stack("root", 0, testutil.Route("home"))
		_, ok := extract(root)
		assert.False(t, ok)
	})

	t.Run("detail route off the active chain is ignored", func(t *testing.T) {
		root := testutil.Stack("root", 0,
			testutil.Route("home"),
			testutil.RouteWithParams(kinds.DetailPane, navtree.Params{"entityID": "42"}),
		)
		_, ok := extract(root)
		assert.False(t, ok)
	})
}

// TestFullFlow wires the reference collaborators into the engine and walks
// a deep link through policy, minimization and dispatch.
func TestFullFlow(t *testing.T) {
	cfg := config.Default()
	table, err := cfg.KindTable()
	require.NoError(t, err)

	engine := navigate.New(
		table,
		policy.New(table, policy.DetailExtractor(NewDetailExtractor(cfg))),
		NewPathResolver(cfg),
		NewActionResolver(cfg),
		navigate.DismissTopModal(table),
	)

	t.Run("detail change pushes a new entry", func(t *testing.T) {
		root := testutil.Stack("root", 0,
			testutil.RouteWithParams(kinds.DetailPane, navtree.Params{"entityID": "42"}),
		)
		c := navtree.NewController(root)

		require.NoError(t, engine.NavigateTo(c, "/detail-pane?entityID=99", navigate.Options{}))

		require.Len(t, root.Routes, 2, "a different detail record pushes")
		assert.Equal(t, "99", root.Routes[1].Params["entityID"])
		assert.Equal(t, 1, root.Index)
	})

	t.Run("same detail record navigates in place", func(t *testing.T) {
		root := testutil.Stack("root", 0,
			testutil.RouteWithParams(kinds.DetailPane, navtree.Params{"entityID": "42"}),
		)
		c := navtree.NewController(root)

		require.NoError(t, engine.NavigateTo(c, "/detail-pane?entityID=42", navigate.Options{}))

		assert.Len(t, root.Routes, 1, "same record reuses the entry")
	})

	t.Run("deep link minimized into an open overlay", func(t *testing.T) {
		overlayStack := testutil.Stack("overlay-stack", 0, testutil.Route("filters"))
		root := testutil.Stack("root", 1,
			testutil.Route("home"),
			testutil.RouteWithState(kinds.LeftOverlay, overlayStack),
		)
		c := navtree.NewController(root)

		require.NoError(t, engine.NavigateTo(c, "/left-overlay/saved-searches", navigate.Options{}))

		assert.Len(t, root.Routes, 2, "root history untouched")
		require.Len(t, overlayStack.Routes, 2, "only the overlay's own stack changed")
		assert.Equal(t, "saved-searches", overlayStack.Routes[1].Name)
	})
}
