package minimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/testutil"
)

func TestMinimizeDescendsMatchingLevels(t *testing.T) {
	// Tree: root[main -> inner[detail -> leaf[comments]]], all on the
	// active chain. The action addresses main/detail/comments from the
	// root, so two descents are possible before leaf content changes.
	leaf := testutil.Stack("leaf", 0, testutil.Route("comments"))
	inner := testutil.Stack("inner", 0, testutil.RouteWithState("detail", leaf))
	root := testutil.Stack("root", 0, testutil.RouteWithState("main", inner))

	action := navtree.Action{
		Type: navtree.ActionNavigate,
		Payload: testutil.Nested(
			navtree.Payload{Name: "main"},
			navtree.Payload{Name: "detail"},
			navtree.Payload{Name: "comments", Params: navtree.Params{"sort": "new"}, Path: "comments?sort=new"},
		),
	}

	got := Minimize(action, root)

	assert.Equal(t, navtree.ActionNavigate, got.Type)
	assert.Equal(t, "leaf", got.Target, "addressed at the node reached after two descents")
	assert.Equal(t, "comments", got.Payload.Name)
	assert.Equal(t, "new", got.Payload.Params["sort"])
	assert.Equal(t, "comments?sort=new", got.Payload.Path)
}

func TestMinimizeStopsAtDivergence(t *testing.T) {
	// The active branch at depth 1 is "feed", not the requested "detail":
	// the action must stay addressed at the first matching node.
	inner := testutil.Stack("inner", 0, testutil.Route("feed"), testutil.Route("detail"))
	root := testutil.Stack("root", 0, testutil.RouteWithState("main", inner))

	action := navtree.Action{
		Type: navtree.ActionNavigate,
		Payload: testutil.Nested(
			navtree.Payload{Name: "main"},
			navtree.Payload{Name: "detail"},
		),
	}

	got := Minimize(action, root)

	assert.Equal(t, "inner", got.Target, "one descent: main matched, detail diverged")
	assert.Equal(t, "detail", got.Payload.Name)
}

func TestMinimizeTopLevelMismatchReturnsInputUnchanged(t *testing.T) {
	root := testutil.Stack("root", 0, testutil.Route("settings"))

	action := navtree.Action{
		Type:    navtree.ActionNavigate,
		Payload: navtree.Payload{Name: "main", Path: "/main"},
	}

	got := Minimize(action, root)

	assert.Equal(t, action, got)
	assert.Empty(t, got.Target, "no descent means no target")
}

func TestMinimizeStopsWhenNestedStateAbsent(t *testing.T) {
	// Name matches but the route hosts no nested navigator yet
	root := testutil.Stack("root", 0, testutil.Route("main"))

	action := navtree.Action{
		Type: navtree.ActionNavigate,
		Payload: testutil.Nested(
			navtree.Payload{Name: "main"},
			navtree.Payload{Name: "detail"},
		),
	}

	got := Minimize(action, root)

	assert.Empty(t, got.Target)
	assert.Equal(t, "main", got.Payload.Name, "triple stays wrapped for the mounting navigator")
}

func TestMinimizeEmptyRoutesFailsNameMatch(t *testing.T) {
	inner := testutil.Stack("inner", 0)
	root := testutil.Stack("root", 0, testutil.RouteWithState("main", inner))

	action := navtree.Action{
		Type: navtree.ActionNavigate,
		Payload: testutil.Nested(
			navtree.Payload{Name: "main"},
			navtree.Payload{Name: "detail"},
		),
	}

	got := Minimize(action, root)

	assert.Equal(t, "inner", got.Target, "descends into main, then stops at the empty navigator")
	assert.Equal(t, "detail", got.Payload.Name)
}

func TestMinimizeNamelessPayloadIsUntouched(t *testing.T) {
	root := testutil.Stack("root", 0, testutil.Route("main"))
	action := navtree.Action{Type: navtree.ActionNavigate, Payload: navtree.Payload{Path: "/"}}

	got := Minimize(action, root)
	assert.Equal(t, action, got)
}

func TestMinimizeExhaustsChain(t *testing.T) {
	// Every level matches and the chain runs out of triples: the action
	// ends up addressed at the deepest node with an empty payload.
	inner := testutil.Stack("inner", 0, testutil.Route("feed"))
	root := testutil.Stack("root", 0, testutil.RouteWithState("main", inner))

	action := navtree.Action{
		Type:    navtree.ActionNavigate,
		Payload: navtree.Payload{Name: "main"},
	}

	got := Minimize(action, root)

	assert.Equal(t, "inner", got.Target)
	assert.Empty(t, got.Payload.Name)
}

func TestMinimizePreservesActionType(t *testing.T) {
	inner := testutil.Stack("inner", 0, testutil.Route("feed"))
	root := testutil.Stack("root", 0, testutil.RouteWithState("main", inner))

	for _, typ := range []navtree.ActionType{navtree.ActionNavigate, navtree.ActionPush, navtree.ActionReplace} {
		action := navtree.Action{
			Type: typ,
			Payload: testutil.Nested(
				navtree.Payload{Name: "main"},
				navtree.Payload{Name: "detail"},
			),
		}
		got := Minimize(action, root)
		require.Equal(t, typ, got.Type)
	}
}

func TestMinimizeDepthKProperty(t *testing.T) {
	// For a chain whose first k levels match and carry nested state, the
	// result is targeted at the node after exactly k descents with the
	// unwrapped (k+1)-th triple as payload.
	leaf := testutil.Stack("d3", 0, testutil.Route("level3"))
	l2 := testutil.Stack("d2", 0, testutil.RouteWithState("level2", leaf))
	l1 := testutil.Stack("d1", 0, testutil.RouteWithState("level1", l2))
	root := testutil.Stack("d0", 0, testutil.RouteWithState("level0", l1))

	action := navtree.Action{
		Type: navtree.ActionNavigate,
		Payload: testutil.Nested(
			navtree.Payload{Name: "level0"},
			navtree.Payload{Name: "level1"},
			navtree.Payload{Name: "level2"},
			navtree.Payload{Name: "level3"},
			navtree.Payload{Name: "level4", Path: "four"},
		),
	}

	got := Minimize(action, root)

	assert.Equal(t, "d3", got.Target)
	assert.Equal(t, "level3", got.Payload.Name)
	next, ok := got.Payload.NextLevel()
	require.True(t, ok)
	assert.Equal(t, "level4", next.Name)
	assert.Equal(t, "four", next.Path)
}
