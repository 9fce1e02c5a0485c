// Package display renders navigation trees and reconciliation plans for
// the CLI.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/wayfind/pkg/display/styles"
	"github.com/arthur-debert/wayfind/pkg/kinds"
	"github.com/arthur-debert/wayfind/pkg/navigate"
	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/ui"
)

// Renderer renders trees and plans in a given format
type Renderer struct {
	format ui.Format
	kinds  *kinds.Table
}

// NewRenderer builds a renderer. FormatAuto must be resolved by the caller
// before construction.
func NewRenderer(format ui.Format, table *kinds.Table) *Renderer {
	return &Renderer{format: format, kinds: table}
}

// Tree renders a navigation tree, one route per line, nested navigators
// indented under their hosting route. The active route of each navigator
// is marked.
func (r *Renderer) Tree(state *navtree.State) string {
	var b strings.Builder
	r.writeNode(&b, state, 0)
	return b.String()
}

func (r *Renderer) writeNode(b *strings.Builder, state *navtree.State, depth int) {
	if state == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s\n", indent, r.styled("Key", "["+state.Key+"]"))

	active, _ := state.ActiveRoute()
	for _, route := range state.Routes {
		marker := " "
		routeStyle := "Route"
		if route == active {
			marker = "▸"
			routeStyle = "ActiveRoute"
		}
		if r.kinds != nil && r.kinds.IsModal(route.Name) {
			routeStyle = "Modal"
		}

		line := fmt.Sprintf("%s%s %s", indent, marker, r.styled(routeStyle, route.Name))
		if len(route.Params) > 0 {
			line += " " + r.styled("Params", formatParams(route.Params))
		}
		b.WriteString(line + "\n")

		if route.State != nil {
			r.writeNode(b, route.State, depth+1)
		}
	}
}

// Plan renders a reconciliation plan: the policy rule that fired, any
// overlay dismissal, and the final action or reset.
func (r *Renderer) Plan(plan navigate.Plan) string {
	var b strings.Builder

	b.WriteString(r.styled("Header", "rule") + ": " + plan.Rule + "\n")
	if plan.DismissModal != "" {
		b.WriteString(r.styled("Header", "dismiss") + ": " + plan.DismissModal + "\n")
	}

	if plan.Reset {
		b.WriteString(r.styled("Header", "outcome") + ": reset to target state\n")
		return b.String()
	}

	b.WriteString(r.styled("Header", "outcome") + ": dispatch\n")
	b.WriteString("  type: " + string(plan.Action.Type) + "\n")
	b.WriteString("  name: " + plan.Action.Payload.Name + "\n")
	if plan.Action.Target != "" {
		b.WriteString("  target: " + plan.Action.Target + "\n")
	}
	if plan.Minimized {
		b.WriteString("  minimized: true\n")
	}
	if len(plan.Action.Payload.Params) > 0 {
		b.WriteString("  params: " + formatParams(plan.Action.Payload.Params) + "\n")
	}
	return b.String()
}

func (r *Renderer) styled(name, s string) string {
	if r.format != ui.FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func formatParams(params navtree.Params) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, params[k]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
