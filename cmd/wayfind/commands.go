package wayfind

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/wayfind/pkg/display"
	"github.com/arthur-debert/wayfind/pkg/navigate"
	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/ui"
)

type navFlags struct {
	stateFile string
	intent    string
	active    bool
}

func addNavFlags(cmd *cobra.Command, flags *navFlags) {
	cmd.Flags().StringVar(&flags.stateFile, "state", "", "YAML state snapshot to reconcile against (required)")
	cmd.Flags().StringVar(&flags.intent, "intent", "", "Intent hint: up, forced-up, push, replace")
	cmd.Flags().BoolVar(&flags.active, "active", false, "Treat the target as the currently active route")
	_ = cmd.MarkFlagRequired("state")
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	flags := &navFlags{}

	cmd := &cobra.Command{
		Use:   "resolve PATH",
		Short: "Print the reconciliation plan for a path without mutating the snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, engine, format, err := loadEnvironment(root)
			if err != nil {
				return err
			}
			_, controller, err := loadSnapshot(flags.stateFile)
			if err != nil {
				return err
			}
			intent, err := parseIntent(flags.intent)
			if err != nil {
				return err
			}

			plan, err := engine.Plan(controller, args[0], navigate.Options{
				Intent:        intent,
				IsActiveRoute: flags.active,
			})
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				return printPlanJSON(plan)
			}
			fmt.Print(display.NewRenderer(format, table).Plan(plan))
			return nil
		},
	}

	addNavFlags(cmd, flags)
	return cmd
}

func newApplyCmd(root *rootFlags) *cobra.Command {
	flags := &navFlags{}
	var outFile string

	cmd := &cobra.Command{
		Use:   "apply PATH",
		Short: "Apply a path to a state snapshot and write the mutated tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, engine, format, err := loadEnvironment(root)
			if err != nil {
				return err
			}
			state, controller, err := loadSnapshot(flags.stateFile)
			if err != nil {
				return err
			}
			intent, err := parseIntent(flags.intent)
			if err != nil {
				return err
			}

			if err := engine.NavigateTo(controller, args[0], navigate.Options{
				Intent:        intent,
				IsActiveRoute: flags.active,
			}); err != nil {
				return err
			}

			data, err := navtree.EncodeState(state)
			if err != nil {
				return err
			}

			target := outFile
			if target == "" {
				target = flags.stateFile
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return err
			}

			fmt.Print(display.NewRenderer(format, table).Tree(state))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	addNavFlags(cmd, flags)
	cmd.Flags().StringVar(&outFile, "out", "", "Write the mutated snapshot here instead of overwriting --state")
	return cmd
}

func newPrintCmd(root *rootFlags) *cobra.Command {
	var stateFile string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render a state snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, _, format, err := loadEnvironment(root)
			if err != nil {
				return err
			}
			state, _, err := loadSnapshot(stateFile)
			if err != nil {
				return err
			}

			if format == ui.FormatJSON {
				data, err := navtree.EncodeStateJSON(state)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Print(display.NewRenderer(format, table).Tree(state))
			return nil
		},
	}

	cmd.Flags().StringVar(&stateFile, "state", "", "YAML state snapshot to render (required)")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}

func printPlanJSON(plan navigate.Plan) error {
	out := struct {
		Rule         string          `json:"rule"`
		DismissModal string          `json:"dismissModal,omitempty"`
		Minimized    bool            `json:"minimized"`
		Reset        bool            `json:"reset"`
		Action       *navtree.Action `json:"action,omitempty"`
	}{
		Rule:         plan.Rule,
		DismissModal: plan.DismissModal,
		Minimized:    plan.Minimized,
		Reset:        plan.Reset,
	}
	if !plan.Reset {
		out.Action = &plan.Action
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
