// Package wayfind implements the wayfind CLI: inspection and offline
// application of navigation reconciliation plans against state snapshots.
package wayfind

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wayfind/pkg/config"
	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/kinds"
	"github.com/arthur-debert/wayfind/pkg/logging"
	"github.com/arthur-debert/wayfind/pkg/navigate"
	"github.com/arthur-debert/wayfind/pkg/navtree"
	"github.com/arthur-debert/wayfind/pkg/policy"
	"github.com/arthur-debert/wayfind/pkg/routing"
	"github.com/arthur-debert/wayfind/pkg/ui"
)

// Version is set at build time
var Version = "dev"

type rootFlags struct {
	verbosity  int
	configPath string
	format     string
}

// NewRootCmd builds the wayfind command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "wayfind",
		Short: "Reconcile deep links against a navigation state tree",
		Long: `wayfind resolves a navigation path into the minimal mutation of a
tree-shaped navigation state: it finds the deepest node where the tree and
the request still agree, applies intent overrides (forced replace, up
navigation, detail push, overlay handling), and dispatches only what must
change.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"Config file (defaults to built-in navigator kinds)")
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "auto",
		"Output format: auto, term, text, json")

	initTemplateFormatting()

	rootCmd.AddCommand(newResolveCmd(flags))
	rootCmd.AddCommand(newApplyCmd(flags))
	rootCmd.AddCommand(newPrintCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wayfind version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wayfind %s\n", Version)
		},
	}
}

// loadEnvironment assembles everything a command needs from the shared
// flags: configuration, kind table, engine, and the resolved output format
func loadEnvironment(flags *rootFlags) (*config.Config, *kinds.Table, *navigate.Engine, ui.Format, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, nil, ui.FormatText, err
	}

	table, err := cfg.KindTable()
	if err != nil {
		return nil, nil, nil, ui.FormatText, err
	}

	engine := navigate.New(
		table,
		policy.New(table, policy.DetailExtractor(routing.NewDetailExtractor(cfg))),
		routing.NewPathResolver(cfg),
		routing.NewActionResolver(cfg),
		navigate.DismissTopModal(table),
	)

	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, nil, nil, ui.FormatText, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format value")
	}
	format = ui.Resolve(format, os.Stdout)

	return cfg, table, engine, format, nil
}

// loadSnapshot reads a YAML state snapshot and wraps it in a controller
func loadSnapshot(path string) (*navtree.State, *navtree.Controller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrSnapshotDecode, "cannot read state snapshot %s", path)
	}
	state, err := navtree.DecodeState(data)
	if err != nil {
		return nil, nil, err
	}
	return state, navtree.NewController(state), nil
}

// parseIntent maps the --intent flag to an intent hint
func parseIntent(s string) (navtree.Intent, error) {
	switch s {
	case "":
		return navtree.IntentNone, nil
	case "up":
		return navtree.IntentUp, nil
	case "forced-up":
		return navtree.IntentForcedUp, nil
	case "push":
		return navtree.IntentPush, nil
	case "replace":
		return navtree.IntentReplace, nil
	default:
		return navtree.IntentNone, errors.Newf(errors.ErrInvalidInput,
			"unknown intent %q (want up, forced-up, push, replace)", s)
	}
}
