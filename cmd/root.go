// Package cmd wires configuration, logging and the tree into cobra commands.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"natbtree/config"
	"natbtree/logging"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "natbtree",
		Short:         "Order-4 B-Tree with natural Persian key ordering",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd, replFlags{})
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the JSON config file (default $NATBTREE_CFG or ./natbtree.json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newReplCmd(a),
		newInsertCmd(a),
		newSeedCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
