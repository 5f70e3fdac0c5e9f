// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/db47h/dilo"
	"github.com/db47h/dilo/internal/config"
	"github.com/db47h/dilo/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

type app struct {
	cfgPath  string
	logLevel string
	cfg      config.Config
	log      *slog.Logger
}

// newRootCmd returns the base command with all subcommands attached.
func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "dilo",
		Short: "Digital logic simulator",
		Long: `dilo simulates networks of logic gates. It prints truth tables ` +
			`of boolean expressions and library circuits, and checks circuits ` +
			`against boolean expressions.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.truthCmd(),
		a.partsCmd(),
		a.tableCmd(),
		a.checkCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, version)
	a.log.Debug("configuration loaded", "path", a.cfgPath, "max_passes", cfg.Simulation.MaxPasses)
	return nil
}

// options returns the circuit options derived from the configuration.
func (a *app) options() []dilo.Option {
	return []dilo.Option{
		dilo.WithMaxPasses(a.cfg.Simulation.MaxPasses),
		dilo.WithLogger(a.log),
	}
}
