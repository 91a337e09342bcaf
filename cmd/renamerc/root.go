package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/status"
)

const defaultConfigFile = ".renamerc.yaml"

var (
	// Flags
	configFile string
	debug      bool
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "renamerc",
		Short:         "Batch-rename files with a configurable rule pipeline",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "config file path")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	var rootOpts *opts.RootOpts
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setupLogging()

		o, err := newRootOpts(cmd.Context())
		if err != nil {
			return err
		}
		rootOpts = o
		return nil
	}

	root.AddCommand(commands.NewPreviewCmd(func() *opts.RootOpts { return rootOpts }))
	root.AddCommand(commands.NewApplyCmd(func() *opts.RootOpts { return rootOpts }))

	return root
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	rules, err := cfg.Rules.ToOptions()
	if err != nil {
		return nil, errors.Errorf("translating rules: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &opts.RootOpts{
		Config: cfg,
		Rules:  rules,
		Status: status.New(os.Stdout, level),
	}, nil
}

// loadConfig reads the config file. A missing default config is not an
// error; it just means every pipeline stage is an identity.
func loadConfig(ctx context.Context) (*config.Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) && configFile == defaultConfigFile {
		return &config.Config{}, nil
	}
	return config.Load(ctx, configFile)
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
