package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is a yes/no guessing engine over knowledge trees",
	Long: `Arbor plays "20 questions" over topic documents: each topic is a binary
tree of questions whose leaves name the entities to guess.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().String("dir", "", "Directory containing the topic documents")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.GlobalOptions{ConfigPath: configPath, Dir: dir, Debug: debug}
}

// setup resolves config and logger, then builds the engine.
// When load is set every configured topic is loaded.
func setup(ctx context.Context, cmd *cobra.Command, load bool, extra ...arbor.Option) (config.Config, *slog.Logger, *arbor.Engine, func() error, error) {
	cfg, err := cli.LoadConfig(globalOptions(cmd))
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	logger, err := cli.CreateLogger(cfg.Log)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	engine, closeFn, err := cli.CreateEngine(ctx, cfg, logger, extra...)
	if err != nil {
		return cfg, logger, nil, nil, err
	}
	if load {
		if err := cli.LoadTopics(ctx, engine, logger); err != nil {
			_ = closeFn()
			return cfg, logger, nil, nil, err
		}
	}
	return cfg, logger, engine, closeFn, nil
}
