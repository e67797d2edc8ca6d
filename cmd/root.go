package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/cellquest/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cellquest",
	Short: "Interactive lesson on cells, airways and asthma",
	Long:  "CellQuest is a terminal lesson that explores cells, healthy airways and what changes during an asthma attack.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		closer, err := config.SetupLogger(cfg)
		if err != nil {
			return fmt.Errorf("setup logger: %w", err)
		}
		logCloser = closer
		slog.Debug("config resolved", "content", cfg.ContentDir, "speed", cfg.Speed, "journal", cfg.JournalDSN)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

var logCloser io.Closer

func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Content pack directory (overrides CELLQUEST_CONTENT and the built-in pack)")
	rootCmd.PersistentFlags().Float64("speed", 0, "Animation and tour speed factor (overrides CELLQUEST_SPEED)")
	rootCmd.PersistentFlags().String("log", "", "Write JSON logs to this file (overrides CELLQUEST_LOG)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags over the environment over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if d, _ := cmd.Flags().GetString("content"); d != "" {
		cfg.ContentDir = d
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed, _ = cmd.Flags().GetFloat64("speed")
	}
	if f, _ := cmd.Flags().GetString("log"); f != "" {
		cfg.LogFile = f
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
