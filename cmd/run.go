package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/cellquest/internal/app"
	"github.com/abhisek/cellquest/internal/config"
	"github.com/abhisek/cellquest/internal/lesson"
)

// runApp launches the terminal lesson.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return app.Run(cfg)
}

// openDocument builds a journal-less document for the plain-terminal commands.
func openDocument(cmd *cobra.Command) (*lesson.Document, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newDocument(cfg)
}

func newDocument(cfg config.Config) (*lesson.Document, error) {
	reg, err := app.LoadRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return lesson.New(reg, lesson.Options{Speed: cfg.Speed, Logger: slog.Default()}), nil
}
