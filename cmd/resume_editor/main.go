// Package main provides the entry point for the resume editor CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-editor/internal/config"
)

var (
	configPath string
	verbose    bool

	// cfg and logger are set up before every command runs.
	cfg    config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:               "resume_editor",
	Short:             "Resume editor with live preview, PDF export and a save gateway",
	Long:              "resume_editor edits a single resume document in the terminal, exports it as JSON or a one-page PDF, prints it and saves it through an HTTP gateway.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath, os.Getenv)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Verbose = true
	}
	cfg = loaded

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
