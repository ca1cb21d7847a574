package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/server"
	"github.com/jonathan/resume-editor/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the save gateway",
	Long: `Start an HTTP server exposing /save-resume, /saved-resume and /ai-enhance.
The store is a file path (default saved_resume.json), sqlite://path or a postgres:// URL.`,
	RunE: runServe,
}

var (
	servePort      int
	serveStore     string
	serveRateLimit bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config port)")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "Store DSN (default: config store or saved_resume.json)")
	serveCmd.Flags().BoolVar(&serveRateLimit, "rate-limit", false, "Enable per-client rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	dsn := serveStore
	if dsn == "" {
		dsn = cfg.Store
	}

	st, err := store.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	enhancer, closeEnhancer, err := llm.NewEnhancer(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = closeEnhancer() }()

	srv := server.New(st, enhancer, log, server.Config{
		Port:      port,
		RateLimit: serveRateLimit || cfg.RateLimit,
	})
	return srv.ListenAndServe(ctx, port)
}
