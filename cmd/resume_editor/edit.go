package main

import (
	"github.com/jonathan/resume-editor/internal/gateway"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/tui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a resume in the terminal",
	Long:  "Opens the interactive form with a live preview. Exports, printing and saving run from inside the form.",
	RunE:  runEdit,
}

var (
	editDocument string
	editOutDir   string
)

func init() {
	editCmd.Flags().StringVarP(&editDocument, "document", "d", "", "Resume JSON file to start from (default: seed document)")
	editCmd.Flags().StringVarP(&editOutDir, "out-dir", "o", "", "Directory for exported files (default: config out_dir)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := loadDocument(editDocument)
	if err != nil {
		return err
	}
	sess, err := newSession(doc)
	if err != nil {
		return err
	}
	sess.Gateway = gateway.NewClient(cfg.ServerURL)

	enhancer, closeEnhancer, err := llm.NewEnhancer(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = closeEnhancer() }()
	sess.Enhancer = enhancer

	// PDF export and print stay unavailable in the form when no browser starts.
	renderer, closeRenderer, err := newRenderer(ctx)
	if err != nil {
		logger.Warn("pdf export and print disabled", "error", err)
	} else {
		defer closeRenderer()
		sess.Renderer = renderer
	}

	outDir := editOutDir
	if outDir == "" {
		outDir = cfg.OutDir
	}
	return tui.Run(sess, tui.Options{OutDir: outDir, Context: ctx})
}
