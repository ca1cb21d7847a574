package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/jonathan/resume-editor/internal/tui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as JSON, a one-page PDF, or both",
	Long: `Writes the portable JSON encoding and/or the one-page PDF of a resume.
With --format all, --out names a directory that receives resume.json and resume.pdf.`,
	RunE: runExport,
}

var (
	exportInput  string
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Resume JSON file (default: seed document)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, pdf or all")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file, or directory with --format all")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(strings.TrimSpace(exportFormat))
	switch format {
	case "json", "pdf", "all":
	default:
		return fmt.Errorf("unknown format %q (want json, pdf or all)", exportFormat)
	}

	doc, err := loadDocument(exportInput)
	if err != nil {
		return err
	}
	sess, err := newSession(doc)
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	out := exportOutput
	if out == "" {
		out = cfg.OutDir
		if format != "all" {
			out = filepath.Join(cfg.OutDir, tui.DefaultBaseName+"."+format)
		}
	}

	if format == "json" {
		if err := sess.ExportJSON(out); err != nil {
			return err
		}
		printer.PrintExported(out)
		return nil
	}

	ctx := cmd.Context()
	renderer, closeRenderer, err := newRenderer(ctx)
	if err != nil {
		return err
	}
	defer closeRenderer()
	sess.Renderer = renderer

	if format == "pdf" {
		if err := sess.ExportPDF(ctx, out); err != nil {
			return err
		}
		printer.PrintExported(out)
		return nil
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	written, err := sess.ExportAll(ctx, out, tui.DefaultBaseName)
	printer.PrintExported(written.JSON, written.PDF)
	return err
}
