package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Check that a file is an importable resume",
	Long:  "Reads a resume JSON file, validates its shape and prints a summary. Nothing is written.",
	RunE:  runImport,
}

var importInput string

func init() {
	importCmd.Flags().StringVarP(&importInput, "in", "i", "", "Resume JSON file (required)")
	_ = importCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	doc, err := portable.ReadFile(importInput)
	if err != nil {
		var verr *portable.ValidationError
		if errors.As(err, &verr) {
			for _, field := range verr.Fields {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", field.Field, field.Message)
			}
		}
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(doc)
	return nil
}
