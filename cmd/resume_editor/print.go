package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Send the resume preview to the host printer",
	Long:  "Renders the preview to PDF and pipes it into the configured print command (lp by default).",
	RunE:  runPrint,
}

var printInput string

func init() {
	printCmd.Flags().StringVarP(&printInput, "in", "i", "", "Resume JSON file (default: seed document)")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := loadDocument(printInput)
	if err != nil {
		return err
	}
	sess, err := newSession(doc)
	if err != nil {
		return err
	}
	renderer, closeRenderer, err := newRenderer(ctx)
	if err != nil {
		return err
	}
	defer closeRenderer()
	sess.Renderer = renderer

	if err := sess.Print(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sent to printer")
	return nil
}
