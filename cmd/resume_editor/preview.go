package main

import (
	"fmt"

	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the resume preview",
	Long:  "Prints the plain-text preview of a resume, or the styled HTML preview with --html.",
	RunE:  runPreview,
}

var (
	previewInput string
	previewHTML  bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Resume JSON file (default: seed document)")
	previewCmd.Flags().BoolVar(&previewHTML, "html", false, "Print the HTML preview instead of text")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument(previewInput)
	if err != nil {
		return err
	}
	p := rendering.Project(doc)

	if !previewHTML {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), rendering.RenderText(p))
		return nil
	}

	pres, err := presentation()
	if err != nil {
		return err
	}
	html, err := rendering.RenderHTML(p, pres)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
