package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-editor/internal/gateway"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/session"
	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite one section of a resume",
	Long: `Asks for a rewrite of a field or section. Content comes from --content, or
from the named section of --in. With --server the gateway's /ai-enhance endpoint
is used; otherwise the rewrite runs locally (Gemini when GEMINI_API_KEY is set).`,
	RunE: runEnhance,
}

var (
	enhanceSection string
	enhanceContent string
	enhanceInput   string
	enhanceServer  string
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceSection, "section", "s", "summary", "Field or section name")
	enhanceCmd.Flags().StringVarP(&enhanceContent, "content", "c", "", "Text to enhance")
	enhanceCmd.Flags().StringVarP(&enhanceInput, "in", "i", "", "Resume JSON file to read the section from")
	enhanceCmd.Flags().StringVar(&enhanceServer, "server", "", "Gateway base URL")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	section := strings.ToLower(strings.TrimSpace(enhanceSection))

	content := enhanceContent
	if content == "" {
		doc, err := loadDocument(enhanceInput)
		if err != nil {
			return err
		}
		content, err = session.SectionText(doc, section)
		if err != nil {
			return err
		}
	}

	var enhanced string
	if enhanceServer != "" {
		out, err := gateway.NewClient(enhanceServer).Enhance(ctx, section, content)
		if err != nil {
			return err
		}
		enhanced = out
	} else {
		enhancer, closeEnhancer, err := llm.NewEnhancer(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer func() { _ = closeEnhancer() }()
		out, err := enhancer.Enhance(ctx, section, content)
		if err != nil {
			return err
		}
		enhanced = out
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), enhanced)
	return nil
}
