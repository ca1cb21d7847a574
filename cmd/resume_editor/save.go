package main

import (
	"github.com/jonathan/resume-editor/internal/gateway"
	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Send a resume to the save gateway",
	RunE:  runSave,
}

var (
	saveInput  string
	saveServer string
)

func init() {
	saveCmd.Flags().StringVarP(&saveInput, "in", "i", "", "Resume JSON file (default: seed document)")
	saveCmd.Flags().StringVar(&saveServer, "server", "", "Gateway base URL (default: config server_url)")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument(saveInput)
	if err != nil {
		return err
	}
	server := saveServer
	if server == "" {
		server = cfg.ServerURL
	}

	ack, err := gateway.NewClient(server).Save(cmd.Context(), doc)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSaved(ack.Status, ack.ID, ack.SavedAt)
	return nil
}
