package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// docCmd renders the raw construction document for the terminal.
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Render the construction document in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(settings.Document)
		if err != nil {
			return fmt.Errorf("reading %s: %w", settings.Document, err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := renderer.Render(string(data))
		if err != nil {
			return fmt.Errorf("rendering document: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}
