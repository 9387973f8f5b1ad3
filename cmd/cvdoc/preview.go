package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-document-engine/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a CV request file into an HTML preview",
	Long:  "Render a CV request JSON file into the self-contained HTML preview fragment. Writes HTML to --out or stdout.",
	RunE:  runPreview,
}

var (
	previewInputFile  string
	previewOutputFile string
	previewTemplate   string
)

func init() {
	previewCmd.Flags().StringVarP(&previewInputFile, "in", "i", "", "Path to CV request JSON file (required)")
	previewCmd.Flags().StringVarP(&previewOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Template id override (academic, classic, modern, structured)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	req, err := loadRequest(previewInputFile, previewTemplate)
	if err != nil {
		return err
	}

	html := render.Preview(req) + "\n"

	if previewOutputFile == "" {
		_, err = os.Stdout.WriteString(html)
		return err
	}
	if err := os.WriteFile(previewOutputFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
