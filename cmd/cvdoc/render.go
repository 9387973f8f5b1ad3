package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-document-engine/internal/config"
	"github.com/jonathan/cv-document-engine/internal/observability"
	"github.com/jonathan/cv-document-engine/internal/render"
	"github.com/jonathan/cv-document-engine/internal/templates"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV request file into a document description",
	Long:  "Render a CV request JSON file into the paginated document description consumed by the PDF layout engine. Writes JSON to --out or stdout.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderTemplate   string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to CV request JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id override (academic, classic, modern, structured)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a template and document summary")

	rootCmd.AddCommand(renderCmd)
}

func loadRequest(inputFile, templateOverride string) (render.Request, error) {
	if inputFile == "" {
		return render.Request{}, fmt.Errorf("--in is required")
	}

	file, err := config.LoadRequest(inputFile)
	if err != nil {
		return render.Request{}, err
	}
	if templateOverride != "" {
		file.Template = templateOverride
	}
	if err := file.Validate(); err != nil {
		return render.Request{}, err
	}
	return file.ToRender(), nil
}

func runRender(_ *cobra.Command, _ []string) error {
	req, err := loadRequest(renderInputFile, renderTemplate)
	if err != nil {
		return err
	}

	doc := render.Document(req)

	if renderVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintTemplate(templates.Resolve(req.TemplateID), req.Config)
		printer.PrintDocument(doc)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	data = append(data, '\n')

	if renderOutputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(renderOutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
