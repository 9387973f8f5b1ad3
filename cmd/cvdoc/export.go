package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-document-engine/internal/export"
	"github.com/jonathan/cv-document-engine/internal/observability"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export CV request files to PDF via headless Chrome",
	Long:  "Export one request file, or every *.json file in a directory, to PDF. Requires Chrome/Chromium; set CHROME_PATH to point at a specific binary.",
	RunE:  runExport,
}

var (
	exportInput       string
	exportOutDir      string
	exportTemplate    string
	exportConcurrency int
	exportTimeout     time.Duration
	exportVerbose     bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to a request JSON file or a directory of them (required)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", ".", "Directory to write PDFs to")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id override applied to every request")
	exportCmd.Flags().IntVar(&exportConcurrency, "concurrency", export.DefaultConcurrency, "Browser sessions to run at once")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", export.DefaultTimeout, "Per-session browser timeout")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print exported file paths")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if exportInput == "" {
		return fmt.Errorf("--in is required")
	}

	paths, err := requestFiles(exportInput)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no request files found in %s", exportInput)
	}

	items := make([]export.BatchItem, 0, len(paths))
	for _, path := range paths {
		req, err := loadRequest(path, exportTemplate)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		items = append(items, export.BatchItem{Name: name, Request: req})
	}

	exporter := &export.ChromeExporter{Timeout: exportTimeout}
	results, err := export.ExportBatch(context.Background(), exporter, items, exportOutDir, exportConcurrency)
	if err != nil {
		return err
	}

	if exportVerbose {
		written := make([]string, len(results))
		for i, res := range results {
			written[i] = res.Path
		}
		observability.NewPrinter(os.Stderr).PrintExported(written)
	}

	fmt.Printf("Exported %d file(s) to %s\n", len(results), exportOutDir)
	return nil
}

// requestFiles expands a file-or-directory input into request file paths.
func requestFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	matches, err := filepath.Glob(filepath.Join(input, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list request files: %w", err)
	}
	return matches, nil
}
