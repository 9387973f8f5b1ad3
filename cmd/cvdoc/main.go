// Package main provides the cvdoc CLI for generating CV documents and previews.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvdoc",
	Short: "CV document generator",
	Long:  "cvdoc turns a CV data file into a paginated print document description, an HTML preview, or a PDF, across a set of built-in templates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
