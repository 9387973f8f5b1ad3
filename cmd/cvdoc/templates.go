package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-document-engine/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	for _, id := range templates.IDs() {
		desc, _ := templates.Get(id)
		marker := " "
		if id == templates.DefaultID {
			marker = "*"
		}
		layout := "single column"
		if desc.PageLayout == templates.PageSidebar {
			layout = "sidebar"
		}
		fmt.Printf("%s %-12s %-12s %s preset, %s\n", marker, id, desc.Name, desc.Preset, layout)
	}
	fmt.Println("\n* default")
	return nil
}
