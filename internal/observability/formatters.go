// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-document-engine/internal/layout"
	"github.com/jonathan/cv-document-engine/internal/templates"
	"github.com/jonathan/cv-document-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTemplate outputs the resolved template and its section order.
func (p *Printer) PrintTemplate(desc templates.Descriptor, cfg types.RenderConfig) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Template: %s (%s)\n", desc.Name, desc.ID))
	sb.WriteString(fmt.Sprintf("Preset:   %s\n", desc.Preset))
	if desc.PageLayout == templates.PageSidebar {
		sb.WriteString(fmt.Sprintf("Layout:   sidebar (%v)\n", desc.SidebarWidth))
	} else {
		sb.WriteString("Layout:   single column\n")
	}
	sb.WriteString("\nSections:\n")

	for _, sec := range desc.Sections() {
		marker := "•"
		if !cfg.SectionVisible(sec.Key) {
			marker = "✗"
		}
		title := sec.Title
		if title == "" {
			title = sec.Key
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, title))
	}

	if len(cfg.Customization.Colors) > 0 {
		sb.WriteString(fmt.Sprintf("\nCustom colors: %d override(s)\n", len(cfg.Customization.Colors)))
	}

	p.printBox("TEMPLATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs a shape summary of the generated document.
func (p *Printer) PrintDocument(doc *layout.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page size: %s\n", doc.PageSize))
	sb.WriteString(fmt.Sprintf("Font:      %s @ %.4gpt\n", doc.DefaultStyle.Font, doc.DefaultStyle.FontSize))
	if doc.Info.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", doc.Info.Title))
	}
	sb.WriteString(fmt.Sprintf("Blocks:    %d top-level, %d total nodes", len(doc.Content), countNodes(doc.Content)))

	p.printBox("DOCUMENT", sb.String())
}

// PrintExported outputs where batch items were written.
func (p *Printer) PrintExported(paths []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Exported %d file(s):\n\n", len(paths)))

	count := min(len(paths), maxItemsToShow)
	for i := 0; i < count; i++ {
		path := paths[i]
		if len(path) > 50 {
			path = "..." + path[len(path)-47:]
		}
		sb.WriteString(fmt.Sprintf("• %s\n", path))
	}
	if len(paths) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(paths)-maxItemsToShow))
	}

	p.printBox("EXPORTED", strings.TrimSuffix(sb.String(), "\n"))
}

func countNodes(nodes []layout.Node) int {
	total := 0
	for _, n := range nodes {
		total++
		total += countNodes(n.Stack)
		total += countNodes(n.Columns)
		total += countNodes(n.UL)
		total += countNodes(n.Spans)
		if n.Table != nil {
			for _, row := range n.Table.Body {
				total += countNodes(row)
			}
		}
	}
	return total
}
