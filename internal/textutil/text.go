// Package textutil provides the pure text, date, color and grouping helpers
// shared by every section builder and template renderer.
package textutil

import (
	"html"
	"regexp"
	"strings"
)

// Precompiled patterns for markdown stripping.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	bulletPattern = regexp.MustCompile(`(?m)^([ \t]*)[-•][ \t]+`)
)

// DecodeHTMLEntities converts HTML-encoded entities to their literal
// characters. It is a pure decode with no shared state and no document
// environment; the result is plain text, never markup to be executed.
func DecodeHTMLEntities(text string) string {
	if text == "" {
		return ""
	}
	return html.UnescapeString(text)
}

// StripMarkdown removes light markdown formatting from free text: **bold**
// and *italic* markers are dropped, backticks removed, and leading "-" or "•"
// bullet markers normalized to a single "• " form. Line breaks are preserved.
// The function is idempotent: applying it to its own output is a no-op.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}
	out := boldPattern.ReplaceAllString(text, "$1")
	out = italicPattern.ReplaceAllString(out, "$1")
	out = strings.ReplaceAll(out, "`", "")
	out = bulletPattern.ReplaceAllString(out, "${1}• ")
	return out
}

// CleanText applies entity decoding and markdown stripping, the combination
// every free-text field goes through before emission.
func CleanText(text string) string {
	return StripMarkdown(DecodeHTMLEntities(text))
}

// HasVisibleText reports whether text still contains anything displayable
// after entity decoding, markdown stripping and trimming. Builders use it to
// suppress empty fragments rather than emit blank headings or paragraphs.
func HasVisibleText(text string) bool {
	return strings.TrimSpace(CleanText(text)) != ""
}

// Truncate shortens text to at most max runes, appending an ellipsis when
// anything was cut. Non-positive max returns the text unchanged.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimRight(string(runes[:max]), " ") + "..."
}
