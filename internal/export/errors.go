// Package export converts rendered previews into PDF files using a headless
// Chrome instance, and fans batches of requests out across workers.
package export

import "fmt"

// ExportError represents a general export failure
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// BrowserError represents a failure launching or driving the headless browser
type BrowserError struct {
	Message string
	Cause   error
}

func (e *BrowserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("browser error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("browser error: %s", e.Message)
}

func (e *BrowserError) Unwrap() error {
	return e.Cause
}
