package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cv-document-engine/internal/render"
)

// A4 paper dimensions in inches (210mm x 297mm).
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// DefaultTimeout bounds one browser session, launch included.
const DefaultTimeout = 60 * time.Second

// Exporter turns HTML into PDF bytes. Implemented by ChromeExporter;
// callers that batch or test against it accept the interface.
type Exporter interface {
	ExportHTML(ctx context.Context, html string) ([]byte, error)
}

// ChromeExporter prints HTML to PDF through a headless Chrome instance.
// Requires Chrome/Chromium on the system; CHROME_PATH overrides discovery.
type ChromeExporter struct {
	Timeout time.Duration
}

// NewChromeExporter creates an exporter with the default session timeout.
func NewChromeExporter() *ChromeExporter {
	return &ChromeExporter{Timeout: DefaultTimeout}
}

// ExportHTML renders the given HTML and prints it as an A4 PDF.
func (e *ChromeExporter) ExportHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := e.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	// Chrome needs a file URL; data URLs hit length limits on large CVs.
	tmpDir, err := os.MkdirTemp("", "cvdoc-")
	if err != nil {
		return nil, &ExportError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &ExportError{Message: "failed to write preview HTML", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &BrowserError{Message: "headless print failed", Cause: err}
	}
	return pdfBuf, nil
}

// ExportRequest renders the preview for a request and prints it to PDF.
func ExportRequest(ctx context.Context, e Exporter, req render.Request) ([]byte, error) {
	return e.ExportHTML(ctx, previewPage(req))
}

// previewPage wraps the preview fragment in a minimal printable page.
func previewPage(req render.Request) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><style>@page{size:A4;margin:0}body{margin:0}</style></head><body>` +
		render.Preview(req) +
		`</body></html>`
}
