package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-document-engine/internal/render"
)

// DefaultConcurrency is the number of browser sessions a batch runs at once.
const DefaultConcurrency = 2

// BatchItem is one request in a batch export. Name is optional; unnamed
// items get a generated filename.
type BatchItem struct {
	Name    string
	Request render.Request
}

// BatchResult records where one item landed.
type BatchResult struct {
	Name string
	Path string
}

// ExportBatch renders every item to a PDF under outDir, at most concurrency
// sessions at a time. The first failure cancels the remaining items.
func ExportBatch(ctx context.Context, e Exporter, items []BatchItem, outDir string, concurrency int) ([]BatchResult, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, &ExportError{Message: "failed to create output directory", Cause: err}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]BatchResult, len(items))
	var mu sync.Mutex

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			pdf, err := ExportRequest(gCtx, e, item.Request)
			if err != nil {
				return fmt.Errorf("item %q: %w", itemLabel(item), err)
			}

			path := filepath.Join(outDir, ItemFilename(item))
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return &ExportError{Message: "failed to write " + path, Cause: err}
			}

			mu.Lock()
			results[i] = BatchResult{Name: itemLabel(item), Path: path}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ItemFilename derives a safe, unique PDF filename for an item. Named items
// keep their slug; unnamed items get a random identifier.
func ItemFilename(item BatchItem) string {
	name := slug(item.Name)
	if name == "" {
		name = slug(ownerOf(item.Request))
	}
	if name == "" {
		return "cv-" + uuid.NewString() + ".pdf"
	}
	return name + "-" + uuid.NewString()[:8] + ".pdf"
}

func itemLabel(item BatchItem) string {
	if item.Name != "" {
		return item.Name
	}
	if owner := ownerOf(item.Request); owner != "" {
		return owner
	}
	return "(unnamed)"
}

func ownerOf(req render.Request) string {
	if req.Profile == nil {
		return ""
	}
	return req.Profile.FullName
}

// slug lowercases and strips a name down to filename-safe characters.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
