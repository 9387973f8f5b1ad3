package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-document-engine/internal/render"
	"github.com/jonathan/cv-document-engine/internal/types"
)

// fakeExporter records calls and returns canned bytes without a browser.
type fakeExporter struct {
	calls atomic.Int32
	fail  bool
}

func (f *fakeExporter) ExportHTML(ctx context.Context, html string) ([]byte, error) {
	f.calls.Add(1)
	if f.fail {
		return nil, &BrowserError{Message: "no browser in tests"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte("%PDF-stub " + html[:20]), nil
}

func namedItem(name string) BatchItem {
	return BatchItem{
		Name: name,
		Request: render.Request{
			Profile: &types.Profile{FullName: name},
		},
	}
}

func TestExportBatch_WritesEveryItem(t *testing.T) {
	outDir := t.TempDir()
	fake := &fakeExporter{}

	items := []BatchItem{namedItem("Jane Doe"), namedItem("John Smith"), namedItem("Ada Lovelace")}
	results, err := ExportBatch(context.Background(), fake, items, outDir, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int32(3), fake.calls.Load())

	for _, res := range results {
		assert.FileExists(t, res.Path)
		data, err := os.ReadFile(res.Path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF-stub"))
	}
}

func TestExportBatch_EmptyInput(t *testing.T) {
	results, err := ExportBatch(context.Background(), &fakeExporter{}, nil, t.TempDir(), 1)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestExportBatch_FailurePropagates(t *testing.T) {
	fake := &fakeExporter{fail: true}

	_, err := ExportBatch(context.Background(), fake, []BatchItem{namedItem("Jane Doe")}, t.TempDir(), 1)
	require.Error(t, err)

	var be *BrowserError
	assert.True(t, errors.As(err, &be))
	assert.Contains(t, err.Error(), "Jane Doe")
}

func TestExportBatch_CreatesOutDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := ExportBatch(context.Background(), &fakeExporter{}, []BatchItem{namedItem("Jane Doe")}, outDir, 1)
	require.NoError(t, err)
	assert.DirExists(t, outDir)
}

func TestItemFilename_NamedItem(t *testing.T) {
	name := ItemFilename(namedItem("Jane Doe"))
	assert.Regexp(t, regexp.MustCompile(`^jane-doe-[0-9a-f]{8}\.pdf$`), name)
}

func TestItemFilename_FallsBackToProfile(t *testing.T) {
	item := BatchItem{Request: render.Request{Profile: &types.Profile{FullName: "Ada Lovelace"}}}
	assert.Regexp(t, regexp.MustCompile(`^ada-lovelace-[0-9a-f]{8}\.pdf$`), ItemFilename(item))
}

func TestItemFilename_AnonymousItem(t *testing.T) {
	name := ItemFilename(BatchItem{})
	assert.True(t, strings.HasPrefix(name, "cv-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestItemFilename_Unique(t *testing.T) {
	item := namedItem("Jane Doe")
	assert.NotEqual(t, ItemFilename(item), ItemFilename(item))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Doe", "jane-doe"},
		{"  O'Brien, Pat  ", "obrien-pat"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug(tt.in), "slug(%q)", tt.in)
	}
}

func TestPreviewPage_WrapsFragment(t *testing.T) {
	page := previewPage(render.Request{Profile: &types.Profile{FullName: "Jane Doe"}})
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `class="cv-preview"`)
	assert.Contains(t, page, "Jane Doe")
}
