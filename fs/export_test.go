package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportScan() *pagelens.Scan {
	return &pagelens.Scan{
		ID:    "scan-1",
		URL:   "https://example.com/docs/api",
		Title: "API Reference",
		Elements: &pagelens.PageElements{
			Headings: []*pagelens.Element{
				{Tag: "h1", Text: "API Reference"},
			},
		},
		Digest:    "# API Reference\n\nEndpoints and auth.",
		Scenarios: "Feature: API docs page",
		CreatedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}
}

func TestExporter_ExportScan(t *testing.T) {
	t.Parallel()

	t.Run("writes elements digest and scenarios", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		exporter := fs.NewExporter(baseDir)

		dir, err := exporter.ExportScan(exportScan())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "example.com-docs-api"), dir)

		elements, err := os.ReadFile(filepath.Join(dir, "elements.json"))
		require.NoError(t, err)
		assert.Contains(t, string(elements), `"headings"`)
		assert.Contains(t, string(elements), `"API Reference"`)

		digest, err := os.ReadFile(filepath.Join(dir, "digest.md"))
		require.NoError(t, err)
		assert.Contains(t, string(digest), "source: https://example.com/docs/api")
		assert.Contains(t, string(digest), "title: API Reference")
		assert.Contains(t, string(digest), "scanned: 2026-08-28")
		assert.Contains(t, string(digest), "Endpoints and auth.")

		scenarios, err := os.ReadFile(filepath.Join(dir, "scenarios.feature"))
		require.NoError(t, err)
		assert.Equal(t, "Feature: API docs page", string(scenarios))
	})

	t.Run("omits digest and scenario files when empty", func(t *testing.T) {
		t.Parallel()

		scan := exportScan()
		scan.Digest = ""
		scan.Scenarios = ""

		exporter := fs.NewExporter(t.TempDir())
		dir, err := exporter.ExportScan(scan)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "elements.json"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "digest.md"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, "scenarios.feature"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("replaces a previous export atomically", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir())

		first := exportScan()
		dir, err := exporter.ExportScan(first)
		require.NoError(t, err)

		second := exportScan()
		second.Scenarios = ""
		dir2, err := exporter.ExportScan(second)
		require.NoError(t, err)
		assert.Equal(t, dir, dir2)

		// Stale files from the first export do not survive
		_, err = os.Stat(filepath.Join(dir, "scenarios.feature"))
		assert.True(t, os.IsNotExist(err))
		// No staging directory left behind
		_, err = os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects invalid scan", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir())
		_, err := exporter.ExportScan(&pagelens.Scan{URL: "https://example.com"})
		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}

func TestURLToSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root URL", "https://example.com", "example.com"},
		{"root with trailing slash", "https://example.com/", "example.com"},
		{"nested path", "https://example.com/docs/api/users", "example.com-docs-api-users"},
		{"trailing slash on path", "https://example.com/docs/", "example.com-docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToSlug(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := fs.URLToSlug("/relative/path")
		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})
}
