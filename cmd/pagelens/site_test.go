package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scans all discovered pages", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *pagelens.URLFilter) ([]string, error) {
				assert.Equal(t, "https://example.com", baseURL)
				return []string{
					"https://example.com/a",
					"https://example.com/b",
				}, nil
			},
		}

		var created []string
		scans := &mock.ScanService{
			CreateScanFn: func(_ context.Context, s *pagelens.Scan) error {
				created = append(created, s.URL)
				return nil
			},
		}

		scanner := testScanner(scans)
		scanner.Sitemaps = sitemaps

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Sitemaps: sitemaps,
			Scans:    scans,
			Scanner:  scanner,
		}

		cmd := &main.SiteCmd{URL: "https://example.com", Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, created, 2)
		assert.Contains(t, stdout.String(), "Found 2 URLs")
		assert.Contains(t, stdout.String(), "Scanned 2 pages")
		assert.Empty(t, stderr.String())
	})

	t.Run("preview prints URLs without scanning", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *pagelens.URLFilter) ([]string, error) {
				return []string{
					"https://example.com/a",
					"https://example.com/b",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Sitemaps: sitemaps,
		}

		cmd := &main.SiteCmd{URL: "https://example.com", Preview: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/a")
		assert.Contains(t, stdout.String(), "https://example.com/b")
		assert.NotContains(t, stdout.String(), "Scanned")
	})

	t.Run("passes compiled filters to discovery", func(t *testing.T) {
		t.Parallel()

		var gotFilter *pagelens.URLFilter
		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, filter *pagelens.URLFilter) ([]string, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Sitemaps: sitemaps,
		}

		cmd := &main.SiteCmd{
			URL:     "https://example.com",
			Preview: true,
			Filter:  []string{`/docs/`},
			Exclude: []string{`\.pdf$`},
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter)
		assert.Len(t, gotFilter.Include, 1)
		assert.Len(t, gotFilter.Exclude, 1)
		assert.True(t, gotFilter.Match("https://example.com/docs/intro"))
		assert.False(t, gotFilter.Match("https://example.com/docs/guide.pdf"))
	})

	t.Run("rejects invalid filter pattern", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.SiteCmd{URL: "https://example.com", Preview: true, Filter: []string{`[invalid`}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("reports per-page failures and continues", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *pagelens.URLFilter) ([]string, error) {
				return []string{
					"https://example.com/good",
					"https://example.com/bad",
				}, nil
			},
		}

		scans := &mock.ScanService{
			CreateScanFn: func(_ context.Context, s *pagelens.Scan) error {
				if s.URL == "https://example.com/bad" {
					return pagelens.Errorf(pagelens.EINTERNAL, "disk full")
				}
				return nil
			},
		}

		scanner := testScanner(scans)
		scanner.Sitemaps = sitemaps
		scanner.Concurrency = 1
		scanner.RetryDelays = []time.Duration{0}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Sitemaps: sitemaps,
			Scans:    scans,
			Scanner:  scanner,
		}

		cmd := &main.SiteCmd{URL: "https://example.com", Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Scanned 1 pages")
		assert.Contains(t, stdout.String(), "1 failed")
		assert.Contains(t, stderr.String(), "skip https://example.com/bad")
	})
}
