package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedScan() *pagelens.Scan {
	return &pagelens.Scan{
		ID:        "scan-1",
		URL:       "https://example.com/pricing",
		Title:     "Pricing",
		Digest:    "# Pricing\n\nPlans start at $10.",
		Elements:  testElements(),
		Scenarios: "Feature: Pricing page",
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints scan summary", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScanByIDFn: func(_ context.Context, id string) (*pagelens.Scan, error) {
				assert.Equal(t, "scan-1", id)
				return storedScan(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		cmd := &main.ShowCmd{ID: "scan-1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Scan: Pricing")
		assert.Contains(t, output, "headings: 1")
		assert.Contains(t, output, "links: 2")
	})

	t.Run("elements flag prints JSON", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScanByIDFn: func(_ context.Context, _ string) (*pagelens.Scan, error) {
				return storedScan(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		cmd := &main.ShowCmd{ID: "scan-1", Elements: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"headings"`)
		assert.Contains(t, stdout.String(), `"Welcome"`)
	})

	t.Run("digest flag prints digest", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScanByIDFn: func(_ context.Context, _ string) (*pagelens.Scan, error) {
				return storedScan(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		cmd := &main.ShowCmd{ID: "scan-1", Digest: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Plans start at $10.")
	})

	t.Run("scenarios flag errors when none stored", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScanByIDFn: func(_ context.Context, _ string) (*pagelens.Scan, error) {
				s := storedScan()
				s.Scenarios = ""
				return s, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scans:  scans,
		}

		cmd := &main.ShowCmd{ID: "scan-1", Scenarios: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelens.ENOTFOUND, pagelens.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--scenarios")
	})

	t.Run("unknown ID suggests list command", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScanByIDFn: func(_ context.Context, id string) (*pagelens.Scan, error) {
				return nil, pagelens.Errorf(pagelens.ENOTFOUND, "scan not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scans:  scans,
		}

		cmd := &main.ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "pagelens list")
	})
}
