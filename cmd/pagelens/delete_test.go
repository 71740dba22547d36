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

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes scan with force", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		scans := &mock.ScanService{
			DeleteScanFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		cmd := &main.DeleteCmd{ID: "scan-1", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "scan-1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted scan "scan-1"`)
	})

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		deleteCalled := false
		scans := &mock.ScanService{
			DeleteScanFn: func(_ context.Context, _ string) error {
				deleteCalled = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scans:  scans,
		}

		cmd := &main.DeleteCmd{ID: "scan-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
		assert.False(t, deleteCalled)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("unknown ID suggests list command", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			DeleteScanFn: func(_ context.Context, _ string) error {
				return pagelens.Errorf(pagelens.ENOTFOUND, "scan not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scans:  scans,
		}

		cmd := &main.DeleteCmd{ID: "missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "pagelens list")
	})
}
