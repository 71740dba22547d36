package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	s, err := deps.Scans.FindScanByID(deps.Ctx, c.ID)
	if err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: scan %q not found. Use 'pagelens list' to see stored scans.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	dir, err := fs.NewExporter(c.Dir).ExportScan(s)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported scan %s to %s\n", s.ID, dir)
	return nil
}
