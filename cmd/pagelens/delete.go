package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagelens.Errorf(pagelens.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Scans.DeleteScan(deps.Ctx, c.ID); err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: scan %q not found. Use 'pagelens list' to see stored scans.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted scan %q\n", c.ID)
	return nil
}
