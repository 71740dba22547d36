package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	s, err := deps.Scans.FindScanByID(deps.Ctx, c.ID)
	if err != nil {
		if pagelens.ErrorCode(err) == pagelens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: scan %q not found. Use 'pagelens list' to see stored scans.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if c.Elements {
		out, err := json.MarshalIndent(s.Elements, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	if c.Digest {
		if s.Digest == "" {
			fmt.Fprintf(deps.Stderr, "error: scan %q has no content digest\n", c.ID)
			return pagelens.Errorf(pagelens.ENOTFOUND, "scan %q has no content digest", c.ID)
		}
		fmt.Fprintln(deps.Stdout, s.Digest)
		return nil
	}

	if c.Scenarios {
		if s.Scenarios == "" {
			fmt.Fprintf(deps.Stderr, "error: scan %q has no scenarios. Re-scan with --scenarios to generate them.\n", c.ID)
			return pagelens.Errorf(pagelens.ENOTFOUND, "scan %q has no scenarios", c.ID)
		}
		fmt.Fprintln(deps.Stdout, s.Scenarios)
		return nil
	}

	fmt.Fprint(deps.Stdout, pagelens.FormatScan(s))
	return nil
}
