package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	s, err := deps.Scanner.ScanURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if c.JSON {
		out, err := json.MarshalIndent(s.Elements, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	fmt.Fprint(deps.Stdout, pagelens.FormatScan(s))
	fmt.Fprintf(deps.Stdout, "Saved scan %s (%d elements)\n", s.ID, s.Elements.Total())
	return nil
}
