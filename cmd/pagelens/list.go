package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagelens.ScanFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	scans, err := deps.Scans.FindScans(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans found. Use 'pagelens scan' to create one.")
		return nil
	}

	for _, s := range scans {
		title := s.Title
		if title == "" {
			title = s.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d elements  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Elements.Total(), title)
	}

	return nil
}
