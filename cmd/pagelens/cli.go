package main

import (
	"context"
	"io"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/scan"
	"github.com/pagelens/pagelens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Scans    pagelens.ScanService
	Sitemaps pagelens.SitemapService
	Scanner  *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan   ScanCmd   `cmd:"" help:"Scan a single page and store its elements"`
	Site   SiteCmd   `cmd:"" help:"Scan every page discovered from a site's sitemap"`
	List   ListCmd   `cmd:"" help:"List stored scans"`
	Show   ShowCmd   `cmd:"" help:"Show a stored scan"`
	Export ExportCmd `cmd:"" help:"Export a stored scan to files"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored scan"`

	Verbose bool `short:"v" help:"Log each pipeline stage to stderr"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL       string `arg:"" help:"Page URL to scan"`
	Static    bool   `help:"Fetch with plain HTTP instead of a headless browser"`
	Scenarios bool   `short:"s" help:"Generate Gherkin scenarios (requires GEMINI_API_KEY)"`
	JSON      bool   `help:"Print the extracted elements as JSON"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string   `arg:"" help:"Site base URL"`
	Preview     bool     `short:"p" help:"Show discovered URLs without scanning"`
	Filter      []string `short:"F" name:"filter" help:"Include URLs matching regex (repeatable)"`
	Exclude     []string `short:"X" name:"exclude" help:"Exclude URLs matching regex (repeatable)"`
	Static      bool     `help:"Fetch with plain HTTP instead of a headless browser"`
	Scenarios   bool     `short:"s" help:"Generate Gherkin scenarios (requires GEMINI_API_KEY)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scan limit"`
	RPS         float64  `name:"rps" default:"1" help:"Max requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Filter scans by exact URL"`
	Limit int    `default:"20" help:"Maximum scans to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID        string `arg:"" help:"Scan ID"`
	Elements  bool   `help:"Print the extracted elements as JSON"`
	Digest    bool   `help:"Print the Markdown content digest"`
	Scenarios bool   `help:"Print the generated scenarios"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Scan ID"`
	Dir string `short:"d" default:"." help:"Directory to export into"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Scan ID"`
	Force bool   `help:"Confirm deletion"`
}
