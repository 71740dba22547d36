package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/bloom"
	"github.com/pagelens/pagelens/gemini"
	"github.com/pagelens/pagelens/goquery"
	"github.com/pagelens/pagelens/htmltomarkdown"
	pagelenshttp "github.com/pagelens/pagelens/http"
	"github.com/pagelens/pagelens/rod"
	"github.com/pagelens/pagelens/scan"
	pagelensslog "github.com/pagelens/pagelens/slog"
	"github.com/pagelens/pagelens/sqlite"
	"github.com/pagelens/pagelens/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ScanService pagelens.ScanService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGELENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ScanService = sqlite.NewScanService(m.DB)
	deps.DB = m.DB
	deps.Scans = m.ScanService
	deps.Sitemaps = pagelenshttp.NewSitemapService(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Sitemaps = pagelensslog.NewLoggingSitemapService(deps.Sitemaps, logger)
	}

	// Scanning commands need the full pipeline; read-only commands do not.
	if cmd == "scan" || (cmd == "site" && !cli.Site.Preview) {
		static := cli.Scan.Static || cli.Site.Static
		wantScenarios := cli.Scan.Scenarios || cli.Site.Scenarios

		// Kong only applies defaults for the parsed command, so the site
		// flags are zero when running "scan".
		rps := cli.Site.RPS
		if rps <= 0 {
			rps = 1
		}

		fetcher, err := newFetcher(static)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		var elements pagelens.ElementExtractor = goquery.NewExtractor()
		if cli.Verbose {
			fetcher = pagelensslog.NewLoggingFetcher(fetcher, logger)
			elements = pagelensslog.NewLoggingElementExtractor(elements, logger)
		}
		defer fetcher.Close()

		var generator pagelens.ScenarioGenerator
		if wantScenarios {
			generator, err = newGenerator(ctx, stderr)
			if err != nil {
				return err
			}
			if cli.Verbose {
				generator = pagelensslog.NewLoggingScenarioGenerator(generator, logger)
			}
		}

		deps.Scanner = &scan.Scanner{
			Fetcher:     fetcher,
			Elements:    elements,
			Content:     trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Generator:   generator,
			Scans:       m.ScanService,
			Sitemaps:    deps.Sitemaps,
			Visited:     bloom.NewFilter(visitedCapacity, visitedFPRate),
			RateLimiter: scan.NewDomainLimiter(rps),
			Concurrency: cli.Site.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for prompt budget checks before each Gemini call.
const tokenizerModel = "gemini-2.5-flash"

// Sizing for the site-scan visited filter.
const (
	visitedCapacity = 100_000
	visitedFPRate   = 0.01
)

func newFetcher(static bool) (pagelens.Fetcher, error) {
	if static {
		return pagelenshttp.NewFetcher(), nil
	}
	return rod.NewFetcher()
}

func newGenerator(ctx context.Context, stderr io.Writer) (pagelens.ScenarioGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}

	return gemini.NewGenerator(client, gemini.WithTokenCounter(tokenCounter)), nil
}

func defaultDBPath() string {
	if path := os.Getenv("PAGELENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagelens.db"
	}
	dir := filepath.Join(home, ".pagelens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagelens.db")
}
