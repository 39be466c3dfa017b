package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/fs"
	"github.com/fwojciec/rescribe/gemini"
	rsgoquery "github.com/fwojciec/rescribe/goquery"
	"github.com/fwojciec/rescribe/htmltomarkdown"
	rshttp "github.com/fwojciec/rescribe/http"
	"github.com/fwojciec/rescribe/offline"
	"github.com/fwojciec/rescribe/readability"
	"github.com/fwojciec/rescribe/scrape"
	"github.com/fwojciec/rescribe/serpapi"
	rsslog "github.com/fwojciec/rescribe/slog"
	"github.com/fwojciec/rescribe/sqlite"
	"github.com/fwojciec/rescribe/trafilatura"
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
	// Database path for the local scrape archive. Set before calling Run().
	DBPath string

	// SQLite database holding the archive.
	DB *sqlite.DB
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
		kong.Name("rescribe"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rescribe --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	apiBase := os.Getenv("RESCRIBE_API_BASE")

	switch cmd {
	case "scrape":
		if err := m.wireScraper(ctx, deps, cli, apiBase, logger, stderr); err != nil {
			return err
		}
		defer m.Close()
	case "refresh":
		if err := m.wireRefresher(ctx, deps, cli, apiBase, logger, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireScraper assembles the scrape pipeline.
func (m *Main) wireScraper(ctx context.Context, deps *Dependencies, cli *CLI, apiBase string, logger *slog.Logger, stderr io.Writer) error {
	cfg := rescribe.DefaultConfig()
	cfg.APIBase = apiBase
	cfg.DryRun = cli.Scrape.DryRun
	cfg.FetchInterval = cli.Scrape.Interval
	cfg.LinkLimit = cli.Scrape.Limit
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.DryRun && cfg.APIBase == "" {
		fmt.Fprintln(stderr, "Hint: Set RESCRIBE_API_BASE to the storage API base URL, or pass --dry-run")
		return rescribe.Errorf(rescribe.ECONFIG, "RESCRIBE_API_BASE not set")
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set RESCRIBE_DB to use a different archive path")
		return fmt.Errorf("failed to open archive at %q: %w", m.DBPath, err)
	}

	fetcher := rsslog.NewLoggingFetcher(rshttp.NewFetcher(rshttp.WithTimeout(cfg.RequestTimeout)), logger)

	deps.Scraper = &scrape.Scraper{
		Fetcher:   fetcher,
		Paginator: rsgoquery.NewPaginator(),
		Collector: rsgoquery.NewCollector(),
		Extractor: scrape.NewChainExtractor(
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
			rsgoquery.NewExtractor(),
		),
		Sitemaps:    rshttp.NewSitemapService(nil),
		Articles:    rshttp.NewArticleService(cfg.APIBase, nil),
		Snapshots:   fs.NewSnapshotStore(cli.Scrape.SnapshotDir, htmltomarkdown.NewConverter()),
		Archive:     sqlite.NewArchiveService(m.DB),
		RateLimiter: scrape.NewIntervalLimiter(cfg.FetchInterval),
		RetryDelays: cfg.RetryDelays,
		LinkLimit:   cfg.LinkLimit,
		DryRun:      cfg.DryRun,
	}
	return nil
}

// wireRefresher assembles the refresh pipeline.
func (m *Main) wireRefresher(ctx context.Context, deps *Dependencies, cli *CLI, apiBase string, logger *slog.Logger, stderr io.Writer) error {
	cfg := rescribe.DefaultConfig()
	cfg.APIBase = apiBase
	cfg.Offline = cli.Refresh.Offline
	cfg.DryRun = cli.Refresh.DryRun
	cfg.FetchInterval = cli.Refresh.Interval
	cfg.ReferenceLimit = cli.Refresh.Refs
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIBase == "" {
		fmt.Fprintln(stderr, "Hint: Set RESCRIBE_API_BASE to the storage API base URL")
		return rescribe.Errorf(rescribe.ECONFIG, "RESCRIBE_API_BASE not set")
	}

	var search rescribe.SearchService
	var rewriter rescribe.Rewriter

	if cfg.Offline {
		search = offline.NewSearchService(cli.Refresh.Ref...)
		rewriter = offline.NewRewriter()
	} else {
		serpKey := os.Getenv("SERPAPI_API_KEY")
		if serpKey == "" {
			fmt.Fprintln(stderr, "Hint: Set SERPAPI_API_KEY, or pass --offline to skip the live search")
			return rescribe.Errorf(rescribe.ECONFIG, "SERPAPI_API_KEY not set")
		}
		svc, err := serpapi.NewSearchService(serpKey)
		if err != nil {
			return err
		}
		search = svc

		geminiKey := os.Getenv("GEMINI_API_KEY")
		if geminiKey == "" {
			fmt.Fprintln(stderr, "Hint: Set GEMINI_API_KEY, or pass --offline to use the templated rewrite. Get an API key at https://aistudio.google.com/apikey")
			return rescribe.Errorf(rescribe.ECONFIG, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  geminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		rewriter = gemini.NewRewriter(client)
	}

	deps.Refresher = &scrape.Refresher{
		Fetcher: rsslog.NewLoggingFetcher(rshttp.NewFetcher(rshttp.WithTimeout(cfg.RequestTimeout)), logger),
		Extractor: scrape.NewChainExtractor(
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
			rsgoquery.NewExtractor(),
		),
		Articles:       rshttp.NewArticleService(cfg.APIBase, nil),
		Search:         rsslog.NewLoggingSearchService(search, logger),
		Rewriter:       rsslog.NewLoggingRewriter(rewriter, logger),
		RateLimiter:    scrape.NewIntervalLimiter(cfg.FetchInterval),
		RetryDelays:    cfg.RetryDelays,
		ReferenceLimit: cfg.ReferenceLimit,
		DryRun:         cfg.DryRun,
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("RESCRIBE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rescribe.db"
	}
	dir := filepath.Join(home, ".rescribe")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rescribe.db")
}
