package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/rescribe/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scraper   *scrape.Scraper
	Refresher *scrape.Refresher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape articles from a blog listing and publish them"`
	Refresh RefreshCmd `cmd:"" help:"Rewrite the latest stored article using external references"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string        `arg:"" help:"Blog listing URL"`
	Limit       int           `short:"n" default:"5" help:"Maximum articles to scrape"`
	Interval    time.Duration `default:"1200ms" help:"Minimum pause between fetches to the same domain"`
	SnapshotDir string        `default:"snapshots" help:"Directory for run snapshots"`
	DryRun      bool          `help:"Scrape without writing to the storage API"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Refs     int           `default:"2" help:"Maximum reference pages to gather"`
	Interval time.Duration `default:"1200ms" help:"Minimum pause between fetches to the same domain"`
	Offline  bool          `help:"Use the deterministic local search and rewrite services"`
	Ref      []string      `help:"Reference URL for offline mode (repeatable)"`
	DryRun   bool          `help:"Produce the rewrite without updating the storage API"`
}
