package main

import (
	"fmt"

	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d article links\n", event.Total)
		case scrape.ProgressScraped:
			fmt.Fprintf(deps.Stdout, "  scraped %s\n", event.URL)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skipped %s (already archived)\n", event.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", event.URL, rescribe.ErrorMessage(event.Error))
		case scrape.ProgressPublished:
			if event.Ack != "" {
				fmt.Fprintf(deps.Stdout, "  would publish %s (ack %s)\n", event.URL, event.Ack)
			} else {
				fmt.Fprintf(deps.Stdout, "  published %s\n", event.URL)
			}
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescribe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d found, %d scraped, %d skipped, %d failed, %d published\n",
		result.Found, result.Scraped, result.Skipped, result.Failed, result.Published)
	if result.SnapshotPath != "" {
		fmt.Fprintf(deps.Stdout, "Snapshot: %s\n", result.SnapshotPath)
	}
	return nil
}
