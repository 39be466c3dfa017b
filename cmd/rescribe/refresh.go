package main

import (
	"fmt"

	"github.com/fwojciec/rescribe"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	result, err := deps.Refresher.Refresh(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescribe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Refreshed article %d: %s\n", result.ArticleID, result.Title)
	for _, u := range result.References {
		fmt.Fprintf(deps.Stdout, "  reference %s\n", u)
	}
	if result.Updated {
		fmt.Fprintln(deps.Stdout, "Storage API updated")
	} else {
		fmt.Fprintln(deps.Stdout, "Dry run, storage API not updated")
	}
	return nil
}
