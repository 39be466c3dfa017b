package rescribe

// ExtractResult holds the extracted content from an article page.
// A successful extraction always has a non-empty Title and ContentHTML;
// extractors that cannot find both report an error instead of returning
// partially empty fields.
type ExtractResult struct {
	// Title is the article title.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Text is the plain text of the main content, trimmed.
	Text string
}

// Extractor extracts main article content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The pageURL is used to resolve relative links inside the content.
	// Returns ENOTFOUND if no title or no content could be located.
	Extract(rawHTML string, pageURL string) (*ExtractResult, error)
}
