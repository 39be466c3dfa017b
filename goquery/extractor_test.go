package goquery_test

import (
	"testing"

	"github.com/fwojciec/rescribe"
	rsgoquery "github.com/fwojciec/rescribe/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers the article container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Why Chatbots Fail</h1>
<nav><a href="/">Home</a></nav>
<article><p>Chatbots fail for three reasons.</p><p>Here they are.</p></article>
</body></html>`

		e := rsgoquery.NewExtractor()
		result, err := e.Extract(html, "https://blog.example.com/blog/why-chatbots-fail")

		require.NoError(t, err)
		assert.Equal(t, "Why Chatbots Fail", result.Title)
		assert.Contains(t, result.ContentHTML, "Chatbots fail for three reasons.")
		assert.NotContains(t, result.ContentHTML, "Home")
		assert.Contains(t, result.Text, "Chatbots fail for three reasons.")
	})

	t.Run("walks the selector priority list", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Title Here</h1>
<div class="entry-content"><p>Entry content body.</p></div>
</body></html>`

		e := rsgoquery.NewExtractor()
		result, err := e.Extract(html, "https://blog.example.com/post")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Entry content body.")
	})

	t.Run("joins paragraphs when no container matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Loose Paragraphs</h1>
<p>First paragraph.</p>
<p>Second paragraph.</p>
</body></html>`

		e := rsgoquery.NewExtractor()
		result, err := e.Extract(html, "https://blog.example.com/post")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "First paragraph.")
		assert.Contains(t, result.ContentHTML, "Second paragraph.")
		assert.Contains(t, result.ContentHTML, "\n\n")
	})

	t.Run("missing title reports extraction failure", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>Body but no heading.</p></article></body></html>`

		e := rsgoquery.NewExtractor()
		_, err := e.Extract(html, "https://blog.example.com/post")

		require.Error(t, err)
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
	})

	t.Run("missing body reports extraction failure", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Heading but no body</h1></body></html>`

		e := rsgoquery.NewExtractor()
		_, err := e.Extract(html, "https://blog.example.com/post")

		require.Error(t, err)
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		e := rsgoquery.NewExtractor()
		_, err := e.Extract("", "https://blog.example.com/post")

		require.Error(t, err)
		assert.Equal(t, rescribe.EINVALID, rescribe.ErrorCode(err))
	})
}
