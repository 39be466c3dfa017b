package gemini_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes article title and body", func(t *testing.T) {
		t.Parallel()

		article := &rescribe.Article{
			Title: "Why Chatbots Fail",
			Body:  "<p>Chatbots fail for three reasons.</p>",
		}

		prompt := gemini.BuildUserPrompt(article, nil)

		assert.Contains(t, prompt, "<title>Why Chatbots Fail</title>")
		assert.Contains(t, prompt, "<body><p>Chatbots fail for three reasons.</p></body>")
		assert.NotContains(t, prompt, "<references>")
	})

	t.Run("includes indexed references with excerpts", func(t *testing.T) {
		t.Parallel()

		article := &rescribe.Article{Title: "T", Body: "B"}
		refs := []*rescribe.ReferenceArticle{
			{URL: "https://a.example.com/post", Title: "First Ref", Text: "alpha text"},
			{URL: "https://b.example.com/post", Title: "Second Ref", Text: "beta text"},
		}

		prompt := gemini.BuildUserPrompt(article, refs)

		assert.Contains(t, prompt, "<index>1</index>")
		assert.Contains(t, prompt, "<index>2</index>")
		assert.Contains(t, prompt, "<url>https://a.example.com/post</url>")
		assert.Contains(t, prompt, "<url>https://b.example.com/post</url>")
		assert.Contains(t, prompt, "<excerpt>alpha text</excerpt>")
	})

	t.Run("truncates long reference text", func(t *testing.T) {
		t.Parallel()

		article := &rescribe.Article{Title: "T", Body: "B"}
		refs := []*rescribe.ReferenceArticle{
			{URL: "https://a.example.com", Title: "Long", Text: strings.Repeat("x", 1000)},
		}

		prompt := gemini.BuildUserPrompt(article, refs)

		assert.Contains(t, prompt, "<excerpt>"+strings.Repeat("x", 300)+"</excerpt>")
		assert.NotContains(t, prompt, strings.Repeat("x", 301))
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "References section")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 0.001)
}
