// Package gemini implements rescribe.Rewriter using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/rescribe"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// referenceExcerptLen bounds how much of each reference's text goes into
// the prompt. Full reference bodies would dominate the context window
// without improving the rewrite.
const referenceExcerptLen = 300

// Ensure Rewriter implements rescribe.Rewriter at compile time.
var _ rescribe.Rewriter = (*Rewriter)(nil)

// Rewriter implements rescribe.Rewriter using Google Gemini.
type Rewriter struct {
	client *genai.Client
}

// NewRewriter creates a new Rewriter.
func NewRewriter(client *genai.Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite produces an improved HTML body for the article, informed by the
// reference extractions.
func (r *Rewriter) Rewrite(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (string, error) {
	if article == nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "article required")
	}
	if article.Body == "" {
		return "", rescribe.Errorf(rescribe.EINVALID, "article body required")
	}

	prompt := BuildUserPrompt(article, refs)
	config := BuildConfig()

	result, err := r.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", rescribe.Errorf(rescribe.EINTERNAL, "gemini returned nil result")
	}

	body := strings.TrimSpace(result.Text())
	if body == "" {
		return "", rescribe.Errorf(rescribe.EINTERNAL, "gemini returned empty rewrite")
	}
	return body, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert content editor. Rewrite the article you are given to be clearer and better structured, preserving every factual claim. Use the reference excerpts for tone and framing only, never copy their wording. Respond with HTML markup for the article body and nothing else. End the body with a References section listing the reference URLs.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the original article
// and the reference excerpts.
func BuildUserPrompt(article *rescribe.Article, refs []*rescribe.ReferenceArticle) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", article.Title)
	fmt.Fprintf(&sb, "<body>%s</body>\n", article.Body)
	sb.WriteString("</article>\n\n")

	if len(refs) > 0 {
		sb.WriteString("<references>\n")
		for i, ref := range refs {
			sb.WriteString("<reference>\n")
			fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
			fmt.Fprintf(&sb, "<title>%s</title>\n", ref.Title)
			fmt.Fprintf(&sb, "<url>%s</url>\n", ref.URL)
			fmt.Fprintf(&sb, "<excerpt>%s</excerpt>\n", excerpt(ref.Text))
			sb.WriteString("</reference>\n")
		}
		sb.WriteString("</references>\n\n")
	}

	sb.WriteString("Rewrite the article above.")
	return sb.String()
}

func excerpt(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= referenceExcerptLen {
		return string(runes)
	}
	return string(runes[:referenceExcerptLen])
}
