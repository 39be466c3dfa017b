package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/rescribe"
)

// Ensure ArticleService implements rescribe.ArticleService at compile time.
var _ rescribe.ArticleService = (*ArticleService)(nil)

// ArticleService is a client for the external article storage API.
type ArticleService struct {
	client  *http.Client
	baseURL string
}

// NewArticleService creates a new ArticleService for the given API base URL
// (e.g., "http://localhost:8000/api"). If client is nil, http.DefaultClient
// is used.
func NewArticleService(baseURL string, client *http.Client) *ArticleService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ArticleService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FindLatestArticle returns the most recent article from the storage API.
// The list endpoint may respond with a pagination envelope ({"data": [...]})
// or a bare array; both shapes are accepted.
func (s *ArticleService) FindLatestArticle(ctx context.Context) (*rescribe.Article, error) {
	url := s.baseURL + "/articles?per_page=5"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EUNAVAILABLE, "list articles: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rescribe.Errorf(rescribe.EINTERNAL, "list articles: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	articles, err := decodeArticleList(body)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, rescribe.Errorf(rescribe.ENOTFOUND, "no articles found")
	}
	return articles[0], nil
}

// decodeArticleList decodes either a pagination envelope or a bare array.
func decodeArticleList(body []byte) ([]*rescribe.Article, error) {
	var envelope struct {
		Data []*rescribe.Article `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var list []*rescribe.Article
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, rescribe.Errorf(rescribe.EINTERNAL, "unexpected article list shape: %v", err)
	}
	return list, nil
}

// CreateArticle creates a new article record. The API derives the slug from
// the title server-side; creating the same title twice converges on the
// same slug.
func (s *ArticleService) CreateArticle(ctx context.Context, article *rescribe.Article) (*rescribe.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"title":   article.Title,
		"body":    article.Body,
		"excerpt": article.Excerpt,
	}
	if article.SourceURL != "" {
		payload["source_url"] = article.SourceURL
	}
	if article.PublishedAt != nil {
		payload["published_at"] = article.PublishedAt
	}

	var created rescribe.Article
	if err := s.send(ctx, http.MethodPost, s.baseURL+"/articles", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateArticle replaces the title and body of an existing record by ID.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int, upd rescribe.ArticleUpdate) (*rescribe.Article, error) {
	url := fmt.Sprintf("%s/articles/%d", s.baseURL, id)

	var updated rescribe.Article
	if err := s.send(ctx, http.MethodPut, url, upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// send issues a JSON request and decodes the JSON response into out.
func (s *ArticleService) send(ctx context.Context, method, url string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return rescribe.Errorf(rescribe.EUNAVAILABLE, "%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return rescribe.Errorf(rescribe.EINVALID, "storage API rejected payload: %s", apiMessage(body))
	case resp.StatusCode == http.StatusNotFound:
		return rescribe.Errorf(rescribe.ENOTFOUND, "article not found")
	default:
		return rescribe.Errorf(rescribe.EINTERNAL, "%s %s: HTTP %d", method, url, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return rescribe.Errorf(rescribe.EINTERNAL, "decode response: %v", err)
		}
	}
	return nil
}

// apiMessage extracts the "message" field from an API error body, falling
// back to the raw body.
func apiMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}
