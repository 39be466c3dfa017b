// Package serpapi implements rescribe.SearchService using the SerpAPI
// Google search endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/rescribe"
)

// DefaultBaseURL is the production SerpAPI endpoint.
const DefaultBaseURL = "https://serpapi.com"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 15 * time.Second

// Ensure SearchService implements rescribe.SearchService at compile time.
var _ rescribe.SearchService = (*SearchService)(nil)

// SearchService implements rescribe.SearchService using SerpAPI.
type SearchService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures a SearchService.
type Option func(*SearchService)

// WithBaseURL overrides the SerpAPI endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(s *SearchService) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *SearchService) {
		s.client = client
	}
}

// NewSearchService creates a new SearchService. The API key is required.
func NewSearchService(apiKey string, opts ...Option) (*SearchService, error) {
	if apiKey == "" {
		return nil, rescribe.Errorf(rescribe.ECONFIG, "SerpAPI key required")
	}
	s := &SearchService{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type searchResponse struct {
	OrganicResults []struct {
		Link     string `json:"link"`
		Position int    `json:"position"`
	} `json:"organic_results"`
}

// FindReferences queries SerpAPI for topic and returns up to limit organic
// results, excluding any link that contains excludeHost.
func (s *SearchService) FindReferences(ctx context.Context, topic string, excludeHost string, limit int) ([]rescribe.Reference, error) {
	if topic == "" {
		return nil, rescribe.Errorf(rescribe.EINVALID, "search topic required")
	}
	if limit <= 0 {
		return []rescribe.Reference{}, nil
	}

	q := url.Values{}
	q.Set("engine", "google")
	q.Set("q", topic)
	q.Set("api_key", s.apiKey)
	reqURL := fmt.Sprintf("%s/search.json?%s", s.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EUNAVAILABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rescribe.Errorf(rescribe.EUNAVAILABLE, "search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, rescribe.Errorf(rescribe.EINTERNAL, "decoding search response: %v", err)
	}

	refs := []rescribe.Reference{}
	for _, result := range body.OrganicResults {
		if result.Link == "" {
			continue
		}
		if excludeHost != "" && strings.Contains(result.Link, excludeHost) {
			continue
		}
		refs = append(refs, rescribe.Reference{URL: result.Link, Rank: len(refs) + 1})
		if len(refs) == limit {
			break
		}
	}
	return refs, nil
}
