// Package offline provides deterministic, network-free implementations of
// the search and rewrite services. They stand in for SerpAPI and Gemini
// when running without API keys or network access.
package offline
