// Package rescribe provides a CLI-based blog article pipeline. It discovers
// article URLs on a paginated listing page, extracts clean article content
// from arbitrary HTML, optionally enriches an article by gathering competing
// pages and producing an LLM rewrite, and publishes results to an external
// article storage API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, gemini/).
package rescribe
