// Package fetcher provides the transport strategies for retrieving Google
// Flights result pages: a plain HTTP path, a local headless browser, and a
// remote browser-automation service.
package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL is the results endpoint every transport requests.
const BaseURL = "https://www.google.com/travel/flights"

const (
	// localeTag pins result pages to English so the parser's expectations
	// about label text ("Nonstop", "low") hold.
	localeTag = "en"
	// featureTag pins the page to the result layout the parser understands.
	featureTag = "EgQIABABIgA"
)

// Params carries the request parameters shared by all transports.
type Params struct {
	// TFS is the encoded search-filter token. Transports treat it as
	// opaque and never inspect or regenerate it.
	TFS string
	// Currency is an ISO currency code, empty for the page default.
	Currency string
}

// Values returns the query parameters in wire form.
func (p Params) Values() url.Values {
	return url.Values{
		"tfs":  {p.TFS},
		"hl":   {localeTag},
		"tfu":  {featureTag},
		"curr": {p.Currency},
	}
}

// URL returns the full request URL.
func (p Params) URL() string {
	return BaseURL + "?" + p.Values().Encode()
}

// Page is a fetched results document.
type Page struct {
	HTML       string
	StatusCode int
	FetchedAt  time.Time
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves a results page for the given parameters.
	Fetch(ctx context.Context, params Params) (Page, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the transport ("static",
	// "browser", "remote").
	Type() string
}

// Config holds common transport configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Chrome user agent; the plain HTTP path gets served the full results
// layout only when it looks like a real browser.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// StatusError reports a non-success response from the direct transport.
type StatusError struct {
	StatusCode int
	// Excerpt is the response body's visible text, truncated.
	Excerpt string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Excerpt)
}

const excerptLimit = 500

// bodyExcerpt condenses a response body for error messages.
func bodyExcerpt(body []byte) string {
	text := strings.Join(strings.Fields(string(body)), " ")
	if len(text) > excerptLimit {
		text = text[:excerptLimit] + "..."
	}
	return text
}
