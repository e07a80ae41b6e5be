package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/FranciscoRecio/flights/internal/logger"
)

// Static is the direct transport: a plain HTTP fetch via Colly. It is the
// cheapest path and the only one that reports response status codes.
type Static struct {
	config Config
}

// NewStatic creates the direct transport.
func NewStatic(cfg Config) *Static {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Static{config: cfg}
}

// Fetch retrieves a results page over plain HTTP. A non-success status
// becomes a *StatusError carrying a body excerpt.
func (f *Static) Fetch(_ context.Context, params Params) (Page, error) {
	page := Page{FetchedAt: time.Now()}

	// A fresh collector per request; no state is shared between searches.
	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		page.StatusCode = r.StatusCode
		page.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			page.StatusCode = r.StatusCode
			fetchErr = &StatusError{StatusCode: r.StatusCode, Excerpt: bodyExcerpt(r.Body)}
			return
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	requestURL := params.URL()
	logger.Debug("static fetch starting", "url", requestURL)

	if err := c.Visit(requestURL); err != nil && fetchErr == nil {
		return page, fmt.Errorf("failed to visit results page: %w", err)
	}
	if fetchErr != nil {
		return page, fetchErr
	}
	if page.StatusCode != http.StatusOK {
		return page, &StatusError{StatusCode: page.StatusCode, Excerpt: bodyExcerpt([]byte(page.HTML))}
	}

	logger.Debug("static fetch complete", "status", page.StatusCode, "html_size", len(page.HTML))
	return page, nil
}

// Close releases resources.
func (f *Static) Close() error {
	return nil
}

// Type returns the transport type.
func (f *Static) Type() string {
	return "static"
}
