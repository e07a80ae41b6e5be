package flights

import (
	"context"
	"errors"
	"fmt"

	"github.com/FranciscoRecio/flights/internal/logger"
	"github.com/FranciscoRecio/flights/pkg/fetcher"
	"github.com/FranciscoRecio/flights/pkg/parser"
)

// fetchAndParse runs the mode state machine: pick a transport, fetch the
// page, extract offers. Under fallback mode an empty extraction escalates
// to force-fallback exactly once; the escalated flag makes the bound
// explicit instead of relying on open recursion.
func (c *Client) fetchAndParse(ctx context.Context, params fetcher.Params, mode FetchMode) (Result, error) {
	escalated := false
	for {
		page, err := c.fetchPage(ctx, params, mode)
		if err != nil {
			return Result{}, err
		}

		res, err := parser.ParseWith(page.HTML, c.parseOpts)
		if err != nil {
			if mode == FetchModeFallback && !escalated && errors.Is(err, parser.ErrNoFlights) {
				logger.Debug("extraction found no flights, escalating", "from", mode, "to", FetchModeForceFallback)
				escalated = true
				mode = FetchModeForceFallback
				continue
			}
			return Result{}, err
		}

		logger.Debug("search complete",
			"mode", mode,
			"flights", len(res.Flights),
			"price_level", res.CurrentPrice)
		return res, nil
	}
}

// fetchPage selects the transport for a mode and runs it.
func (c *Client) fetchPage(ctx context.Context, params fetcher.Params, mode FetchMode) (fetcher.Page, error) {
	switch mode {
	case FetchModeCommon:
		return c.direct.Fetch(ctx, params)

	case FetchModeFallback:
		page, err := c.direct.Fetch(ctx, params)
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			logger.Warn("direct fetch failed, using fallback transport",
				"status", statusErr.StatusCode)
			return c.remote.Fetch(ctx, params)
		}
		return page, err

	case FetchModeForceFallback:
		return c.remote.Fetch(ctx, params)

	case FetchModeLocal:
		return c.local.Fetch(ctx, params)

	default:
		return fetcher.Page{}, fmt.Errorf("unknown fetch mode: %q", mode)
	}
}
