// Package flights searches Google Flights and returns normalized flight
// offers. It is the public entry point: it builds the search-filter token,
// orchestrates the fetch transports, extracts offers from the returned
// markup, and ranks them.
package flights

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/FranciscoRecio/flights/internal/ranking"
	"github.com/FranciscoRecio/flights/pkg/fetcher"
	"github.com/FranciscoRecio/flights/pkg/parser"
	"github.com/FranciscoRecio/flights/pkg/schema"
	"github.com/FranciscoRecio/flights/pkg/tfs"
)

// Re-exported value types so callers only import this package.
type (
	Flight     = schema.Flight
	Result     = schema.Result
	Stops      = schema.Stops
	FlightData = schema.FlightData
	Passengers = schema.Passengers
	FetchMode  = schema.FetchMode
	SortMethod = schema.SortMethod
	TripType   = schema.TripType
	Seat       = schema.Seat
)

const (
	StopsUnknown = schema.StopsUnknown

	FetchModeCommon        = schema.FetchModeCommon
	FetchModeFallback      = schema.FetchModeFallback
	FetchModeForceFallback = schema.FetchModeForceFallback
	FetchModeLocal         = schema.FetchModeLocal

	SortBest     = schema.SortBest
	SortPrice    = schema.SortPrice
	SortDuration = schema.SortDuration

	TripRoundTrip = schema.TripRoundTrip
	TripOneWay    = schema.TripOneWay
	TripMultiCity = schema.TripMultiCity

	SeatEconomy        = schema.SeatEconomy
	SeatPremiumEconomy = schema.SeatPremiumEconomy
	SeatBusiness       = schema.SeatBusiness
	SeatFirst          = schema.SeatFirst
)

// ErrNoFlights matches extraction failures from any search operation.
var ErrNoFlights = parser.ErrNoFlights

// Client runs flight searches. It holds one instance of each transport;
// construct once and reuse, then Close to release browser resources.
type Client struct {
	direct fetcher.Fetcher
	remote fetcher.Fetcher
	local  fetcher.Fetcher

	limit     int
	parseOpts parser.Options
	validate  *validator.Validate
}

// New creates a Client.
func New(opts ...Option) *Client {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	transport := fetcher.Config{UserAgent: cfg.UserAgent, Timeout: cfg.Timeout}

	c := &Client{
		direct:    cfg.Direct,
		remote:    cfg.Remote,
		local:     cfg.Local,
		limit:     cfg.Limit,
		parseOpts: parser.Options{KeepSummaryRow: cfg.KeepSummaryRow},
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
	if c.direct == nil {
		c.direct = fetcher.NewStatic(transport)
	}
	if c.remote == nil {
		c.remote = fetcher.NewRemote(cfg.SolverURL)
	}
	if c.local == nil {
		c.local = fetcher.NewBrowser(transport)
	}
	return c
}

// GetFlights searches a single query and returns every extracted offer in
// page order.
func (c *Client) GetFlights(ctx context.Context, opts SearchOptions) (Result, error) {
	if err := c.validateSearch(&opts); err != nil {
		return Result{}, err
	}

	token, err := tfs.TFS{
		Legs:       opts.Legs,
		Trip:       opts.Trip,
		Passengers: opts.Passengers,
		Seat:       opts.Seat,
		MaxStops:   opts.MaxStops,
	}.Encode()
	if err != nil {
		return Result{}, err
	}

	return c.fetchAndParse(ctx, fetcher.Params{TFS: token, Currency: opts.Currency}, opts.FetchMode)
}

// GetFlightsFromFilter searches with a pre-encoded filter token, for
// callers that build or capture tokens themselves.
func (c *Client) GetFlightsFromFilter(ctx context.Context, token, currency string, mode FetchMode) (Result, error) {
	if mode == "" {
		mode = FetchModeCommon
	}
	return c.fetchAndParse(ctx, fetcher.Params{TFS: token, Currency: currency}, mode)
}

// GetTopSortedFlights searches a single query and returns the top offers
// per stop-count group under the given sort policy.
func (c *Client) GetTopSortedFlights(ctx context.Context, opts SearchOptions, method SortMethod) (Result, error) {
	if method == "" {
		method = SortBest
	}

	res, err := c.GetFlights(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	res.Flights = ranking.TopByStops(res.Flights, method, c.limit)
	return res, nil
}

// Close releases all transport resources.
func (c *Client) Close() error {
	return errors.Join(c.direct.Close(), c.remote.Close(), c.local.Close())
}
