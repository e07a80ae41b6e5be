package flights

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/FranciscoRecio/flights/internal/logger"
	"github.com/FranciscoRecio/flights/internal/ranking"
)

// ErrDateRange matches date-window validation failures.
var ErrDateRange = errors.New("invalid date range")

// maxRangeDays is the largest span between start and end dates, so at most
// six calendar days are searched.
const maxRangeDays = 5

const dateLayout = "2006-01-02"

// GetBestFlightsAcrossDates searches each day in the inclusive window and
// merges the per-day winners into one cross-date top list. The result's
// price level is reconciled optimistically: "low" if any day reported low,
// then "typical", then "high". Any single day's failure aborts the whole
// range.
func (c *Client) GetBestFlightsAcrossDates(ctx context.Context, opts DateRangeOptions) (Result, error) {
	if opts.FetchMode == "" {
		opts.FetchMode = FetchModeCommon
	}
	if opts.SortMethod == "" {
		opts.SortMethod = SortBest
	}
	if err := c.validate.Struct(opts); err != nil {
		return Result{}, fmt.Errorf("invalid date-range request: %w", err)
	}
	if err := validatePassengers(opts.Passengers); err != nil {
		return Result{}, err
	}

	start, err := time.Parse(dateLayout, opts.StartDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: bad start date: %v", ErrDateRange, err)
	}
	end, err := time.Parse(dateLayout, opts.EndDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: bad end date: %v", ErrDateRange, err)
	}

	span := int(end.Sub(start).Hours() / 24)
	if span < 0 {
		return Result{}, fmt.Errorf("%w: end date %s is before start date %s", ErrDateRange, opts.EndDate, opts.StartDate)
	}
	if span > maxRangeDays {
		return Result{}, fmt.Errorf("%w: %s to %s spans %d days, maximum is %d", ErrDateRange, opts.StartDate, opts.EndDate, span, maxRangeDays)
	}

	var all []Flight
	var levels []string

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		logger.Debug("searching date", "date", date, "from", opts.FromAirport, "to", opts.ToAirport)

		res, err := c.GetTopSortedFlights(ctx, SearchOptions{
			Legs: []FlightData{{
				Date:        date,
				FromAirport: opts.FromAirport,
				ToAirport:   opts.ToAirport,
			}},
			Trip:       opts.Trip,
			Passengers: opts.Passengers,
			Seat:       opts.Seat,
			FetchMode:  opts.FetchMode,
			MaxStops:   opts.MaxStops,
			Currency:   opts.Currency,
		}, opts.SortMethod)
		if err != nil {
			return Result{}, fmt.Errorf("search for %s: %w", date, err)
		}

		levels = append(levels, res.CurrentPrice)
		for i := range res.Flights {
			res.Flights[i].Date = date
		}
		all = append(all, res.Flights...)
	}

	return Result{
		CurrentPrice: reconcilePriceLevel(levels),
		Flights:      ranking.Top(all, opts.SortMethod, c.limit),
	}, nil
}

// reconcilePriceLevel favors the cheapest label any day reported: one low
// day dominates the cross-date summary even when other days were pricier.
func reconcilePriceLevel(levels []string) string {
	for _, want := range []string{"low", "typical"} {
		if slices.Contains(levels, want) {
			return want
		}
	}
	return "high"
}
