package flights

import (
	"fmt"
)

// SearchOptions describes a single search request.
type SearchOptions struct {
	// Legs are the origin-destination-date triples to search. Round-trip
	// requests carry two legs, multi-city up to five.
	Legs []FlightData `validate:"required,min=1,max=5,dive"`

	Trip       TripType   `validate:"oneof=round-trip one-way multi-city"`
	Passengers Passengers `validate:"required"`
	Seat       Seat       `validate:"oneof=economy premium-economy business first"`

	// FetchMode defaults to common.
	FetchMode FetchMode `validate:"omitempty,oneof=common fallback force-fallback local"`

	// MaxStops constrains every leg when set.
	MaxStops *int `validate:"omitempty,gte=0"`

	// Currency is an ISO code, empty for the page default.
	Currency string `validate:"omitempty,len=3,alpha"`
}

// DateRangeOptions describes a search across an inclusive window of
// departure days for a single route.
type DateRangeOptions struct {
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`

	FromAirport string `validate:"required,len=3,alpha"`
	ToAirport   string `validate:"required,len=3,alpha"`

	Trip       TripType   `validate:"oneof=round-trip one-way multi-city"`
	Passengers Passengers `validate:"required"`
	Seat       Seat       `validate:"oneof=economy premium-economy business first"`
	FetchMode  FetchMode  `validate:"omitempty,oneof=common fallback force-fallback local"`
	MaxStops   *int       `validate:"omitempty,gte=0"`
	Currency   string     `validate:"omitempty,len=3,alpha"`

	// SortMethod defaults to best.
	SortMethod SortMethod `validate:"omitempty,oneof=best price duration"`
}

// maxParty is the largest booking party the search surface accepts.
const maxParty = 9

func (c *Client) validateSearch(opts *SearchOptions) error {
	if opts.FetchMode == "" {
		opts.FetchMode = FetchModeCommon
	}
	if err := c.validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid search request: %w", err)
	}
	return validatePassengers(opts.Passengers)
}

func validatePassengers(p Passengers) error {
	if total := p.Total(); total > maxParty {
		return fmt.Errorf("invalid search request: %d passengers exceeds the maximum of %d", total, maxParty)
	}
	if p.InfantsOnLap > p.Adults {
		return fmt.Errorf("invalid search request: each infant on lap needs an adult (%d infants, %d adults)",
			p.InfantsOnLap, p.Adults)
	}
	return nil
}
