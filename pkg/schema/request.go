package schema

import "fmt"

// FetchMode selects the transport strategy for retrieving a results page.
type FetchMode string

const (
	// FetchModeCommon uses the direct HTTP transport only and fails hard
	// on a non-success response.
	FetchModeCommon FetchMode = "common"
	// FetchModeFallback tries the direct transport first and escalates to
	// the remote browser transport on failure or empty extraction.
	FetchModeFallback FetchMode = "fallback"
	// FetchModeForceFallback always uses the remote browser transport.
	FetchModeForceFallback FetchMode = "force-fallback"
	// FetchModeLocal always uses the local browser transport.
	FetchModeLocal FetchMode = "local"
)

// ParseFetchMode validates a fetch mode string.
func ParseFetchMode(s string) (FetchMode, error) {
	switch m := FetchMode(s); m {
	case FetchModeCommon, FetchModeFallback, FetchModeForceFallback, FetchModeLocal:
		return m, nil
	}
	return "", fmt.Errorf("unknown fetch mode: %q", s)
}

// SortMethod is a ranking policy for ordering extracted flights.
type SortMethod string

const (
	// SortBest ranks best-section rows first, then by price, then duration.
	SortBest SortMethod = "best"
	// SortPrice ranks by numeric price ascending.
	SortPrice SortMethod = "price"
	// SortDuration ranks by total flight time ascending.
	SortDuration SortMethod = "duration"
)

// ParseSortMethod validates a sort method string.
func ParseSortMethod(s string) (SortMethod, error) {
	switch m := SortMethod(s); m {
	case SortBest, SortPrice, SortDuration:
		return m, nil
	}
	return "", fmt.Errorf("unknown sort method: %q", s)
}

// TripType is the shape of a search request.
type TripType string

const (
	TripRoundTrip TripType = "round-trip"
	TripOneWay    TripType = "one-way"
	TripMultiCity TripType = "multi-city"
)

// Seat is the requested cabin class.
type Seat string

const (
	SeatEconomy        Seat = "economy"
	SeatPremiumEconomy Seat = "premium-economy"
	SeatBusiness       Seat = "business"
	SeatFirst          Seat = "first"
)

// FlightData is one leg of a search request: an origin, a destination, and
// a departure date.
type FlightData struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	FromAirport string `json:"from_airport" validate:"required,len=3,alpha"`
	ToAirport   string `json:"to_airport" validate:"required,len=3,alpha"`
}

// Passengers is the party composition of a search request.
type Passengers struct {
	Adults        int `json:"adults" validate:"gte=1"`
	Children      int `json:"children" validate:"gte=0"`
	InfantsInSeat int `json:"infants_in_seat" validate:"gte=0"`
	InfantsOnLap  int `json:"infants_on_lap" validate:"gte=0"`
}

// Total returns the party size.
func (p Passengers) Total() int {
	return p.Adults + p.Children + p.InfantsInSeat + p.InfantsOnLap
}
