// Package schema defines the value types shared across the flight-search
// pipeline: a single extracted offer, a result set, and the enumerations
// that shape a search request.
package schema

// Flight is one offer row extracted from a results page.
//
// Display fields (times, duration, price) are kept as the page shows them,
// normalized only for whitespace and thousands separators. Fields the page
// omits stay empty rather than failing extraction.
type Flight struct {
	// IsBest is true for rows from the first results section on the page,
	// the source's own top recommendation.
	IsBest bool `json:"is_best" yaml:"is_best"`

	Name      string `json:"name" yaml:"name"`
	Departure string `json:"departure" yaml:"departure"`
	Arrival   string `json:"arrival" yaml:"arrival"`

	// ArrivalTimeAhead is the day-offset annotation ("+1" etc.), empty when
	// the flight lands the same day.
	ArrivalTimeAhead string `json:"arrival_time_ahead,omitempty" yaml:"arrival_time_ahead,omitempty"`

	// Duration is the display string, e.g. "5 hr 10 min".
	Duration string `json:"duration" yaml:"duration"`

	Stops Stops `json:"stops" yaml:"stops"`

	// Delay is a free-text delay annotation, empty when none.
	Delay string `json:"delay,omitempty" yaml:"delay,omitempty"`

	// Price is the display price with thousands separators stripped,
	// "0" when the page shows no price.
	Price string `json:"price" yaml:"price"`

	// Date is the calendar day this offer was searched for. It is stamped
	// by the date-range aggregator and empty on single-date results.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
}

// Result is the output of one fetch+extract cycle.
type Result struct {
	// CurrentPrice is the page's qualitative price level ("low", "typical",
	// "high"), passed through verbatim for single-date results and
	// reconciled across days for date-range results.
	CurrentPrice string `json:"current_price" yaml:"current_price"`

	// Flights are ordered as extracted: best-section rows first.
	Flights []Flight `json:"flights" yaml:"flights"`
}
