// Package tfs builds the encoded search-filter token carried in the "tfs"
// query parameter. The token is a url-safe base64 protobuf message covering
// legs, trip type, party composition, cabin class, and the optional stop
// limit. Everything downstream treats the encoded string as opaque.
package tfs

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/FranciscoRecio/flights/pkg/schema"
)

// Top-level filter message fields.
const (
	fieldData       = 3
	fieldPassengers = 8
	fieldSeat       = 9
	fieldTrip       = 19
)

// Per-leg message fields.
const (
	fieldDate     = 2
	fieldMaxStops = 5
	fieldFrom     = 13
	fieldTo       = 14
)

// Airport sub-message field.
const fieldAirportCode = 2

// Passenger enum values, repeated once per traveler.
const (
	passengerAdult        = 1
	passengerChild        = 2
	passengerInfantInSeat = 3
	passengerInfantOnLap  = 4
)

var seatValues = map[schema.Seat]uint64{
	schema.SeatEconomy:        1,
	schema.SeatPremiumEconomy: 2,
	schema.SeatBusiness:       3,
	schema.SeatFirst:          4,
}

var tripValues = map[schema.TripType]uint64{
	schema.TripRoundTrip: 1,
	schema.TripOneWay:    2,
	schema.TripMultiCity: 3,
}

// TFS describes one search filter.
type TFS struct {
	Legs       []schema.FlightData
	Trip       schema.TripType
	Passengers schema.Passengers
	Seat       schema.Seat

	// MaxStops constrains every leg when set.
	MaxStops *int
}

// Encode serializes the filter to its url-safe base64 token.
func (t TFS) Encode() (string, error) {
	seat, ok := seatValues[t.Seat]
	if !ok {
		return "", fmt.Errorf("unknown seat class: %q", t.Seat)
	}
	trip, ok := tripValues[t.Trip]
	if !ok {
		return "", fmt.Errorf("unknown trip type: %q", t.Trip)
	}

	var msg []byte
	for _, leg := range t.Legs {
		msg = protowire.AppendTag(msg, fieldData, protowire.BytesType)
		msg = protowire.AppendBytes(msg, encodeLeg(leg, t.MaxStops))
	}

	if travelers := passengerList(t.Passengers); len(travelers) > 0 {
		var packed []byte
		for _, p := range travelers {
			packed = protowire.AppendVarint(packed, p)
		}
		msg = protowire.AppendTag(msg, fieldPassengers, protowire.BytesType)
		msg = protowire.AppendBytes(msg, packed)
	}

	msg = protowire.AppendTag(msg, fieldSeat, protowire.VarintType)
	msg = protowire.AppendVarint(msg, seat)
	msg = protowire.AppendTag(msg, fieldTrip, protowire.VarintType)
	msg = protowire.AppendVarint(msg, trip)

	return base64.URLEncoding.EncodeToString(msg), nil
}

func encodeLeg(leg schema.FlightData, maxStops *int) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldDate, protowire.BytesType)
	b = protowire.AppendString(b, leg.Date)
	if maxStops != nil {
		b = protowire.AppendTag(b, fieldMaxStops, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*maxStops))
	}
	b = protowire.AppendTag(b, fieldFrom, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeAirport(leg.FromAirport))
	b = protowire.AppendTag(b, fieldTo, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeAirport(leg.ToAirport))
	return b
}

func encodeAirport(code string) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldAirportCode, protowire.BytesType)
	b = protowire.AppendString(b, code)
	return b
}

// passengerList expands the party composition into one enum value per
// traveler, the shape the filter message expects.
func passengerList(p schema.Passengers) []uint64 {
	var out []uint64
	add := func(value uint64, count int) {
		for i := 0; i < count; i++ {
			out = append(out, value)
		}
	}
	add(passengerAdult, p.Adults)
	add(passengerChild, p.Children)
	add(passengerInfantInSeat, p.InfantsInSeat)
	add(passengerInfantOnLap, p.InfantsOnLap)
	return out
}
