// Package ranking orders extracted flights under the supported sort
// policies. All functions are pure: inputs are copied, never mutated.
package ranking

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/FranciscoRecio/flights/pkg/schema"
)

// DefaultLimit is how many flights survive each truncation pass.
const DefaultLimit = 5

var priceStripper = strings.NewReplacer("$", "", ",", "")

// price parses a display price to a numeric sort key. Unparseable prices
// rank last.
func price(f schema.Flight) float64 {
	v, err := strconv.ParseFloat(priceStripper.Replace(f.Price), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// DurationMinutes converts an "H hr M min" display string to total minutes.
// Anything else, including hour-only strings, ranks as infinite.
func DurationMinutes(s string) float64 {
	s = strings.Replace(s, " hr ", ":", 1)
	s = strings.Replace(s, " min", "", 1)
	hours, minutes, ok := strings.Cut(s, ":")
	if !ok {
		return math.Inf(1)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hours))
	if err != nil {
		return math.Inf(1)
	}
	m, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil {
		return math.Inf(1)
	}
	return float64(h*60 + m)
}

// less returns the ordering predicate for a sort policy.
func less(method schema.SortMethod) func(a, b schema.Flight) bool {
	switch method {
	case schema.SortPrice:
		return func(a, b schema.Flight) bool { return price(a) < price(b) }
	case schema.SortDuration:
		return func(a, b schema.Flight) bool {
			return DurationMinutes(a.Duration) < DurationMinutes(b.Duration)
		}
	default:
		// best: best-section rows first, then price, then duration.
		return func(a, b schema.Flight) bool {
			if a.IsBest != b.IsBest {
				return a.IsBest
			}
			pa, pb := price(a), price(b)
			if pa != pb {
				return pa < pb
			}
			return DurationMinutes(a.Duration) < DurationMinutes(b.Duration)
		}
	}
}

// Top sorts flights by the given policy and truncates to the limit,
// without grouping. A limit of zero or below keeps everything.
func Top(flights []schema.Flight, method schema.SortMethod, limit int) []schema.Flight {
	out := make([]schema.Flight, len(flights))
	copy(out, flights)

	cmp := less(method)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopByStops partitions flights by exact stop count, ranks each group by
// the given policy, keeps the top limit per group, and concatenates the
// groups in ascending stop order with unknowns last.
func TopByStops(flights []schema.Flight, method schema.SortMethod, limit int) []schema.Flight {
	groups := make(map[schema.Stops][]schema.Flight)
	var order []schema.Stops
	for _, f := range flights {
		if _, seen := groups[f.Stops]; !seen {
			order = append(order, f.Stops)
		}
		groups[f.Stops] = append(groups[f.Stops], f)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	var out []schema.Flight
	for _, stops := range order {
		out = append(out, Top(groups[stops], method, limit)...)
	}
	return out
}
