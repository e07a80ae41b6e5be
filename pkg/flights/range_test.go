package flights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FranciscoRecio/flights/pkg/fetcher"
)

func rangeOpts(start, end string) DateRangeOptions {
	return DateRangeOptions{
		StartDate:   start,
		EndDate:     end,
		FromAirport: "LAX",
		ToAirport:   "JFK",
		Trip:        TripOneWay,
		Passengers:  Passengers{Adults: 1},
		Seat:        SeatEconomy,
	}
}

func TestGetBestFlightsAcrossDates_RejectsInvalidWindows(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2026-09-15", "2026-09-14"},
		{"span too wide", "2026-09-15", "2026-09-21"},
		{"bad start format", "09/15/2026", "2026-09-16"},
		{"bad end format", "2026-09-15", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direct := &stubFetcher{name: "direct"}
			c := newTestClient(direct, nil, nil)

			_, err := c.GetBestFlightsAcrossDates(context.Background(), rangeOpts(tt.start, tt.end))
			if err == nil {
				t.Fatal("expected an error")
			}
			if direct.calls != 0 {
				t.Errorf("window validation must run before any fetch, got %d calls", direct.calls)
			}
		})
	}
}

func TestGetBestFlightsAcrossDates_MaximumWindowSearchesSixDays(t *testing.T) {
	var pages []stubPage
	for i := 0; i < 6; i++ {
		pages = append(pages, ok(resultsPage("high", "$400")))
	}
	direct := &stubFetcher{name: "direct", pages: pages}
	c := newTestClient(direct, nil, nil)

	res, err := c.GetBestFlightsAcrossDates(context.Background(), rangeOpts("2026-09-15", "2026-09-20"))
	if err != nil {
		t.Fatalf("GetBestFlightsAcrossDates: %v", err)
	}
	if direct.calls != 6 {
		t.Errorf("expected 6 searches for a 5-day span, got %d", direct.calls)
	}
	// Six per-day winners merge to the cross-date top five.
	if len(res.Flights) != 5 {
		t.Errorf("expected 5 flights, got %d", len(res.Flights))
	}
}

func TestGetBestFlightsAcrossDates_StampsDates(t *testing.T) {
	direct := &stubFetcher{name: "direct", pages: []stubPage{
		ok(resultsPage("high", "$400")),
		ok(resultsPage("high", "$200")),
	}}
	c := newTestClient(direct, nil, nil)

	res, err := c.GetBestFlightsAcrossDates(context.Background(), rangeOpts("2026-09-15", "2026-09-16"))
	if err != nil {
		t.Fatalf("GetBestFlightsAcrossDates: %v", err)
	}
	if len(res.Flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(res.Flights))
	}

	byPrice := map[string]string{}
	for _, f := range res.Flights {
		byPrice[f.Price] = f.Date
	}
	if byPrice["$400"] != "2026-09-15" {
		t.Errorf("$400 flight stamped %q, want 2026-09-15", byPrice["$400"])
	}
	if byPrice["$200"] != "2026-09-16" {
		t.Errorf("$200 flight stamped %q, want 2026-09-16", byPrice["$200"])
	}
}

func TestGetBestFlightsAcrossDates_MergesAcrossDays(t *testing.T) {
	direct := &stubFetcher{name: "direct", pages: []stubPage{
		ok(resultsPage("high", "$400", "$600")),
		ok(resultsPage("low", "$200", "$900")),
	}}
	c := newTestClient(direct, nil, nil)

	opts := rangeOpts("2026-09-15", "2026-09-16")
	opts.SortMethod = SortPrice
	res, err := c.GetBestFlightsAcrossDates(context.Background(), opts)
	if err != nil {
		t.Fatalf("GetBestFlightsAcrossDates: %v", err)
	}

	want := []string{"$200", "$400", "$600", "$900"}
	if len(res.Flights) != len(want) {
		t.Fatalf("expected %d flights, got %d", len(want), len(res.Flights))
	}
	for i, f := range res.Flights {
		if f.Price != want[i] {
			t.Errorf("position %d: price %s, want %s", i, f.Price, want[i])
		}
	}
	if res.CurrentPrice != "low" {
		t.Errorf("price level = %q, want low", res.CurrentPrice)
	}
}

func TestGetBestFlightsAcrossDates_FailureAbortsRange(t *testing.T) {
	direct := &stubFetcher{name: "direct", pages: []stubPage{
		ok(resultsPage("high", "$400")),
		fail(429),
	}}
	c := newTestClient(direct, nil, nil)

	_, err := c.GetBestFlightsAcrossDates(context.Background(), rangeOpts("2026-09-15", "2026-09-17"))
	var statusErr *fetcher.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected the day's StatusError, got %v", err)
	}
	if !strings.Contains(err.Error(), "2026-09-16") {
		t.Errorf("error should name the failed date, got %v", err)
	}
	if direct.calls != 2 {
		t.Errorf("the remaining days must not be searched, got %d calls", direct.calls)
	}
}

func TestReconcilePriceLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels []string
		want   string
	}{
		{"low wins over everything", []string{"high", "typical", "low"}, "low"},
		{"typical beats high", []string{"high", "typical"}, "typical"},
		{"all high", []string{"high", "high"}, "high"},
		{"unknown labels default to high", []string{"", "weird"}, "high"},
		{"empty input", nil, "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcilePriceLevel(tt.levels); got != tt.want {
				t.Errorf("reconcilePriceLevel(%v) = %q, want %q", tt.levels, got, tt.want)
			}
		})
	}
}
