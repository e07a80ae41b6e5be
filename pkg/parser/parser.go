// Package parser extracts flight offers from Google Flights result markup.
//
// Extraction is best-effort by design: every field lookup tolerates a
// missing node and falls back to an empty value, so a single odd row never
// aborts the page. The only hard failure is a page with no offer rows at
// all, which callers usually answer by retrying through another transport.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/FranciscoRecio/flights/pkg/schema"
)

// ErrNoFlights signals that a document yielded zero offer rows. Match with
// errors.Is; the concrete *NoFlightsError carries a page excerpt.
var ErrNoFlights = errors.New("no flights found")

// NoFlightsError reports an extraction that found no offer rows.
type NoFlightsError struct {
	// Excerpt is the page's visible text, truncated, for diagnosing layout
	// changes and consent interstitials.
	Excerpt string
}

func (e *NoFlightsError) Error() string {
	return fmt.Sprintf("no flights found:\n%s", e.Excerpt)
}

func (e *NoFlightsError) Unwrap() error { return ErrNoFlights }

// Options controls row selection.
type Options struct {
	// KeepSummaryRow keeps the trailing row of non-best sections. That row
	// is a "view more" summary in observed layouts and is dropped by
	// default.
	KeepSummaryRow bool
}

// Result-section containers across the two known page layouts, in document
// order. The first section holds the page's "best" recommendations.
const sectionSelector = `div[jsname="IWWDBc"], div[jsname="YdtKid"]`

const rowSelector = "ul.Rk10dc li"

const excerptLimit = 2000

// Parse extracts a result set from a results page.
func Parse(html string) (schema.Result, error) {
	return ParseWith(html, Options{})
}

// ParseWith is Parse with explicit options.
func ParseWith(html string, opts Options) (schema.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return schema.Result{}, fmt.Errorf("parse document: %w", err)
	}

	var flights []schema.Flight
	doc.Find(sectionSelector).Each(func(i int, section *goquery.Selection) {
		isBest := i == 0
		rows := section.Find(rowSelector)
		last := rows.Length() - 1
		rows.Each(func(j int, row *goquery.Selection) {
			if j == last && !isBest && !opts.KeepSummaryRow {
				return
			}
			flights = append(flights, parseRow(row, isBest))
		})
	})

	if len(flights) == 0 {
		return schema.Result{}, &NoFlightsError{Excerpt: excerpt(doc)}
	}

	return schema.Result{
		CurrentPrice: firstText(doc.Selection, "span.gOatQ"),
		Flights:      flights,
	}, nil
}

func parseRow(row *goquery.Selection, isBest bool) schema.Flight {
	f := schema.Flight{IsBest: isBest}

	f.Name = strings.TrimSpace(firstText(row, "div.sSHqwe.tPgKwe.ogfYpf span"))

	// Departure and arrival are sibling nodes at a known position; both
	// stay empty when the pair is incomplete.
	times := row.Find("span.mv1WYe div")
	if times.Length() >= 2 {
		f.Departure = collapse(times.Eq(0).Text())
		f.Arrival = collapse(times.Eq(1).Text())
	}

	f.ArrivalTimeAhead = firstText(row, "span.bOzv6")
	f.Duration = firstText(row, "div.Ak5kof div")
	f.Stops = schema.StopsFromText(firstText(row, ".BbR8Ec .ogfYpf"))
	f.Delay = firstText(row, ".GsCCve")

	price := firstText(row, ".YMlIz.FpEdX")
	if price == "" {
		price = "0"
	}
	f.Price = strings.ReplaceAll(price, ",", "")

	return f
}

// firstText returns the text of the first node matching sel, or "" when the
// lookup finds nothing.
func firstText(s *goquery.Selection, sel string) string {
	return s.Find(sel).First().Text()
}

// collapse normalizes runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func excerpt(doc *goquery.Document) string {
	text := collapse(doc.Find("body").Text())
	if len(text) > excerptLimit {
		text = text[:excerptLimit] + "..."
	}
	return text
}
