package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FranciscoRecio/flights/internal/logger"
	"github.com/FranciscoRecio/flights/pkg/flights"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search flights for a single date",
	Long: `Search Google Flights for one departure date.

With --sort, results are ranked within each stop-count group and truncated
to the top offers per group; without it, every extracted offer is returned
in page order.

Examples:
  flights search --from LAX --to JFK --date 2026-10-01
  flights search --from LAX --to JFK --date 2026-10-01 \
      --return 2026-10-08 --trip round-trip --sort price`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	flags := searchCmd.Flags()
	flags.String("from", "", "origin airport code (required)")
	flags.String("to", "", "destination airport code (required)")
	flags.String("date", "", "departure date, YYYY-MM-DD (required)")
	flags.String("return", "", "return date for round trips, YYYY-MM-DD")
	flags.StringP("sort", "s", "", "rank results: best, price, duration")
	addCommonFlags(flags)

	_ = searchCmd.MarkFlagRequired("from")
	_ = searchCmd.MarkFlagRequired("to")
	_ = searchCmd.MarkFlagRequired("date")
}

func runSearch(cmd *cobra.Command, args []string) error {
	initLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	date, _ := cmd.Flags().GetString("date")
	returnDate, _ := cmd.Flags().GetString("return")
	trip, _ := cmd.Flags().GetString("trip")
	seat, _ := cmd.Flags().GetString("seat")
	mode, _ := cmd.Flags().GetString("mode")
	currency, _ := cmd.Flags().GetString("currency")
	sortFlag, _ := cmd.Flags().GetString("sort")

	legs := []flights.FlightData{{Date: date, FromAirport: from, ToAirport: to}}
	if returnDate != "" {
		legs = append(legs, flights.FlightData{Date: returnDate, FromAirport: to, ToAirport: from})
	}

	opts := flights.SearchOptions{
		Legs:       legs,
		Trip:       flights.TripType(trip),
		Passengers: passengersFromFlags(cmd),
		Seat:       flights.Seat(seat),
		FetchMode:  flights.FetchMode(mode),
		MaxStops:   maxStopsFromFlags(cmd),
		Currency:   currency,
	}

	client := buildClient(cmd)
	defer client.Close()

	logger.Debug("search starting", "from", from, "to", to, "date", date, "mode", mode)

	var res flights.Result
	var err error
	if sortFlag != "" {
		res, err = client.GetTopSortedFlights(ctx, opts, flights.SortMethod(sortFlag))
	} else {
		res, err = client.GetFlights(ctx, opts)
	}
	if err != nil {
		logger.Error("search failed", "error", err)
		return err
	}

	return writeResult(cmd, res)
}
