package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FranciscoRecio/flights/internal/logger"
	"github.com/FranciscoRecio/flights/pkg/flights"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Find the best flights across a window of departure dates",
	Long: `Search each day in an inclusive date window (at most a 5-day span)
and merge the per-day winners into one cross-date top list.

The reported price level is optimistic: one "low" day labels the whole
window low.

Example:
  flights range --from LAX --to JFK \
      --start 2026-10-01 --end 2026-10-04 --sort price`,
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	flags := rangeCmd.Flags()
	flags.String("from", "", "origin airport code (required)")
	flags.String("to", "", "destination airport code (required)")
	flags.String("start", "", "first departure date, YYYY-MM-DD (required)")
	flags.String("end", "", "last departure date, YYYY-MM-DD (required)")
	flags.StringP("sort", "s", "best", "rank results: best, price, duration")
	addCommonFlags(flags)

	_ = rangeCmd.MarkFlagRequired("from")
	_ = rangeCmd.MarkFlagRequired("to")
	_ = rangeCmd.MarkFlagRequired("start")
	_ = rangeCmd.MarkFlagRequired("end")
}

func runRange(cmd *cobra.Command, args []string) error {
	initLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	trip, _ := cmd.Flags().GetString("trip")
	seat, _ := cmd.Flags().GetString("seat")
	mode, _ := cmd.Flags().GetString("mode")
	currency, _ := cmd.Flags().GetString("currency")
	sortFlag, _ := cmd.Flags().GetString("sort")

	client := buildClient(cmd)
	defer client.Close()

	logger.Debug("range search starting", "from", from, "to", to, "start", start, "end", end)

	res, err := client.GetBestFlightsAcrossDates(ctx, flights.DateRangeOptions{
		StartDate:   start,
		EndDate:     end,
		FromAirport: from,
		ToAirport:   to,
		Trip:        flights.TripType(trip),
		Passengers:  passengersFromFlags(cmd),
		Seat:        flights.Seat(seat),
		FetchMode:   flights.FetchMode(mode),
		MaxStops:    maxStopsFromFlags(cmd),
		Currency:    currency,
		SortMethod:  flights.SortMethod(sortFlag),
	})
	if err != nil {
		logger.Error("range search failed", "error", err)
		return err
	}

	return writeResult(cmd, res)
}
