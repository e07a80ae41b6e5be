package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/FranciscoRecio/flights/internal/logger"
	"github.com/FranciscoRecio/flights/internal/output"
	"github.com/FranciscoRecio/flights/pkg/flights"
)

// addCommonFlags registers the flags shared by the search and range
// commands.
func addCommonFlags(flags *pflag.FlagSet) {
	flags.String("trip", "one-way", "trip type: one-way, round-trip, multi-city")
	flags.String("seat", "economy", "cabin class: economy, premium-economy, business, first")
	flags.Int("adults", 1, "adult passengers")
	flags.Int("children", 0, "child passengers")
	flags.Int("infants-in-seat", 0, "infants with their own seat")
	flags.Int("infants-on-lap", 0, "lap infants (needs one adult each)")
	flags.Int("max-stops", -1, "maximum stops (-1 for no constraint)")
	flags.String("currency", "", "ISO currency code (page default when empty)")
	flags.StringP("mode", "m", "common", "fetch mode: common, fallback, force-fallback, local")
	flags.Int("limit", 0, "flights kept per ranking pass (0 for the default of 5)")

	flags.String("solver-url", "", "FlareSolverr-compatible solver URL for fallback fetches")
	flags.Duration("timeout", 30*time.Second, "per-request transport timeout")

	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
}

// initLogging configures the logger from the persistent flags.
func initLogging() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// buildClient creates a flights client from command flags.
func buildClient(cmd *cobra.Command) *flights.Client {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	solverURL, _ := cmd.Flags().GetString("solver-url")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := []flights.Option{flights.WithTimeout(timeout)}
	if solverURL != "" {
		opts = append(opts, flights.WithSolverURL(solverURL))
	}
	if limit > 0 {
		opts = append(opts, flights.WithLimit(limit))
	}
	return flights.New(opts...)
}

// passengersFromFlags reads the party composition flags.
func passengersFromFlags(cmd *cobra.Command) flights.Passengers {
	adults, _ := cmd.Flags().GetInt("adults")
	children, _ := cmd.Flags().GetInt("children")
	inSeat, _ := cmd.Flags().GetInt("infants-in-seat")
	onLap, _ := cmd.Flags().GetInt("infants-on-lap")
	return flights.Passengers{
		Adults:        adults,
		Children:      children,
		InfantsInSeat: inSeat,
		InfantsOnLap:  onLap,
	}
}

// maxStopsFromFlags maps the flag's -1 convention to an unset constraint.
func maxStopsFromFlags(cmd *cobra.Command) *int {
	n, _ := cmd.Flags().GetInt("max-stops")
	if n < 0 {
		return nil
	}
	return &n
}

// writeResult serializes a result to the requested file and format.
func writeResult(cmd *cobra.Command, res flights.Result) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	dest := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	w, err := output.NewWriter(dest, output.Format(format))
	if err != nil {
		return err
	}
	if err := w.Write(res); err != nil {
		return err
	}
	return w.Close()
}
