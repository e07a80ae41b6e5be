// Package commands implements the CLI commands for the flights tool.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FranciscoRecio/flights/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "flights",
	Short: "Search Google Flights from the command line",
	Long: `Flights searches Google Flights without an official API: it fetches
rendered result pages, extracts structured offers, and ranks them.

Examples:
  # One-way search for a single date
  flights search --from LAX --to JFK --date 2026-10-01

  # Ranked results, falling back to a browser transport when needed
  flights search --from LAX --to JFK --date 2026-10-01 \
      --sort price --mode fallback

  # Best offers across a date window (max 5-day span)
  flights range --from LAX --to JFK \
      --start 2026-10-01 --end 2026-10-04 --sort best`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Full())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version.String()
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.flights.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON format")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".flights")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FLIGHTS")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
