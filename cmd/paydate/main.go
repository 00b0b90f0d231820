/*
main.go - Application entry point

PURPOSE:
  CLI for the paydate engine. Calculates paydates locally or serves the
  HTTP API over a SQLite holiday calendar.

COMMANDS:
  serve                    Start the HTTP API
  next MODEL SEED          Print the next paydates
  check DATE               Classify a date
  holidays                 Print the built-in holiday calendar

GLOBAL FLAGS:
  --config    YAML config file (optional; PAYDATE_* env vars always apply)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections, waits for
  active requests (http.shutdown_timeout), then closes the store.

EXAMPLES:
  paydate next BIWEEKLY 2014-05-12 --today 2014-05-12 --count 3
  paydate check 2014-05-26
  PAYDATE_DB_PATH=":memory:" paydate serve

SEE ALSO:
  - config/config.go: Configuration keys
  - api/server.go: Router configuration
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/warp/paydate-engine/config"
	"github.com/warp/paydate-engine/logging"
)

var (
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "paydate",
	Short:         "Paydate engine - upcoming pay dates around weekends and holidays",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("PAYDATE_CONFIG"), "YAML config file")
	rootCmd.AddCommand(serveCmd, nextCmd, checkCmd, holidaysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and sets up logging.
func loadConfig() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Env)
	return nil
}
