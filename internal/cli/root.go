package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cachebag/winter-2026/internal/numeric"
)

// The operands are fixed; the program has no configurable inputs.
const (
	operandA uint32 = 120
	operandB uint32 = 48
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gcd",
	Short: "Compute the greatest common divisor of 120 and 48",
	Long: `gcd computes the greatest common divisor of the fixed operands 120 and 48
using the iterative Euclidean algorithm and prints the decimal result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		result := numeric.GCD(operandA, operandB)
		log.Debug().
			Uint32("a", operandA).
			Uint32("b", operandB).
			Uint32("gcd", result).
			Msg("computed greatest common divisor")
		fmt.Fprintln(cmd.OutOrStdout(), result)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error) (default: disabled)")
}

// initLogging configures the global logger
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	// Logs go to stderr so stdout stays a single result line.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
