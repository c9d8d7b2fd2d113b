// arcade runs the demo games built on the phases controller in a window.
//
// Usage:
//
//	arcade runner          - Play the side scrolling runner
//	arcade dice            - Play Pig against the computer
//	arcade scores <game>   - Show high scores for a game
//
// Global flags:
//
//	--config <path>     - Path to a custom config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: from config)
//	--profile <kind>    - Write a cpu or mem profile
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagSeed     uint64
	flagDBPath   string
	flagProfile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Small games driven by a phase lifecycle controller",
	Long: `Each game is split into phases like a main menu, the game itself
and a game over screen. Everything a phase spawns is cleaned up when
the phase is left.

Examples:
  arcade runner
  arcade dice --seed 42
  arcade scores runner`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu, mem")

	rootCmd.AddCommand(runnerCmd)
	rootCmd.AddCommand(diceCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arcade",
	})

	slog.SetDefault(slog.New(logger))
	return nil
}
