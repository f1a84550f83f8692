// rebatedor is a brick-breaker played with a five-segment paddle that
// follows the pointer. It runs in the terminal or in a desktop window.
//
// Usage:
//
//	rebatedor list                 - List available variants
//	rebatedor play [variant]       - Play (default: rebatedor)
//	rebatedor config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rebatedor/internal/games/rebatedor"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

// logFile is closed by the root command's post-run hook.
var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close() //nolint:errcheck
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rebatedor",
	Short: "Rebatedor - break bricks with a segmented paddle",
	Long: `Rebatedor is a brick-breaker. A five-segment paddle follows the mouse,
and the segment the ball lands on decides the angle it is kicked back at.

Available commands:
  list     - Show the available variants
  play     - Play a variant
  config   - Print the effective configuration as YAML

Examples:
  rebatedor play
  rebatedor play --gui
  rebatedor play rebatedor_split --difficulty hard
  rebatedor config --config ./my-rebatedor.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the process logger. The terminal host owns stdout, so
// logs go to stderr unless a file is given.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "rebatedor",
		Level:           level,
	})
	log.SetDefault(logger)
	rebatedor.SetLogger(logger)
	return nil
}
