package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
	"github.com/vovakirdan/rebatedor/internal/games/rebatedor"
	"github.com/vovakirdan/rebatedor/internal/platform/gui"
	"github.com/vovakirdan/rebatedor/internal/platform/tui"
	"github.com/vovakirdan/rebatedor/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
)

// Default window size for --gui, roughly the playfield's aspect.
const (
	windowW = 540
	windowH = 990
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without an argument the standard variant is used.

Controls:
  Mouse        - Move the paddle
  Click / S    - Serve
  Left/Right   - Nudge the pointer (terminal)
  Space        - Pause / resume
  Enter        - Toggle fullscreen
  R            - Restart
  Q            - Quit

Difficulty options:
  easy   - Slower ball
  normal - Config values
  hard   - Faster ball
  fixed  - No speed progression

Examples:
  rebatedor play
  rebatedor play --gui
  rebatedor play rebatedor_split
  rebatedor play --difficulty hard --config ./my-rebatedor.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of drawing in the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'rebatedor list' to see available variants", gameID)
	}

	if _, err := config.LookupDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	rebatedor.SetConfigPath(flagConfig)
	rebatedor.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	logger := log.Default()
	logger.Info("starting", "variant", gameID, "gui", flagGUI, "fps", cfg.TickRate)

	if flagGUI {
		scene, ok := game.(registry.SceneGame)
		if !ok {
			return fmt.Errorf("variant %q cannot be drawn in a window", gameID)
		}
		cfg.ScreenW, cfg.ScreenH = windowW, windowH
		return gui.Run(scene, cfg, logger)
	}

	if flagLogFile == "" {
		release, err := holdLogs(logger, os.Stderr)
		if err != nil {
			return err
		}
		defer release()
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// holdLogs buffers logger output while the terminal host owns the screen.
// The returned func writes the held lines to dst. Debug level is refused:
// it logs on nearly every tick.
func holdLogs(logger *log.Logger, dst io.Writer) (func(), error) {
	if logger.GetLevel() <= log.DebugLevel {
		return nil, errors.New("--log-level debug in the terminal needs --log-file")
	}
	held := &bytes.Buffer{}
	logger.SetOutput(held)
	return func() {
		dst.Write(held.Bytes()) //nolint:errcheck
	}, nil
}
