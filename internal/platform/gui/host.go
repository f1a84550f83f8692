// Package gui is the window host. It drives a game through ebiten: keyboard
// and mouse are polled each frame, and the scene is drawn as flat shapes
// through the game's own camera.
package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rebatedor/internal/core"
	"github.com/vovakirdan/rebatedor/internal/registry"
)

var background = color.RGBA{R: 16, G: 16, B: 24, A: 255}

// Host implements ebiten.Game around a registry.SceneGame.
type Host struct {
	game   registry.SceneGame
	frame  core.InputFrame
	state  core.GameState
	logger *log.Logger

	width, height int
	cursorX       int
	cursorY       int
	cursorSeen    bool
}

// NewHost creates a host for game with an initial window of cfg.ScreenW x cfg.ScreenH pixels.
func NewHost(game registry.SceneGame, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	return &Host{
		game:   game,
		frame:  core.NewInputFrame(),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Update polls input and runs one simulation step.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	h.poll()

	result := h.game.Step(h.frame)
	h.frame.Clear()

	if result.State.Phase != h.state.Phase && h.logger != nil {
		h.logger.Info("phase", "game", h.game.ID(), "phase", result.State.Phase, "score", result.State.Score)
	}
	h.state = result.State

	if result.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// poll stages this frame's key edges and cursor movement.
func (h *Host) poll() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.frame.Set(core.ActionFullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.frame.Set(core.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.frame.Set(core.ActionStart)
	}

	x, y := ebiten.CursorPosition()
	if h.cursorSeen && x == h.cursorX && y == h.cursorY {
		return
	}
	h.cursorX, h.cursorY, h.cursorSeen = x, y, true
	h.frame.MovePointer(core.PointerNDC(float64(x), float64(y), float64(h.width), float64(h.height)))
}

// Draw renders the scene and a one-line status.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cam := h.game.Camera()
	w, ht := float64(h.width), float64(h.height)
	for _, s := range h.game.Sprites() {
		x, y, sw, sh := SpriteRect(cam, s, w, ht)
		if s.Round {
			r := min(sw, sh) / 2
			vector.DrawFilledCircle(screen, x+sw/2, y+sh/2, r, Palette(s.Color), true)
			continue
		}
		vector.DrawFilledRect(screen, x, y, sw, sh, Palette(s.Color), false)
	}

	ebitenutil.DebugPrintAt(screen, h.status(), 8, 8)
}

func (h *Host) status() string {
	switch h.state.Phase {
	case core.PhaseIdle:
		return "Click to start"
	case core.PhasePaused:
		return fmt.Sprintf("Score %d  PAUSED (space)", h.state.Score)
	case core.PhaseOver:
		if h.state.Won {
			return fmt.Sprintf("Score %d  CLEARED! Click or R to play again", h.state.Score)
		}
		return fmt.Sprintf("Score %d  BALL LOST. Click or R to play again", h.state.Score)
	default:
		return fmt.Sprintf("Score %d", h.state.Score)
	}
}

// Layout follows the window size so the camera aspect tracks resizes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		if r, ok := h.game.(registry.Resizer); ok {
			r.Resize(outsideWidth, outsideHeight)
		}
	}
	return h.width, h.height
}

// SpriteRect projects a sprite's bounds to a pixel rectangle.
func SpriteRect(cam core.Camera, s core.Sprite, width, height float64) (x, y, w, h float32) {
	x0, y0 := cam.Project(s.Bounds.Min, width, height)
	x1, y1 := cam.Project(s.Bounds.Max, width, height)
	return float32(x0), float32(y0), float32(x1 - x0), float32(y1 - y0)
}

// Run opens the window and blocks until it is closed.
func Run(game registry.SceneGame, cfg core.RuntimeConfig, logger *log.Logger) error {
	cfg.PixelAspect = 1
	game.Reset(cfg)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(NewHost(game, cfg, logger)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
