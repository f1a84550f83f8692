package rebatedor

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
	"github.com/vovakirdan/rebatedor/internal/registry"
)

// Variant selects the collision gate strategy of a Game.
type Variant int

const (
	VariantShared Variant = iota // One gate for bricks, edges and paddle
	VariantSplit                 // Separate brick/edge and paddle gates
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger is handed to every new Game.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is the game state controller. It owns the World and drives the
// paddle, ball and collision components once per Step.
type Game struct {
	variant Variant

	world      *World
	camera     core.Camera
	difficulty *config.DifficultyManager
	log        *log.Logger

	phase       core.Phase
	won         bool
	tickCount   int
	lastPointer core.PointerSample

	runtime core.RuntimeConfig
	cfg     config.RebatedorConfig
}

// New creates a game using the shared collision gate.
func New() *Game {
	return &Game{variant: VariantShared, log: logger}
}

// NewSplit creates a game with independent brick/edge and paddle gates.
func NewSplit() *Game {
	return &Game{variant: VariantSplit, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantSplit {
		return "rebatedor_split"
	}
	return "rebatedor"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantSplit {
		return "Rebatedor (Split Gates)"
	}
	return "Rebatedor"
}

// Reset loads the configuration and rebuilds the world. The game starts Idle
// with the ball hidden.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRebatedor(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultRebatedorConfig()
	}

	config.ApplyRebatedorPreset(&cfg, difficultyPreset)
	g.ResetWith(runtime, cfg)
}

// ResetWith rebuilds the world from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.RebatedorConfig) {
	if g.log == nil {
		g.log = logger
	}
	switch g.variant {
	case VariantSplit:
		cfg.Collision.Gate = config.GateSplit
	default:
		if cfg.Collision.Gate == "" {
			cfg.Collision.Gate = config.GateShared
		}
	}

	g.runtime = runtime
	g.cfg = cfg
	g.world = NewWorld(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.fitCamera()

	g.phase = core.PhaseIdle
	g.won = false
	g.tickCount = 0
	g.lastPointer = core.PointerSample{}

	g.log.Debug("reset", "gate", cfg.Collision.Gate, "bricks", g.world.Grid.Total(), "edges", len(g.world.Edges))
}

// Resize adapts the camera to a new viewport size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.world != nil {
		g.fitCamera()
	}
}

// fitCamera frames the whole field, never showing less than the configured view size.
func (g *Game) fitCamera() {
	area := g.world.Field
	if half := g.cfg.Playfield.ViewSize / 2; area.HalfExtents().Z() < half {
		c := area.Center()
		h := area.HalfExtents()
		area = core.BoxFromCenter(c, mgl64.Vec3{h.X(), h.Y(), half})
	}
	g.camera = core.FitCamera(area, g.runtime.Aspect())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	result := core.StepResult{ToggleFullscreen: in.Has(core.ActionFullscreen)}

	// A serve is visible for exactly one tick
	if g.phase == core.PhaseServing {
		g.setPhase(core.PhasePlaying)
	}

	switch {
	case in.Has(core.ActionRestart):
		g.serve()
		g.setPhase(core.PhasePlaying)
	case in.Has(core.ActionStart) && (g.phase == core.PhaseIdle || g.phase == core.PhaseOver):
		g.serve()
	case in.Has(core.ActionPause):
		switch g.phase {
		case core.PhasePlaying:
			g.setPhase(core.PhasePaused)
		case core.PhasePaused:
			g.setPhase(core.PhasePlaying)
		}
	}

	g.updatePaddle(in.Pointer)

	if g.phase == core.PhasePlaying {
		g.tickCount++
		if g.world.Grid.IsCleared() {
			g.finish(true)
		} else {
			g.updateBall()
		}
	}

	result.State = g.State()
	return result
}

// serve revives the grid and puts the ball on the serve segment.
func (g *Game) serve() {
	g.world.Serve(g.cfg.Ball.ServeSegment)
	g.won = false
	g.tickCount = 0
	g.setPhase(core.PhaseServing)
}

// updatePaddle records the pointer sample and, while playing, lets the paddle follow it.
func (g *Game) updatePaddle(sample core.PointerSample) {
	if !sample.Valid {
		return
	}
	move := ClassifyMove(g.lastPointer, sample)
	g.lastPointer = sample

	if g.phase != core.PhasePlaying || move == MoveNone {
		return
	}
	hit, ok := g.camera.Raycast(sample.NDC, g.world.Ground)
	if !ok {
		return
	}
	g.world.Paddle.Follow(move, hit.X())
}

func (g *Game) updateBall() {
	step := g.difficulty.Speed(g.cfg.Ball.Step, g.Score(), g.tickCount)
	resp := g.world.AdvanceBall(step)

	if resp.Target != nil {
		r := resp.Reflection
		g.log.Debug("reflect",
			"target", resp.Target.Kind,
			"normal", r.Normal,
			"direction", r.Direction,
			"reflection", r.Reflected,
			"angle", mgl64.RadToDeg(r.Angle))
	}
	if resp.Segment >= 0 {
		g.log.Debug("kick", "segment", resp.Segment, "yaw", mgl64.RadToDeg(g.world.Ball.Yaw))
	}

	if g.ballLost() {
		g.finish(false)
	}
}

// ballLost reports whether the ball has left play: past the lose line behind
// the paddle (disabled when LoseMargin is 0), or outside the field through a
// side or the top.
func (g *Game) ballLost() bool {
	p := g.world.Ball.Position
	if margin := g.cfg.Playfield.LoseMargin; margin > 0 && p.Z() > g.cfg.HalfHeight()+margin {
		return true
	}
	f := g.world.Field
	return p.X() < f.Min.X() || p.X() > f.Max.X() || p.Z() < f.Min.Z()
}

func (g *Game) finish(won bool) {
	g.won = won
	g.setPhase(core.PhaseOver)
}

func (g *Game) setPhase(p core.Phase) {
	if g.phase == p {
		return
	}
	g.log.Debug("state", "from", g.phase, "to", p, "score", g.Score())
	g.phase = p
}

// Score returns the number of bricks destroyed this round.
func (g *Game) Score() int {
	return g.world.Grid.Total() - g.world.Grid.AliveCount()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.Score(),
		GameOver: g.phase == core.PhaseOver,
		Won:      g.phase == core.PhaseOver && g.won,
		Paused:   g.phase == core.PhasePaused,
	}
}

// World exposes the simulated objects.
func (g *Game) World() *World {
	return g.world
}

// Camera returns the camera used for pointer raycasts and rendering.
func (g *Game) Camera() core.Camera {
	return g.camera
}

// Sprites returns the visible objects for hosts that draw the scene themselves.
func (g *Game) Sprites() []core.Sprite {
	return g.world.Sprites()
}

// Ensure Game implements the registry interfaces.
var (
	_ registry.Game      = (*Game)(nil)
	_ registry.SceneGame = (*Game)(nil)
	_ registry.Resizer   = (*Game)(nil)
)

func init() {
	registry.Register("rebatedor", func() registry.Game { return New() })
	registry.Register("rebatedor_split", func() registry.Game { return NewSplit() })
}
