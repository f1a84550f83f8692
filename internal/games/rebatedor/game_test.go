package rebatedor

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
	"github.com/vovakirdan/rebatedor/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		PixelAspect: 0.5,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(testRuntime(), config.DefaultRebatedorConfig())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// pointerAt builds a frame whose pointer lands on the given ground point.
func pointerAt(g *Game, x, z float64) core.InputFrame {
	px, py := g.Camera().Project(mgl64.Vec3{x, 0, z}, 2, 2)
	in := core.NewInputFrame()
	in.MovePointer(mgl64.Vec2{px - 1, 1 - py})
	return in
}

func anchorX(g *Game) float64 {
	return g.World().Paddle.Anchor().Position.X()
}

func TestGameIdentity(t *testing.T) {
	assert.Equal(t, "rebatedor", New().ID())
	assert.Equal(t, "Rebatedor", New().Title())
	assert.Equal(t, "rebatedor_split", NewSplit().ID())

	for _, id := range []string{"rebatedor", "rebatedor_split"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameStartsIdle(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, core.PhaseIdle, res.State.Phase)
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
	assert.False(t, g.World().Ball.Visible)
	assert.Equal(t, uint64(0), g.Snapshot().Tick)
}

func TestStartServesThenPlays(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionStart))

	require.Equal(t, core.PhaseServing, res.State.Phase)
	ball := g.World().Ball
	assert.True(t, ball.Visible)
	assert.Zero(t, ball.Yaw)
	assertVec(t, mgl64.Vec3{-5, 0, 40}, ball.Position)

	res = g.Step(core.NewInputFrame())

	require.Equal(t, core.PhasePlaying, res.State.Phase)
	// The serve sits on segment 0, so the first step kicks at 220 degrees
	rad := mgl64.DegToRad(220)
	assertVec(t, mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}, ball.Direction())
	assert.True(t, ball.Colliding())
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))
	g.World().Grid.Bricks[2][2].destroy()

	res := g.Step(input(core.ActionStart))

	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.False(t, g.World().Grid.Bricks[2][2].Alive)
	assert.Equal(t, 1, res.State.Score)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(input(core.ActionPause))
	require.Equal(t, core.PhasePaused, res.State.Phase)
	assert.True(t, res.State.Paused)

	before := g.Snapshot()
	g.Step(pointerAt(g, -10, 40))
	g.Step(pointerAt(g, 0, 40))
	g.Step(core.NewInputFrame())
	assert.Equal(t, before, g.Snapshot(), "nothing moves while paused")

	res = g.Step(input(core.ActionPause))
	assert.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, before.Tick+1, g.Snapshot().Tick)
}

func TestRestartFromAnyPhase(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionRestart))
	assert.Equal(t, core.PhasePlaying, res.State.Phase, "from idle")
	assert.True(t, g.World().Ball.Visible)

	g.Step(input(core.ActionPause))
	g.World().Grid.Bricks[0][0].destroy()
	res = g.Step(input(core.ActionRestart))
	assert.Equal(t, core.PhasePlaying, res.State.Phase, "from paused")
	assert.Equal(t, g.World().Grid.Total(), g.World().Grid.AliveCount())

	g.World().Ball.Place(mgl64.Vec3{0, 0, 60})
	res = g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)
	res = g.Step(input(core.ActionRestart))
	assert.Equal(t, core.PhasePlaying, res.State.Phase, "from over")
}

func TestClearedGridEndsRoundWon(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))

	for _, row := range g.World().Grid.Bricks {
		for _, b := range row {
			b.destroy()
		}
	}

	res := g.Step(core.NewInputFrame())
	require.Equal(t, core.PhaseOver, res.State.Phase)
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, 50, res.State.Score)

	before := g.Snapshot()
	g.Step(pointerAt(g, -10, 40))
	g.Step(pointerAt(g, 0, 40))
	g.Step(input(core.ActionPause))
	assert.Equal(t, before, g.Snapshot(), "over halts ball and paddle")
}

func TestBallPastPaddleEndsRoundLost(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))

	g.World().Ball.Place(mgl64.Vec3{0, 0, 54.25})
	res := g.Step(core.NewInputFrame())
	require.Equal(t, core.PhasePlaying, res.State.Phase, "inside the margin")

	res = g.Step(core.NewInputFrame())
	assert.Equal(t, core.PhaseOver, res.State.Phase)
	assert.False(t, res.State.Won)
}

func TestLoseMarginZeroNeverLoses(t *testing.T) {
	cfg := config.DefaultRebatedorConfig()
	cfg.Playfield.LoseMargin = 0
	g := New()
	g.ResetWith(testRuntime(), cfg)
	g.Step(input(core.ActionRestart))

	g.World().Ball.Place(mgl64.Vec3{0, 0, 500})
	res := g.Step(core.NewInputFrame())

	assert.Equal(t, core.PhasePlaying, res.State.Phase)
}

func TestBallEscapingFieldEndsRoundLost(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
	}{
		{"through the right wall", mgl64.Vec3{32, 0, 10}},
		{"through the left wall", mgl64.Vec3{-32, 0, 10}},
		{"through the top wall", mgl64.Vec3{0, 0, -57}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultRebatedorConfig()
			cfg.Playfield.LoseMargin = 0 // Walls apply regardless
			g := New()
			g.ResetWith(testRuntime(), cfg)
			g.Step(input(core.ActionRestart))

			g.World().Ball.Place(tt.pos)
			res := g.Step(core.NewInputFrame())

			assert.Equal(t, core.PhaseOver, res.State.Phase)
			assert.False(t, res.State.Won)
		})
	}
}

func TestStartAfterOverServesFreshRound(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))
	g.World().Grid.Bricks[3][3].destroy()
	g.World().Ball.Place(mgl64.Vec3{0, 0, 60})
	g.Step(core.NewInputFrame())
	require.Equal(t, core.PhaseOver, g.State().Phase)

	res := g.Step(input(core.ActionStart))

	assert.Equal(t, core.PhaseServing, res.State.Phase)
	assert.Zero(t, res.State.Score)
	assert.False(t, res.State.GameOver)
}

func TestPointerDrivesPaddle(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))

	g.Step(pointerAt(g, -10, 40))
	assert.InDelta(t, -5.0, anchorX(g), 1e-6, "first sample only primes the classifier")

	g.Step(pointerAt(g, 0, 40))
	assert.InDelta(t, 0.0, anchorX(g), 1e-6)

	g.Step(pointerAt(g, 20, 40))
	assert.InDelta(t, 2.5, anchorX(g), 1e-6, "clamped to the right limit")

	g.Step(pointerAt(g, 22, 40))
	assert.InDelta(t, 2.5, anchorX(g), 1e-6)

	g.Step(pointerAt(g, 1, 40))
	assert.InDelta(t, 1.0, anchorX(g), 1e-6)

	assertChained(t, g.World().Paddle)
}

func TestPointerIgnoredUntilPlaying(t *testing.T) {
	g := newTestGame(t)

	g.Step(pointerAt(g, -10, 40))
	g.Step(pointerAt(g, 0, 40))

	assert.InDelta(t, -5.0, anchorX(g), eps)
}

func TestPointerMissIgnored(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionRestart))

	g.Step(pointerAt(g, -10, 40))
	g.Step(pointerAt(g, 40, 40)) // Off the ground plane
	assert.InDelta(t, -5.0, anchorX(g), 1e-6)

	g.Step(pointerAt(g, 0, 40))
	assert.InDelta(t, 0.0, anchorX(g), 1e-6)
}

func TestFullscreenSurfacedToHost(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionFullscreen))

	assert.True(t, res.ToggleFullscreen)
	assert.Equal(t, core.PhaseIdle, res.State.Phase)
	assert.False(t, g.Step(core.NewInputFrame()).ToggleFullscreen)
}

// sweep returns a deterministic input script: a click, then a pointer
// swinging across the paddle line.
func sweep(g *Game, ticks int) []core.InputFrame {
	frames := make([]core.InputFrame, ticks)
	for i := range frames {
		frames[i] = pointerAt(g, 20*math.Sin(float64(i)*0.05), 40)
	}
	frames[0].Set(core.ActionStart)
	return frames
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)
	frames := sweep(g1, 600)

	for _, in := range frames {
		g1.Step(in.Clone())
		g2.Step(in.Clone())
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	assert.Equal(t, s1.Hash(), s2.Hash())
	assert.Equal(t, s1, s2)
}

func TestSnapshotReplay(t *testing.T) {
	g := newTestGame(t)
	frames := sweep(g, 400)
	for _, in := range frames[:200] {
		g.Step(in)
	}

	replay := newTestGame(t)
	replay.ApplySnapshot(g.Snapshot())
	snap := replay.Snapshot()
	require.Equal(t, g.Snapshot().Hash(), snap.Hash())

	// The pointer history is not part of a snapshot, so prime it
	g.Step(frames[199])
	replay.Step(frames[199])
	for _, in := range frames[200:] {
		g.Step(in)
		replay.Step(in)
	}

	s1, s2 := g.Snapshot(), replay.Snapshot()
	assert.Equal(t, s1.Hash(), s2.Hash())
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	for _, newGame := range []func() *Game{New, NewSplit} {
		g := newGame()
		g.ResetWith(testRuntime(), config.DefaultRebatedorConfig())
		frames := sweep(g, 3000)
		dead := make(map[*Brick]bool)

		for _, in := range frames {
			res := g.Step(in)

			for _, row := range g.World().Grid.Bricks {
				for _, b := range row {
					if !b.Alive {
						require.False(t, b.Visible, "dead brick %d,%d is visible", b.Row, b.Col)
						dead[b] = true
					} else {
						require.False(t, dead[b], "brick %d,%d revived", b.Row, b.Col)
					}
				}
			}
			assertChained(t, g.World().Paddle)
			assert.Equal(t, len(dead), res.State.Score)
			if res.State.Phase == core.PhasePlaying {
				require.True(t, g.World().Field.ContainsXZ(g.World().Ball.Position), "ball left the field at %v", g.World().Ball.Position)
			}

			if res.State.GameOver {
				break
			}
		}
	}
}

func TestSplitVariantUsesSplitGate(t *testing.T) {
	g := NewSplit()
	g.ResetWith(testRuntime(), config.DefaultRebatedorConfig())

	assert.True(t, g.World().Ball.split)
	assert.False(t, newTestGame(t).World().Ball.split)
}

func TestResetLoadsConfigAndPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "rebatedor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bricks:\n  rows: 2\n"), 0o600))

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(testRuntime())

	assert.Equal(t, 20, g.World().Grid.Total())
	assert.InDelta(t, 0.6, g.cfg.Ball.Step, eps)
	assert.True(t, g.cfg.Difficulty.Enabled)

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(testRuntime())
	assert.Equal(t, 50, g.World().Grid.Total(), "falls back to defaults")
}

func TestResizeRefitsCamera(t *testing.T) {
	g := newTestGame(t)
	assert.InDelta(t, 110.0*80*0.5/24/2, g.Camera().Right, 1e-9)

	g.Resize(200, 50)

	assert.InDelta(t, 110.0, g.Camera().Right, 1e-9)
	assert.InDelta(t, 55.0, g.Camera().Top, 1e-9)
}

func TestRenderDrawsSceneAndOverlay(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Click to start")
	assert.Contains(t, out, string(BrickChar))
	assert.Contains(t, out, string(EdgeChar))
	assert.Contains(t, out, string(PaddleChar))
	assert.NotContains(t, out, string(BallChar))

	g.Step(input(core.ActionRestart))
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, string(BallChar))
	assert.Contains(t, out, "Bricks: 50/50")
	assert.False(t, strings.Contains(out, "Click to start"))

	g.Step(input(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
