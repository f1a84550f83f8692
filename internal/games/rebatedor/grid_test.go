package rebatedor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rebatedor/internal/core"
)

func TestGridClearedOnlyWhenAllDead(t *testing.T) {
	for _, cols := range []int{1, 4, 10} {
		g := SetupGrid(5, cols, GridLayout{Size: 5, Colors: []core.Color{core.ColorYellow}})
		require.Equal(t, 5*cols, g.Total())

		assert.False(t, g.IsCleared(), "fresh %dx%d grid", 5, cols)

		for _, row := range g.Bricks {
			for _, b := range row {
				b.destroy()
			}
		}
		assert.True(t, g.IsCleared())
		assert.Zero(t, g.AliveCount())
	}
}

func TestGridSingleSurvivor(t *testing.T) {
	g := SetupGrid(5, 10, GridLayout{Size: 5})
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Row != 4 || b.Col != 9 {
				b.destroy()
			}
		}
	}

	assert.False(t, g.IsCleared())
	assert.Equal(t, 1, g.AliveCount())
}

func TestResetGridRevives(t *testing.T) {
	g := SetupGrid(2, 3, GridLayout{Size: 5})
	g.Bricks[0][1].destroy()
	g.Bricks[1][2].destroy()

	assert.False(t, g.Bricks[0][1].Visible, "dead bricks are hidden")

	g.ResetGrid()

	for _, row := range g.Bricks {
		for _, b := range row {
			assert.True(t, b.Alive)
			assert.True(t, b.Visible)
		}
	}
}

func TestGridColorsCyclePerRow(t *testing.T) {
	colors := []core.Color{core.ColorRed, core.ColorBlue}
	g := SetupGrid(3, 2, GridLayout{Size: 5, OriginX: -2.5, OriginZ: -10, Colors: colors})

	assert.Equal(t, core.ColorRed, g.Bricks[0][1].Color)
	assert.Equal(t, core.ColorBlue, g.Bricks[1][0].Color)
	assert.Equal(t, core.ColorRed, g.Bricks[2][0].Color)

	b := g.Bricks[2][1]
	assert.Equal(t, 2, b.Row)
	assert.Equal(t, 1, b.Col)
	assert.InDelta(t, 2.5, b.Position.X(), eps)
	assert.InDelta(t, 0.0, b.Position.Z(), eps)
}
