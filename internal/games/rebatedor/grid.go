package rebatedor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/core"
)

// Brick is a single destructible block of the grid.
// Bricks are never removed, only deactivated, so iteration order is stable.
type Brick struct {
	GameObject
	Alive bool
	Row   int
	Col   int
}

// GridLayout places the grid on the playfield.
type GridLayout struct {
	Size    float64      // Edge length of each cubic brick
	OriginX float64      // Center X of column 0
	OriginZ float64      // Center Z of row 0
	Colors  []core.Color // One colour per row, cycling
}

// Grid owns the 2-D array of bricks [row][col].
type Grid struct {
	Rows   int
	Cols   int
	Bricks [][]*Brick
}

// SetupGrid creates rows*cols bricks in a rectangular layout, all alive.
func SetupGrid(rows, cols int, layout GridLayout) *Grid {
	g := &Grid{
		Rows:   rows,
		Cols:   cols,
		Bricks: make([][]*Brick, rows),
	}

	size := mgl64.Vec3{layout.Size, layout.Size, layout.Size}
	for row := range rows {
		color := core.ColorDefault
		if len(layout.Colors) > 0 {
			color = layout.Colors[row%len(layout.Colors)]
		}

		g.Bricks[row] = make([]*Brick, cols)
		for col := range cols {
			pos := mgl64.Vec3{
				layout.OriginX + float64(col)*layout.Size,
				0,
				layout.OriginZ + float64(row)*layout.Size,
			}
			g.Bricks[row][col] = &Brick{
				GameObject: *NewGameObject(KindBrick, pos, size, color),
				Alive:      true,
				Row:        row,
				Col:        col,
			}
		}
	}
	return g
}

// ResetGrid restores every brick to alive and visible.
func (g *Grid) ResetGrid() {
	for _, row := range g.Bricks {
		for _, b := range row {
			b.Alive = true
			b.Visible = true
		}
	}
}

// IsCleared reports whether no brick is alive.
// Scans row-major and stops at the first alive brick.
func (g *Grid) IsCleared() bool {
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Alive {
				return false
			}
		}
	}
	return true
}

// AliveCount returns the number of bricks still standing.
func (g *Grid) AliveCount() int {
	count := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Alive {
				count++
			}
		}
	}
	return count
}

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int {
	return g.Rows * g.Cols
}

// destroy deactivates a brick. Only the collision engine calls this.
func (b *Brick) destroy() {
	b.Alive = false
	b.Visible = false
}
