package rebatedor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/rebatedor/internal/config"
	"github.com/vovakirdan/rebatedor/internal/core"
)

// SetupEdges builds the static border walls, in creation order: top, bottom
// (if enabled), left, right. Each wall is one seamless slab Edges.Size thick,
// so a side wall always yields an X normal. The top and bottom walls span the
// playfield width; the side walls span from the outer face of the top wall to
// half a wall past the bottom of the plane.
func SetupEdges(cfg config.RebatedorConfig) []*GameObject {
	size := cfg.Edges.Size
	halfW, halfH := cfg.HalfWidth(), cfg.HalfHeight()
	color := core.ParseColor(cfg.Edges.Color)

	horizontal := mgl64.Vec3{2 * halfW, size, size}
	vertical := mgl64.Vec3{size, size, 2*halfH + size}

	edges := make([]*GameObject, 0, 4)
	if cfg.Edges.Top {
		edges = append(edges, NewGameObject(KindEdge, mgl64.Vec3{0, 0, -halfH}, horizontal, color))
	}
	if cfg.Edges.Bottom {
		edges = append(edges, NewGameObject(KindEdge, mgl64.Vec3{0, 0, halfH}, horizontal, color))
	}
	if cfg.Edges.Sides {
		edges = append(edges,
			NewGameObject(KindEdge, mgl64.Vec3{-halfW - size/2, 0, 0}, vertical, color),
			NewGameObject(KindEdge, mgl64.Vec3{halfW + size/2, 0, 0}, vertical, color),
		)
	}
	return edges
}
