package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mg/internal/domain/entity"
)

func mustGrid(t *testing.T, tileSize int, rows ...string) *entity.Grid {
	t.Helper()
	g, err := entity.ParseRows(rows, tileSize)
	require.NoError(t, err)
	return g
}

// wallSet is a TileMap backed by an explicit set of solid tiles
type wallSet struct {
	size  int
	walls map[entity.Vec2i]bool
}

func (w wallSet) IsEmpty(tx, ty int) bool { return !w.walls[entity.V(tx, ty)] }
func (w wallSet) TileSize() int           { return w.size }

func TestResolvePoint(t *testing.T) {
	lone := mustGrid(t, 10,
		"....",
		".#..",
		"....",
	)

	tests := []struct {
		name string
		grid *entity.Grid
		p    entity.Vec2i
		want entity.Vec2i
	}{
		{"empty tile is untouched", lone, entity.V(5, 5), entity.V(5, 5)},
		{"out of bounds is untouched", lone, entity.V(-35, 120), entity.V(-35, 120)},
		{"nearest side left", lone, entity.V(12, 15), entity.V(10, 15)},
		{"nearest side top", lone, entity.V(18, 11), entity.V(18, 10)},
		{"nearest side right", lone, entity.V(19, 14), entity.V(20, 14)},
		{"nearest side bottom", lone, entity.V(13, 18), entity.V(13, 20)},
		{"center ties resolve left", lone, entity.V(15, 15), entity.V(10, 15)},
		{"left beats tied top", lone, entity.V(11, 11), entity.V(10, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePoint(tt.grid, tt.p))
		})
	}
}

func TestResolvePoint_Idempotent(t *testing.T) {
	g := mustGrid(t, 10,
		"...",
		".#.",
		"...",
	)

	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			p := entity.V(x, y)
			once := ResolvePoint(g, p)
			assert.Equal(t, once, ResolvePoint(g, once), "point %v", p)
		}
	}
}

func TestResolvePoint_BlockedNeighborInflatesScore(t *testing.T) {
	g := mustGrid(t, 10, "##.")

	// Left is 1px away but leads into another wall; top and bottom leave the
	// grid at 5px and tie, so top wins.
	assert.Equal(t, entity.V(11, 0), ResolvePoint(g, entity.V(11, 5)))
}

func TestResolvePoint_CornerEscape(t *testing.T) {
	// The middle tile's two edges toward the corner are blocked; the
	// diagonal neighbor is open, so the corner wins.
	tests := []struct {
		name string
		rows []string
		p    entity.Vec2i
		want entity.Vec2i
	}{
		{"top-left", []string{".#.", "##.", "..."}, entity.V(11, 11), entity.V(10, 10)},
		{"top-right", []string{".#.", ".##", "..."}, entity.V(18, 11), entity.V(20, 10)},
		{"bottom-left", []string{"...", "##.", ".#."}, entity.V(11, 18), entity.V(10, 20)},
		{"bottom-right", []string{"...", ".##", ".#."}, entity.V(18, 18), entity.V(20, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, 10, tt.rows...)
			assert.Equal(t, tt.want, ResolvePoint(g, tt.p))
		})
	}
}

func TestResolvePoint_Enclosed(t *testing.T) {
	g := mustGrid(t, 10,
		"#####",
		"#####",
		"#####",
		"#####",
		"#####",
	)

	// Every exit is blocked twice; edges still beat corners and left is first.
	assert.Equal(t, entity.V(20, 25), ResolvePoint(g, entity.V(25, 25)))
}

func TestResolvePoint_AnyTileMap(t *testing.T) {
	m := wallSet{size: 8, walls: map[entity.Vec2i]bool{
		entity.V(-1, -1): true,
		entity.V(0, -1):  true,
	}}

	// Negative coordinates floor into tile (-1,-1); right leads into (0,-1).
	assert.Equal(t, entity.V(-2, 0), ResolvePoint(m, entity.V(-2, -1)))
	assert.Equal(t, entity.V(3, 3), ResolvePoint(m, entity.V(3, 3)))
}

func newBoxBody(pos entity.Vec2i, hitbox entity.Rect) *entity.Body {
	idle := entity.NewAnimation(1, 0)
	walking := entity.NewAnimation(1, 0)
	b := entity.NewBody(pos, hitbox, hitbox, idle, walking)
	return &b
}

func TestResolveBox(t *testing.T) {
	floor := mustGrid(t, 10,
		"...",
		"...",
		"###",
	)

	t.Run("landing stops vertical motion", func(t *testing.T) {
		b := newBoxBody(entity.V(12, 17), entity.Rect{W: 8, H: 8})
		b.Vel = entity.V(2, 7)

		d := ResolveBox(floor, b, DefaultImpactThreshold)

		// The bottom-right corner is probed after the mesh moved up, so the
		// correction is applied once.
		assert.Equal(t, entity.V(0, -5), d)
		assert.Equal(t, entity.V(12, 12), b.Pos)
		assert.Equal(t, entity.V(2, 0), b.Vel)
	})

	t.Run("small correction keeps velocity", func(t *testing.T) {
		b := newBoxBody(entity.V(12, 14), entity.Rect{W: 8, H: 8})
		b.Vel = entity.V(0, 2)

		d := ResolveBox(floor, b, DefaultImpactThreshold)

		assert.Equal(t, entity.V(0, -2), d)
		assert.Equal(t, entity.V(12, 12), b.Pos)
		assert.Equal(t, 2, b.Vel.Y)
	})

	t.Run("wall stops horizontal motion", func(t *testing.T) {
		g := mustGrid(t, 10, "..#")
		b := newBoxBody(entity.V(20, 3), entity.Rect{Y: 2, W: 4, H: 4})
		b.Vel = entity.V(4, 1)

		d := ResolveBox(g, b, DefaultImpactThreshold)

		assert.Equal(t, entity.V(-4, 0), d)
		assert.Equal(t, entity.V(16, 3), b.Pos)
		assert.Equal(t, entity.V(0, 1), b.Vel)
	})

	t.Run("free box is untouched", func(t *testing.T) {
		b := newBoxBody(entity.V(2, 2), entity.Rect{W: 5, H: 5})
		b.Vel = entity.V(1, 1)

		d := ResolveBox(floor, b, DefaultImpactThreshold)

		assert.Equal(t, entity.Vec2i{}, d)
		assert.Equal(t, entity.V(2, 2), b.Pos)
		assert.Equal(t, entity.V(1, 1), b.Vel)
	})
}
