package entity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGrid(t *testing.T) *Grid {
	t.Helper()
	// 3x3 grid with walls in the corners
	g, err := ParseRows([]string{
		"#.#",
		"...",
		"#.#",
	}, 16)
	require.NoError(t, err)
	return g
}

func TestGrid_TileAt(t *testing.T) {
	g := createTestGrid(t)

	tests := []struct {
		name   string
		tx, ty int
		want   TileKind
	}{
		{"top-left wall", 0, 0, TileWall},
		{"top-center empty", 1, 0, TileEmpty},
		{"center empty", 1, 1, TileEmpty},
		{"bottom-right wall", 2, 2, TileWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.TileAt(tt.tx, tt.ty))
		})
	}
}

func TestGrid_OutOfBoundsIsEmpty(t *testing.T) {
	g := createTestGrid(t)

	outOfBoundsCases := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 3, 0},
		{"y too large", 0, 3},
		{"both negative", -1, -1},
	}

	for _, tt := range outOfBoundsCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, g.InBounds(tt.tx, tt.ty))
			assert.Equal(t, TileEmpty, g.TileAt(tt.tx, tt.ty), "out of bounds should read as empty")
			assert.True(t, g.IsEmpty(tt.tx, tt.ty))
		})
	}
}

func TestGrid_SetTile(t *testing.T) {
	g := createTestGrid(t)

	assert.True(t, g.SetTile(1, 1, TileWall))
	assert.Equal(t, TileWall, g.TileAt(1, 1))

	assert.True(t, g.SetTile(0, 0, TileEmpty))
	assert.True(t, g.IsEmpty(0, 0))

	// Out-of-bounds writes are ignored
	assert.False(t, g.SetTile(5, 5, TileWall))
	assert.False(t, g.SetTile(-1, 0, TileWall))
	assert.Equal(t, []string{"..#", ".#.", "#.#"}, g.Rows())
}

func TestGrid_TileOfAndBounds(t *testing.T) {
	g := createTestGrid(t)

	assert.Equal(t, V(1, 2), g.TileOf(V(16, 40)))
	assert.Equal(t, V(-1, 0), g.TileOf(V(-3, 0)))
	assert.Equal(t, Rect{W: 48, H: 48}, g.Bounds())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 16, g.TileSize())
}

func TestParseRows_Errors(t *testing.T) {
	_, err := ParseRows(nil, 16)
	assert.Error(t, err)

	_, err = ParseRows([]string{"..", "..."}, 16)
	assert.ErrorContains(t, err, "row 1")

	_, err = ParseRows([]string{".x"}, 16)
	assert.ErrorContains(t, err, "unknown glyph")

	_, err = ParseRows([]string{".."}, 0)
	assert.Error(t, err)
}

func TestGrid_Dump(t *testing.T) {
	g := createTestGrid(t)

	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))
	assert.Equal(t, "#.#\n...\n#.#\n", buf.String())

	// Dump output parses back to the same layout
	again, err := ParseRows(g.Rows(), 16)
	require.NoError(t, err)
	assert.Equal(t, g, again)
}

func TestLevels_Compiled(t *testing.T) {
	assert.Equal(t, []string{"default", "small"}, LevelNames())

	def, err := ParseRows(Levels["default"], DefaultTileSize)
	require.NoError(t, err)
	assert.Equal(t, 10, def.Width())
	assert.Equal(t, 10, def.Height())
	for x := 0; x < 10; x++ {
		assert.Equal(t, TileWall, def.TileAt(x, 4), "floor row at x=%d", x)
	}

	small, err := ParseRows(Levels["small"], DefaultTileSize)
	require.NoError(t, err)
	assert.Equal(t, 5, small.Width())
	assert.Equal(t, []TileKind{TileWall, TileWall, TileWall, TileEmpty, TileEmpty},
		[]TileKind{small.TileAt(0, 3), small.TileAt(1, 3), small.TileAt(2, 3), small.TileAt(3, 3), small.TileAt(4, 3)})
}

func TestTileKind_String(t *testing.T) {
	assert.Equal(t, TileKind(0), TileEmpty)
	assert.Equal(t, TileKind(1), TileWall)
	assert.Equal(t, "Wall", TileWall.String())
	assert.Equal(t, "Unknown", TileKind(7).String())
}
