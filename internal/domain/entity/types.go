package entity

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// DefaultTileSize is the edge length of a tile in pixels.
const DefaultTileSize = 64

// TileKind represents the type of a tile
type TileKind int

const (
	TileEmpty TileKind = iota
	TileWall
)

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Glyphs used by the row format of levels.
const (
	GlyphEmpty = '.'
	GlyphWall  = '#'
)

// Grid is the level's tile data. The world outside the grid is open:
// every query with out-of-range coordinates reads as TileEmpty.
type Grid struct {
	width    int
	height   int
	tileSize int
	tiles    []TileKind
}

// NewGrid creates an all-empty grid.
func NewGrid(width, height, tileSize int) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]TileKind, width*height),
	}
}

// ParseRows builds a grid from rows of glyphs ('#' wall, '.' empty).
func ParseRows(rows []string, tileSize int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %d", tileSize)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("level has no rows")
	}

	width := len(rows[0])
	g := NewGrid(width, len(rows), tileSize)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case GlyphEmpty:
			case GlyphWall:
				g.tiles[y*width+x] = TileWall
			default:
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y, x, row[x])
			}
		}
	}
	return g, nil
}

// Width returns the grid width in tiles
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles
func (g *Grid) Height() int { return g.height }

// TileSize returns the tile edge length in pixels
func (g *Grid) TileSize() int { return g.tileSize }

// Bounds returns the pixel rectangle covered by the grid
func (g *Grid) Bounds() Rect {
	return Rect{W: g.width * g.tileSize, H: g.height * g.tileSize}
}

// InBounds reports whether the tile coordinate lies inside the grid
func (g *Grid) InBounds(tx, ty int) bool {
	return 0 <= tx && tx < g.width && 0 <= ty && ty < g.height
}

// TileAt returns the tile at the given tile coordinates
func (g *Grid) TileAt(tx, ty int) TileKind {
	if !g.InBounds(tx, ty) {
		return TileEmpty
	}
	return g.tiles[ty*g.width+tx]
}

// IsEmpty reports whether the tile is passable. Out-of-bounds is passable.
func (g *Grid) IsEmpty(tx, ty int) bool {
	return g.TileAt(tx, ty) == TileEmpty
}

// SetTile writes one cell. Out-of-bounds writes are ignored and return false.
func (g *Grid) SetTile(tx, ty int, kind TileKind) bool {
	if !g.InBounds(tx, ty) {
		return false
	}
	g.tiles[ty*g.width+tx] = kind
	return true
}

// TileOf returns the tile coordinate containing a pixel position
func (g *Grid) TileOf(p Vec2i) Vec2i {
	return p.FloorDiv(g.tileSize)
}

// Rows renders the grid in the row format accepted by ParseRows
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	buf := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == TileWall {
				buf[x] = GlyphWall
			} else {
				buf[x] = GlyphEmpty
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// Dump writes the grid rows to w, one per line
func (g *Grid) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return fmt.Errorf("failed to write level: %w", err)
		}
	}
	return bw.Flush()
}

// Levels holds the compiled-in level layouts by name.
var Levels = map[string][]string{
	"default": {
		"..........",
		"..........",
		"..#...#...",
		".#..#.#.#.",
		"##########",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	},
	"small": {
		".....",
		".....",
		".....",
		"###..",
		".....",
	},
}

// LevelNames returns the registered level names in sorted order
func LevelNames() []string {
	names := make([]string, 0, len(Levels))
	for name := range Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
