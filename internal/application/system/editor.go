package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/mg/internal/application/state"
	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/logger"
)

// Editor paints and erases walls with the mouse while debug mode is on.
// Pressing on an empty tile starts a wall stroke, pressing on a wall starts
// an erase stroke; dragging continues the stroke until release.
type Editor struct {
	state state.EditState
	log   *logrus.Entry
}

// NewEditor creates an idle editor
func NewEditor() *Editor {
	return &Editor{log: logger.For("editor")}
}

// State returns the current paint mode
func (e *Editor) State() state.EditState {
	return e.state
}

// Press starts a stroke at tile. Out-of-bounds presses change nothing.
func (e *Editor) Press(grid *entity.Grid, tile entity.Vec2i) bool {
	if !grid.InBounds(tile.X, tile.Y) {
		return false
	}
	if grid.IsEmpty(tile.X, tile.Y) {
		e.state = state.EditCreate
	} else {
		e.state = state.EditDelete
	}
	return e.paint(grid, tile)
}

// Drag continues the current stroke onto tile
func (e *Editor) Drag(grid *entity.Grid, tile entity.Vec2i) bool {
	if !e.state.Painting() || !grid.InBounds(tile.X, tile.Y) {
		return false
	}
	return e.paint(grid, tile)
}

// Release ends the stroke
func (e *Editor) Release() {
	e.state = state.EditIdle
}

// Handle applies one tick of mouse input. Presses only start strokes in
// debug mode; a stroke already in progress keeps painting and a release
// always ends it.
func (e *Editor) Handle(grid *entity.Grid, input InputState, debug bool) {
	tile := grid.TileOf(entity.V(input.MouseX, input.MouseY))
	if input.MouseMoved {
		e.Drag(grid, tile)
	}
	if input.MousePressed && debug {
		e.Press(grid, tile)
	}
	if input.MouseReleased {
		e.Release()
	}
}

func (e *Editor) paint(grid *entity.Grid, tile entity.Vec2i) bool {
	kind := entity.TileWall
	if e.state == state.EditDelete {
		kind = entity.TileEmpty
	}
	if grid.TileAt(tile.X, tile.Y) == kind {
		return false
	}
	grid.SetTile(tile.X, tile.Y, kind)
	e.log.WithFields(logrus.Fields{
		"tile": tile,
		"kind": kind,
		"mode": e.state,
	}).Debug("tile painted")
	return true
}

// Probe is the debug overlay's view of the cursor
type Probe struct {
	Mouse    entity.Vec2i
	Resolved entity.Vec2i
	Marker   entity.Rect // square of half-size around Resolved
	Tile     entity.Rect // the tile under Mouse
}

// NewProbe resolves the cursor against the map the way a body corner would be
func NewProbe(m TileMap, mouse entity.Vec2i, size int) Probe {
	p := ResolvePoint(m, mouse)
	ts := m.TileSize()
	tile := mouse.FloorDiv(ts).Scale(ts)

	return Probe{
		Mouse:    mouse,
		Resolved: p,
		Marker:   entity.Rect{X: p.X - size, Y: p.Y - size, W: size * 2, H: size * 2},
		Tile:     entity.Rect{X: tile.X, Y: tile.Y, W: ts, H: ts},
	}
}
