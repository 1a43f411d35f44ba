// Package game adapts a scene stack of one to ebiten's run loop.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/mg/internal/application/scene"
	"github.com/younwookim/mg/internal/infrastructure/logger"
)

// Game runs the active scene at a fixed simulated tick.
type Game struct {
	active scene.Scene
	width  int
	height int
	tick   time.Duration
	log    *logrus.Entry
}

// New enters first and returns a Game drawing at width x height logical pixels.
func New(first scene.Scene, width, height int) *Game {
	g := &Game{
		width:  width,
		height: height,
		tick:   time.Second / 60,
		log:    logger.For("game"),
	}
	g.switchTo(first)
	return g
}

// SetDT changes the duration each Update simulates.
func (g *Game) SetDT(dt time.Duration) {
	g.tick = dt
}

// Update advances the active scene by one tick. ebiten.Termination ends the
// run after the scene's OnExit; other errors abort without it.
func (g *Game) Update() error {
	next, err := g.active.Update(g.tick)
	switch {
	case errors.Is(err, ebiten.Termination):
		g.active.OnExit()
		return err
	case err != nil:
		return fmt.Errorf("scene update: %w", err)
	case next != nil:
		g.active.OnExit()
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(s scene.Scene) {
	g.log.WithField("scene", fmt.Sprintf("%T", s)).Debug("entering scene")
	g.active = s
	s.OnEnter()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.active.Draw(screen)
}

// Layout ignores the window size; ebiten scales the fixed logical screen.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
