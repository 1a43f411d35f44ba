package system

import (
	"time"

	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

// PhysicsSystem moves bodies under gravity and resolves them against the grid
type PhysicsSystem struct {
	config *config.PhysicsConfig
	grid   TileMap
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, grid TileMap) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		grid:   grid,
	}
}

// SetConfig swaps the tuning used from the next step on
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// SetGrid swaps the tile map bodies collide with
func (s *PhysicsSystem) SetGrid(grid TileMap) {
	s.grid = grid
}

// Gravity returns the per-tick velocity change
func (s *PhysicsSystem) Gravity() entity.Vec2i {
	return entity.V(s.config.Gravity.X, s.config.Gravity.Y)
}

// Step advances one body by a tick: gravity into velocity, velocity into
// position, box resolution, weapon cooldown and animation.
// Dead bodies are skipped. The collision displacement is returned.
func (s *PhysicsSystem) Step(b *entity.Body, dt time.Duration) entity.Vec2i {
	if !b.IsAlive() {
		return entity.Vec2i{}
	}

	b.Vel = b.Vel.Add(s.Gravity())
	b.Pos = b.Pos.Add(b.Vel)

	d := ResolveBox(s.grid, b, s.config.ImpactThreshold)

	if b.WeaponCooldown > 0 {
		b.WeaponCooldown--
	}
	b.CurrentAnimation().Update(dt)

	return d
}

// Update steps every live body in slot order
func (s *PhysicsSystem) Update(bodies *entity.Pool[entity.Body], dt time.Duration) {
	bodies.Each(func(_ entity.Handle, b *entity.Body) {
		s.Step(b, dt)
	})
}
