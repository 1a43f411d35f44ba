package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
	"github.com/younwookim/mg/internal/infrastructure/logger"
)

// Level is a TileMap that also knows its own extent
type Level interface {
	TileMap
	InBounds(tx, ty int) bool
}

// CombatSystem spawns projectiles and runs their Active/Poof/Dead lifecycle
type CombatSystem struct {
	config      *config.WeaponConfig
	level       Level
	projectiles *entity.Pool[entity.Projectile]
	log         *logrus.Entry

	// Event callbacks
	OnImpact func(pos entity.Vec2i)
}

// NewCombatSystem creates a combat system over a projectile pool
func NewCombatSystem(cfg *config.WeaponConfig, level Level, projectiles *entity.Pool[entity.Projectile]) *CombatSystem {
	return &CombatSystem{
		config:      cfg,
		level:       level,
		projectiles: projectiles,
		log:         logger.For("combat"),
	}
}

// SetConfig swaps weapon tuning
func (s *CombatSystem) SetConfig(cfg *config.WeaponConfig) {
	s.config = cfg
}

// SetLevel swaps the level projectiles collide with
func (s *CombatSystem) SetLevel(level Level) {
	s.level = level
}

// Shoot fires from the body's position in its facing direction unless its
// weapon is cooling down. The cooldown restarts even when the pool is full
// and the shot is dropped.
func (s *CombatSystem) Shoot(b *entity.Body) (entity.Handle, bool) {
	if b.WeaponCooldown > 0 {
		return entity.NoHandle, false
	}
	b.WeaponCooldown = s.config.Cooldown

	vel := entity.V(b.FacingSign()*s.config.ProjectileSpeed, 0)
	return s.Spawn(b.Pos, vel)
}

// Spawn activates the lowest free projectile slot
func (s *CombatSystem) Spawn(pos, vel entity.Vec2i) (entity.Handle, bool) {
	h, p, ok := s.projectiles.Acquire()
	if !ok {
		s.log.Debug("projectile pool full, shot dropped")
		return entity.NoHandle, false
	}
	p.Launch(pos, vel)
	s.log.WithFields(logrus.Fields{
		"slot": h,
		"pos":  pos,
		"vel":  vel,
	}).Debug("projectile spawned")
	return h, true
}

// Update advances every projectile by one tick.
// Active projectiles move and turn to Poof on entering a wall or leaving the
// level. Poof projectiles die when their poof animation completes a cycle.
func (s *CombatSystem) Update(dt time.Duration) {
	ts := s.level.TileSize()
	s.projectiles.Each(func(h entity.Handle, p *entity.Projectile) {
		switch p.State {
		case entity.ProjectileActive:
			p.ActiveAnim.Update(dt)
			p.Pos = p.Pos.Add(p.Vel)

			tile := p.Pos.FloorDiv(ts)
			if !s.level.InBounds(tile.X, tile.Y) || !s.level.IsEmpty(tile.X, tile.Y) {
				p.Impact()
				s.log.WithFields(logrus.Fields{"slot": h, "tile": tile}).Debug("projectile poof")
				if s.OnImpact != nil {
					s.OnImpact(p.Pos)
				}
			}
		case entity.ProjectilePoof:
			if p.PoofAnim.Update(dt) {
				p.State = entity.ProjectileDead
				s.projectiles.Release(h)
			}
		default:
			s.projectiles.Release(h)
		}
	})
}
