package ecs

import (
	"errors"
	"fmt"

	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

// ErrPoolFull is returned when no body slot is free
var ErrPoolFull = errors.New("body pool is full")

// BodyTemplate holds what every spawned body copies
type BodyTemplate struct {
	Hitbox  entity.Rect
	Texbox  entity.Rect
	Idle    entity.Animation
	Walking entity.Animation
}

// PlayerTemplate builds the body template shared by the player and NPCs.
// Both boxes are centered on the body position; the hitbox is narrowed by
// the configured trim so walls are met at the feet rather than the sprite edge.
func PlayerTemplate(player *config.PlayerConfig, assets *config.AssetsConfig) BodyTemplate {
	hitbox := entity.CenteredSquare(player.HitboxSize)
	hitbox.W -= player.HitboxTrim

	return BodyTemplate{
		Hitbox:  hitbox,
		Texbox:  entity.CenteredSquare(player.TexboxSize),
		Idle:    entity.NewAnimation(1, assets.Walking.FrameDuration()),
		Walking: entity.NewAnimation(assets.Walking.Frames, assets.Walking.FrameDuration()),
	}
}

// ProjectileTemplate returns the prototype every projectile slot starts from
func ProjectileTemplate(assets *config.AssetsConfig) entity.Projectile {
	return entity.NewProjectile(
		entity.NewAnimation(assets.Projectile.Frames, assets.Projectile.FrameDuration()),
		entity.NewAnimation(assets.Poof.Frames, assets.Poof.FrameDuration()),
	)
}

// World is the whole simulation state: the level grid and the two
// fixed-capacity pools. Nothing outside it is mutated by a tick.
type World struct {
	Grid        *entity.Grid
	Bodies      *entity.Pool[entity.Body]
	Projectiles *entity.Pool[entity.Projectile]

	// Singleton references
	PlayerID entity.Handle
	EnemyID  entity.Handle

	template BodyTemplate
}

// NewWorld creates a world with empty pools sized from cfg
func NewWorld(grid *entity.Grid, cfg *config.GameConfig) *World {
	projectile := ProjectileTemplate(&cfg.Assets)
	return &World{
		Grid:   grid,
		Bodies: entity.NewPool[entity.Body](cfg.Pools.Entities, nil),
		Projectiles: entity.NewPool(cfg.Pools.Projectiles, func(int) entity.Projectile {
			return projectile
		}),
		PlayerID: entity.NoHandle,
		EnemyID:  entity.NoHandle,
		template: PlayerTemplate(&cfg.Player, &cfg.Assets),
	}
}

// SpawnBody claims the lowest free body slot and places a live body at pos
func (w *World) SpawnBody(pos entity.Vec2i, tpl BodyTemplate) (entity.Handle, error) {
	h, b, ok := w.Bodies.Acquire()
	if !ok {
		return entity.NoHandle, ErrPoolFull
	}
	*b = entity.NewBody(pos, tpl.Hitbox, tpl.Texbox, tpl.Idle, tpl.Walking)
	return h, nil
}

// DestroyBody marks the body dead and frees its slot
func (w *World) DestroyBody(h entity.Handle) {
	if b := w.Bodies.Get(h); b != nil {
		b.State = entity.BodyDead
	}
	w.Bodies.Release(h)
	if h == w.PlayerID {
		w.PlayerID = entity.NoHandle
	}
	if h == w.EnemyID {
		w.EnemyID = entity.NoHandle
	}
}

// CreatePlayer creates the player body
func (w *World) CreatePlayer(pos entity.Vec2i) (entity.Handle, error) {
	h, err := w.SpawnBody(pos, w.template)
	if err != nil {
		return h, err
	}
	w.PlayerID = h
	return h, nil
}

// CreateEnemy creates the NPC body. It shares the player's template.
func (w *World) CreateEnemy(pos entity.Vec2i) (entity.Handle, error) {
	h, err := w.SpawnBody(pos, w.template)
	if err != nil {
		return h, err
	}
	w.EnemyID = h
	return h, nil
}

// Populate spawns the player, and the NPC when enabled, at their
// configured spawn points
func (w *World) Populate(cfg *config.GameConfig) error {
	if _, err := w.CreatePlayer(entity.V(cfg.Player.Spawn.X, cfg.Player.Spawn.Y)); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	if !cfg.Enemy.Enabled {
		return nil
	}
	if _, err := w.CreateEnemy(entity.V(cfg.Enemy.Spawn.X, cfg.Enemy.Spawn.Y)); err != nil {
		return fmt.Errorf("failed to create enemy: %w", err)
	}
	return nil
}

// Player returns the player body, nil if there is none
func (w *World) Player() *entity.Body {
	return w.Bodies.Get(w.PlayerID)
}

// Enemy returns the NPC body, nil if there is none
func (w *World) Enemy() *entity.Body {
	return w.Bodies.Get(w.EnemyID)
}

// SetTemplate replaces the template used by later spawns
func (w *World) SetTemplate(tpl BodyTemplate) {
	w.template = tpl
}

// Clear kills every body and projectile
func (w *World) Clear() {
	w.Bodies.Each(func(h entity.Handle, _ *entity.Body) {
		w.DestroyBody(h)
	})
	w.Projectiles.Each(func(h entity.Handle, p *entity.Projectile) {
		p.State = entity.ProjectileDead
		w.Projectiles.Release(h)
	})
}

// CountBodies returns the number of live bodies
func (w *World) CountBodies() int {
	return w.Bodies.Len()
}

// CountProjectiles returns the number of projectiles in flight or poofing
func (w *World) CountProjectiles() int {
	return w.Projectiles.Len()
}
