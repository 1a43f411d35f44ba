package config

import (
	"fmt"
	"time"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Weapon  WeaponConfig  `yaml:"weapon"`
	Pools   PoolsConfig   `yaml:"pools"`
	Stage   StageConfig   `yaml:"stage"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// TickDuration is the simulated time of one update
func (d DisplayConfig) TickDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

type PhysicsConfig struct {
	TileSize        int       `yaml:"tileSize"`
	Gravity         VecConfig `yaml:"gravity"`
	ImpactThreshold int       `yaml:"impactThreshold"` // pixels of correction that stop motion on an axis
}

type VecConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type PlayerConfig struct {
	Speed        int       `yaml:"speed"`        // pixels per tick
	JumpVelocity int       `yaml:"jumpVelocity"` // pixels per tick, upward
	TexboxSize   int       `yaml:"texboxSize"`
	HitboxSize   int       `yaml:"hitboxSize"`
	HitboxTrim   int       `yaml:"hitboxTrim"` // narrows the hitbox width
	Spawn        VecConfig `yaml:"spawn"`
}

type EnemyConfig struct {
	Enabled  bool      `yaml:"enabled"`
	Spawn    VecConfig `yaml:"spawn"`
	AutoFire bool      `yaml:"autoFire"`
}

type WeaponConfig struct {
	Cooldown        int `yaml:"cooldown"` // ticks
	ProjectileSpeed int `yaml:"projectileSpeed"`
}

type PoolsConfig struct {
	Entities    int `yaml:"entities"`
	Projectiles int `yaml:"projectiles"`
}

type StageConfig struct {
	Level string   `yaml:"level"`
	Rows  []string `yaml:"rows"` // inline layout, overrides Level when set
}

// AssetsConfig paths are relative to the asset root (embedded or -assets)
type AssetsConfig struct {
	Tiles      TilesetConfig `yaml:"tiles"`
	Walking    SheetConfig   `yaml:"walking"`
	IdleFrame  int           `yaml:"idleFrame"`
	Projectile SheetConfig   `yaml:"projectile"`
	Poof       SheetConfig   `yaml:"poof"`
	Font       FontConfig    `yaml:"font"`
}

type TilesetConfig struct {
	Path   string     `yaml:"path"`
	Top    RectConfig `yaml:"top"`
	Ground RectConfig `yaml:"ground"`
}

type SheetConfig struct {
	Path            string `yaml:"path"`
	Frames          int    `yaml:"frames"`
	FrameDurationMs int    `yaml:"frameDurationMs"`
}

// FrameDuration returns the per-frame duration
func (s SheetConfig) FrameDuration() time.Duration {
	return time.Duration(s.FrameDurationMs) * time.Millisecond
}

type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type FontConfig struct {
	Path string  `yaml:"path"` // empty uses the built-in Go Regular face
	Size float64 `yaml:"size"`
}

type DebugConfig struct {
	Enabled   bool `yaml:"enabled"`
	ProbeSize int  `yaml:"probeSize"`
	LineGap   int  `yaml:"lineGap"`
}

// Validate rejects configurations the simulation cannot run with
func (c *GameConfig) Validate() error {
	if c.Physics.TileSize <= 0 {
		return fmt.Errorf("physics.tileSize must be positive, got %d", c.Physics.TileSize)
	}
	if c.Physics.ImpactThreshold < 0 {
		return fmt.Errorf("physics.impactThreshold must not be negative, got %d", c.Physics.ImpactThreshold)
	}
	if c.Pools.Entities <= 0 {
		return fmt.Errorf("pools.entities must be positive, got %d", c.Pools.Entities)
	}
	if c.Pools.Projectiles <= 0 {
		return fmt.Errorf("pools.projectiles must be positive, got %d", c.Pools.Projectiles)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate)
	}
	for name, sheet := range map[string]SheetConfig{
		"walking":    c.Assets.Walking,
		"projectile": c.Assets.Projectile,
		"poof":       c.Assets.Poof,
	} {
		if sheet.Frames <= 0 {
			return fmt.Errorf("assets.%s.frames must be positive, got %d", name, sheet.Frames)
		}
	}
	if c.Assets.IdleFrame < 0 || c.Assets.IdleFrame >= c.Assets.Walking.Frames {
		return fmt.Errorf("assets.idleFrame %d out of range [0,%d)", c.Assets.IdleFrame, c.Assets.Walking.Frames)
	}
	return nil
}
