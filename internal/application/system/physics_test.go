package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

const testTick = time.Second / 60

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		TileSize:        64,
		Gravity:         config.VecConfig{X: 0, Y: 1},
		ImpactThreshold: DefaultImpactThreshold,
	}
}

func createSmallGrid(t *testing.T) *entity.Grid {
	t.Helper()
	g, err := entity.ParseRows(entity.Levels["small"], 64)
	require.NoError(t, err)
	return g
}

func TestNewPhysicsSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()
	grid := createSmallGrid(t)

	sys := NewPhysicsSystem(cfg, grid)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Equal(t, entity.V(0, 1), sys.Gravity())
}

func TestPhysicsSystem_StepInFreeSpace(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	b := newBoxBody(entity.V(10, 10), entity.Rect{W: 48, H: 48})

	d := sys.Step(b, testTick)

	assert.Equal(t, entity.Vec2i{}, d)
	assert.Equal(t, entity.V(0, 1), b.Vel, "velocity changes by exactly gravity")
	assert.Equal(t, entity.V(10, 11), b.Pos, "position changes by the new velocity")
}

func TestPhysicsSystem_StepSkipsDead(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	b := newBoxBody(entity.V(10, 10), entity.Rect{W: 48, H: 48})
	b.State = entity.BodyDead
	b.WeaponCooldown = 5

	sys.Step(b, testTick)

	assert.Equal(t, entity.V(10, 10), b.Pos)
	assert.Equal(t, entity.Vec2i{}, b.Vel)
	assert.Equal(t, 5, b.WeaponCooldown)
}

func TestPhysicsSystem_StepTimers(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	walking := entity.NewAnimation(4, 100*time.Millisecond)
	b := entity.NewBody(entity.V(10, 10), entity.Rect{W: 8, H: 8}, entity.Rect{W: 8, H: 8}, entity.NewAnimation(1, 0), walking)
	b.Move(2)
	b.WeaponCooldown = 1

	sys.Step(&b, 100*time.Millisecond)
	assert.Equal(t, 0, b.WeaponCooldown)
	assert.Equal(t, 1, b.Walking.Frame())

	sys.Step(&b, 50*time.Millisecond)
	assert.Equal(t, 0, b.WeaponCooldown, "cooldown does not go negative")
	assert.Equal(t, 1, b.Walking.Frame(), "half a frame duration does not advance")
	assert.Equal(t, 0, b.Idle.Frame(), "only the current animation advances")
}

func TestPhysicsSystem_FallingBoxComesToRest(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	b := newBoxBody(entity.V(0, 0), entity.Rect{W: 48, H: 48})
	floorY := 3 * 64

	landed := false
	for tick := 0; tick < 100; tick++ {
		sys.Step(b, testTick)
		if b.Vel.Y == 0 && b.WorldHitbox().Max().Y == floorY {
			landed = true
			break
		}
	}
	require.True(t, landed, "box should land on row 3, ended at %v vel %v", b.Pos, b.Vel)

	// Resting contact: gravity keeps pushing, resolution keeps the bottom on the floor
	for tick := 0; tick < 30; tick++ {
		sys.Step(b, testTick)
		assert.Equal(t, floorY, b.WorldHitbox().Max().Y, "tick %d", tick)
		assert.Equal(t, 0, b.Pos.X)
	}
}

func TestPhysicsSystem_Update(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	pool := entity.NewPool(3, func(int) entity.Body {
		return entity.NewBody(entity.V(200, 0), entity.Rect{W: 8, H: 8}, entity.Rect{W: 8, H: 8}, entity.NewAnimation(1, 0), entity.NewAnimation(1, 0))
	})

	h0, _, ok := pool.Acquire()
	require.True(t, ok)
	h1, _, ok := pool.Acquire()
	require.True(t, ok)
	pool.Release(h0)

	sys.Update(pool, testTick)

	assert.Equal(t, entity.V(200, 1), pool.Get(h1).Pos)
	released := pool.Get(h0)
	assert.Nil(t, released, "released slots are not stepped")
}

func TestPhysicsSystem_SetConfig(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createSmallGrid(t))
	sys.SetConfig(&config.PhysicsConfig{TileSize: 64, Gravity: config.VecConfig{X: 1, Y: 2}, ImpactThreshold: 3})

	b := newBoxBody(entity.V(200, 0), entity.Rect{W: 8, H: 8})
	sys.Step(b, testTick)

	assert.Equal(t, entity.V(1, 2), b.Vel)
}

func TestPhysicsSystem_SetGrid(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), mustGrid(t, 10, "....."))
	b := newBoxBody(entity.V(5, 5), entity.Rect{X: -2, Y: -2, W: 4, H: 4})

	assert.Equal(t, entity.Vec2i{}, sys.Step(b, testTick))

	sys.SetGrid(mustGrid(t, 10, "#...."))
	assert.NotEqual(t, entity.Vec2i{}, sys.Step(b, testTick), "pushed out of the new wall")
}
