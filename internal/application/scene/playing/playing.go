// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/mg/internal/application/render"
	"github.com/younwookim/mg/internal/application/scene"
	"github.com/younwookim/mg/internal/application/system"
	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/ecs"
	"github.com/younwookim/mg/internal/infrastructure/config"
	"github.com/younwookim/mg/internal/infrastructure/logger"
)

// Debug overlay colors
var (
	colorTexbox   = color.RGBA{255, 255, 255, 255}
	colorProbe    = color.RGBA{255, 0, 0, 255}
	colorTile     = color.RGBA{0, 128, 255, 255}
	colorBoundary = color.RGBA{0, 255, 0, 255}
	colorHitbox   = color.RGBA{255, 255, 0, 255}
)

// InputSource yields one tick of input. It reports false once exhausted.
type InputSource interface {
	GetInput() (system.InputState, bool)
}

// LiveInput reads the keyboard and mouse every tick
type LiveInput struct {
	*system.InputSystem
}

// GetInput polls the devices; live input never runs out
func (l LiveInput) GetInput() (system.InputState, bool) {
	return l.InputSystem.GetInput(), true
}

// Options configures optional Playing behavior
type Options struct {
	Input      InputSource     // nil reads the live devices
	Quit       func() bool     // polled every tick whatever the input source
	RecordPath string          // record every tick's input here on exit
	DumpPath   string          // write the edited level here on exit
	Config     *config.Loader  // source for hot reloads
	Watcher    *config.Watcher // nil disables hot reload
	Textures   *Textures       // nil draws nothing but the debug overlay
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	world  *ecs.World
	log    *logrus.Entry

	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	combatSystem  *system.CombatSystem
	editor        *system.Editor

	input    InputSource
	quit     func() bool
	textures *Textures

	debug bool
	probe system.Probe
	mouse entity.Vec2i

	// Hot reload
	loader  *config.Loader
	watcher *config.Watcher

	// Input recording
	recorder   *Recorder
	recordPath string
	dumpPath   string
	exited     bool
}

// New creates a new Playing scene over world
func New(cfg *config.GameConfig, world *ecs.World, opts Options) *Playing {
	p := &Playing{
		config:        cfg,
		world:         world,
		log:           logger.For("playing"),
		physicsSystem: system.NewPhysicsSystem(&cfg.Physics, world.Grid),
		inputSystem:   system.NewInputSystem(&cfg.Player),
		combatSystem:  system.NewCombatSystem(&cfg.Weapon, world.Grid, world.Projectiles),
		editor:        system.NewEditor(),
		input:         opts.Input,
		quit:          opts.Quit,
		textures:      opts.Textures,
		debug:         cfg.Debug.Enabled,
		loader:        opts.Config,
		watcher:       opts.Watcher,
		recordPath:    opts.RecordPath,
		dumpPath:      opts.DumpPath,
	}
	if p.input == nil {
		p.input = LiveInput{p.inputSystem}
	}
	if p.quit == nil {
		p.quit = func() bool { return false }
	}
	if p.recordPath != "" {
		p.recorder = NewRecorder(cfg.Stage.Level, world.Grid.Rows())
		p.log.WithField("file", p.recordPath).Info("recording enabled")
	}
	p.combatSystem.OnImpact = func(pos entity.Vec2i) {
		p.log.WithField("pos", pos).Trace("impact")
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt time.Duration) (scene.Scene, error) {
	p.pollReload()

	if p.quit() {
		return nil, ebiten.Termination
	}

	input, ok := p.input.GetInput()
	if !ok {
		p.log.Info("replay finished")
		return nil, ebiten.Termination
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if input.Quit {
		return nil, ebiten.Termination
	}

	p.Step(input, dt)
	return nil, nil // nil = stay on this scene
}

// Step runs one simulation tick with the given input
func (p *Playing) Step(input system.InputState, dt time.Duration) {
	grid := p.world.Grid

	if input.ToggleDebug {
		p.debug = !p.debug
		p.log.WithField("debug", p.debug).Debug("debug mode toggled")
	}

	p.mouse = entity.V(input.MouseX, input.MouseY)
	p.editor.Handle(grid, input, p.debug)
	if input.MouseMoved || input.MousePressed {
		p.probe = system.NewProbe(grid, p.mouse, p.config.Debug.ProbeSize)
	}

	if player := p.world.Player(); player != nil {
		p.inputSystem.ApplyPlayer(player, input, p.combatSystem)
	}

	if enemy := p.world.Enemy(); enemy != nil && p.config.Enemy.AutoFire {
		p.combatSystem.Shoot(enemy)
	}

	p.physicsSystem.Update(p.world.Bodies, dt)
	p.combatSystem.Update(dt)
}

// Debug reports whether the debug overlay and editor are on
func (p *Playing) Debug() bool {
	return p.debug
}

// Probe returns the last cursor probe
func (p *Playing) Probe() system.Probe {
	return p.probe
}

// pollReload applies pending game.yaml edits. Tile size and pool sizes are
// fixed for the session; the rest of the tuning is swapped in place.
func (p *Playing) pollReload() {
	if p.watcher == nil {
		return
	}
	for err := p.watcher.PollError(); err != nil; err = p.watcher.PollError() {
		p.log.WithError(err).Warn("config watcher error")
	}
	if p.loader == nil {
		return
	}
	name, ok := p.watcher.Poll()
	if !ok {
		return
	}

	next, err := p.loader.LoadGame()
	if err != nil {
		p.log.WithError(err).WithField("file", name).Warn("config reload failed, keeping current tuning")
		return
	}
	p.Reload(next)
}

// Reload swaps in physics, player, enemy, weapon and debug tuning from next.
// A changed stage replaces the level and respawns every body.
func (p *Playing) Reload(next *config.GameConfig) {
	if next.Physics.TileSize != p.config.Physics.TileSize {
		p.log.WithFields(logrus.Fields{
			"current": p.config.Physics.TileSize,
			"new":     next.Physics.TileSize,
		}).Warn("tile size cannot change while running")
		next.Physics.TileSize = p.config.Physics.TileSize
	}

	// Systems hold pointers into p.config, so copying the sections is enough
	p.config.Physics = next.Physics
	p.config.Player = next.Player
	p.config.Enemy = next.Enemy
	p.config.Weapon = next.Weapon
	p.config.Debug.ProbeSize = next.Debug.ProbeSize
	p.config.Debug.LineGap = next.Debug.LineGap

	tpl := ecs.PlayerTemplate(&p.config.Player, &p.config.Assets)
	p.world.SetTemplate(tpl)
	p.world.Bodies.Each(func(_ entity.Handle, b *entity.Body) {
		b.Hitbox = tpl.Hitbox
		b.Texbox = tpl.Texbox
	})

	if next.Stage.Level != p.config.Stage.Level || !slices.Equal(next.Stage.Rows, p.config.Stage.Rows) {
		p.loadStage(next.Stage)
	}

	p.log.WithFields(logrus.Fields{
		"gravity":   p.config.Physics.Gravity,
		"threshold": p.config.Physics.ImpactThreshold,
		"speed":     p.config.Player.Speed,
		"cooldown":  p.config.Weapon.Cooldown,
	}).Info("config reloaded")
}

// loadStage swaps the level and restarts the session on it. Painted
// edits to the old level are discarded.
func (p *Playing) loadStage(stage config.StageConfig) {
	grid, err := system.LoadStage(&stage, p.config.Physics.TileSize)
	if err != nil {
		p.log.WithError(err).Warn("stage reload failed, keeping current level")
		return
	}

	p.config.Stage = stage
	p.world.Clear()
	p.world.Grid = grid
	p.physicsSystem.SetGrid(grid)
	p.combatSystem.SetLevel(grid)
	p.editor.Release()
	p.probe = system.Probe{}

	if err := p.world.Populate(p.config); err != nil {
		p.log.WithError(err).Error("failed to respawn bodies")
	}
	p.log.WithFields(logrus.Fields{
		"level":  stage.Level,
		"width":  grid.Width(),
		"height": grid.Height(),
	}).Info("stage reloaded")
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if p.textures != nil {
		p.drawTiles(screen)
		p.drawBodies(screen)
		p.drawProjectiles(screen)
	}

	if p.debug {
		p.drawDebug(screen)
	}
}

// tileVariant picks the sprite for a wall tile
type tileVariant int

const (
	variantGround tileVariant = iota
	variantTop
)

// wallVariant returns the grass-topped sprite when nothing sits on the wall
func wallVariant(grid *entity.Grid, tx, ty int) tileVariant {
	if grid.IsEmpty(tx, ty-1) {
		return variantTop
	}
	return variantGround
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	grid := p.world.Grid
	ts := grid.TileSize()
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			if grid.IsEmpty(tx, ty) {
				continue
			}
			sprite := p.textures.Ground
			if wallVariant(grid, tx, ty) == variantTop {
				sprite = p.textures.Top
			}
			render.DrawSprite(screen, sprite, entity.Rect{X: tx * ts, Y: ty * ts, W: ts, H: ts}, false)
		}
	}
}

// bodyFrame returns the walking-sheet frame a body shows
func bodyFrame(b *entity.Body, idleFrame int) int {
	if b.Anim == entity.AnimWalking {
		return b.Walking.Frame()
	}
	return idleFrame
}

func (p *Playing) drawBodies(screen *ebiten.Image) {
	p.world.Bodies.Each(func(_ entity.Handle, b *entity.Body) {
		if !b.IsAlive() {
			return
		}
		sprite := p.textures.Walking.Frame(bodyFrame(b, p.config.Assets.IdleFrame))
		render.DrawSprite(screen, sprite, b.WorldTexbox(), b.Dir == entity.DirLeft)
	})
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	p.world.Projectiles.Each(func(_ entity.Handle, pr *entity.Projectile) {
		var sprite render.Sprite
		switch pr.State {
		case entity.ProjectileActive:
			sprite = p.textures.Projectile.Frame(pr.ActiveAnim.Frame())
		case entity.ProjectilePoof:
			sprite = p.textures.Poof.Frame(pr.PoofAnim.Frame())
		default:
			return
		}
		render.DrawSpriteAt(screen, sprite, pr.Pos)
	})
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	p.world.Bodies.Each(func(_ entity.Handle, b *entity.Body) {
		render.StrokeRect(screen, b.WorldTexbox(), colorTexbox)
	})

	render.FillRect(screen, p.probe.Marker, colorProbe)
	render.StrokeRect(screen, p.probe.Tile, colorTile)
	render.StrokeRect(screen, p.world.Grid.Bounds(), colorBoundary)

	p.world.Bodies.Each(func(_ entity.Handle, b *entity.Body) {
		render.StrokeRect(screen, b.WorldHitbox(), colorHitbox)
	})

	if p.textures == nil || p.textures.Face == nil {
		return
	}
	for i, line := range p.debugLines(ebiten.ActualFPS()) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(0, float64(i*p.config.Debug.LineGap))
		text.Draw(screen, line, p.textures.Face, op)
	}
}

// replayProgress is implemented by input sources that play back a recording
type replayProgress interface {
	CurrentFrame() int
	TotalFrames() int
}

// debugLines is the overlay text, top to bottom
func (p *Playing) debugLines(fps float64) []string {
	lines := []string{
		fmt.Sprintf("Mouse Position: (%d %d)", p.mouse.X, p.mouse.Y),
		fmt.Sprintf("Collision Probe: (%d %d)", p.probe.Resolved.X, p.probe.Resolved.Y),
		fmt.Sprintf("FPS: %.1f", fps),
		fmt.Sprintf("Bodies: %d Projectiles: %d/%d",
			p.world.CountBodies(), p.world.CountProjectiles(), p.world.Projectiles.Cap()),
	}
	if rp, ok := p.input.(replayProgress); ok {
		lines = append(lines, fmt.Sprintf("Replay: %d/%d", rp.CurrentFrame(), rp.TotalFrames()))
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		lines = append(lines, fmt.Sprintf("Recording: %d frames", p.recorder.FrameCount()))
	}
	return lines
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithFields(logrus.Fields{
		"level":  p.config.Stage.Level,
		"bodies": p.world.CountBodies(),
		"debug":  p.debug,
	}).Info("playing")
}

// OnExit saves the recording and the edited level, and stops hot reload
func (p *Playing) OnExit() {
	if p.exited {
		return
	}
	p.exited = true

	p.saveRecording()
	p.dumpLevel()
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			p.log.WithError(err).Warn("failed to close config watcher")
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":   p.recordPath,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

func (p *Playing) dumpLevel() {
	if p.dumpPath == "" {
		return
	}
	f, err := os.Create(p.dumpPath)
	if err != nil {
		p.log.WithError(err).Error("failed to create level dump")
		return
	}
	defer func() { _ = f.Close() }()

	if err := p.world.Grid.Dump(f); err != nil {
		p.log.WithError(err).Error("failed to dump level")
		return
	}
	p.log.WithField("file", p.dumpPath).Info("level saved")
}
