package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/mg/internal/domain/entity"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

// Shooter fires a body's weapon
type Shooter interface {
	Shoot(b *entity.Body) (entity.Handle, bool)
}

// InputSystem maps devices to InputState and InputState to player intent
type InputSystem struct {
	config *config.PlayerConfig

	lastMouseX int
	lastMouseY int
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PlayerConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// SetConfig swaps player tuning
func (s *InputSystem) SetConfig(cfg *config.PlayerConfig) {
	s.config = cfg
}

// InputState holds one tick of input. Held keys are snapshots; the rest
// are edges that are true only on the tick they happen.
type InputState struct {
	Left  bool
	Right bool

	Jump        bool
	Shoot       bool
	ToggleDebug bool
	Reset       bool
	Quit        bool

	MouseX        int
	MouseY        int
	MouseMoved    bool
	MousePressed  bool
	MouseReleased bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	moved := mx != s.lastMouseX || my != s.lastMouseY
	s.lastMouseX, s.lastMouseY = mx, my

	return InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:          inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Shoot:         inpututil.IsKeyJustPressed(ebiten.KeyE),
		ToggleDebug:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Reset:         inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:          QuitRequested(),
		MouseX:        mx,
		MouseY:        my,
		MouseMoved:    moved,
		MousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// QuitRequested reports a quit key press or a window close this tick.
// It reads the devices directly, so it works whatever drives the other input.
func QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyL) || ebiten.IsWindowBeingClosed()
}

// Spawn returns the configured player spawn point
func (s *InputSystem) Spawn() entity.Vec2i {
	return entity.V(s.config.Spawn.X, s.config.Spawn.Y)
}

// ApplyPlayer turns input into player intent. Shooting comes before
// movement. Right wins over Left when
// both are held. Jump is not gated on ground contact.
func (s *InputSystem) ApplyPlayer(player *entity.Body, input InputState, shooter Shooter) {
	// Shots leave in the facing held before this tick's move
	if input.Shoot && shooter != nil {
		shooter.Shoot(player)
	}

	switch {
	case input.Right:
		player.Move(s.config.Speed)
	case input.Left:
		player.Move(-s.config.Speed)
	default:
		player.Stop()
	}

	if input.Jump {
		player.Jump(s.config.JumpVelocity)
	}

	if input.Reset {
		player.Teleport(s.Spawn())
	}
}
