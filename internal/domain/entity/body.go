package entity

// BodyState is the pool lifecycle of a body
type BodyState int

const (
	BodyDead BodyState = iota
	BodyAlive
)

// Direction is the facing of a body
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// AnimKind selects which of a body's animations is playing
type AnimKind int

const (
	AnimIdle AnimKind = iota
	AnimWalking
)

// Body is a dynamic entity: the player or an NPC.
// Hitbox drives collision; Texbox drives rendering. Both are relative to Pos.
type Body struct {
	State BodyState

	Pos Vec2i
	Vel Vec2i

	Hitbox Rect
	Texbox Rect

	Idle    Animation
	Walking Animation
	Anim    AnimKind

	Dir Direction

	WeaponCooldown int
}

// NewBody creates a live body at pos facing right and idling
func NewBody(pos Vec2i, hitbox, texbox Rect, idle, walking Animation) Body {
	return Body{
		State:   BodyAlive,
		Pos:     pos,
		Hitbox:  hitbox,
		Texbox:  texbox,
		Idle:    idle,
		Walking: walking,
		Anim:    AnimIdle,
		Dir:     DirRight,
	}
}

// IsAlive reports whether the body takes part in update and render
func (b *Body) IsAlive() bool {
	return b.State == BodyAlive
}

// WorldHitbox returns the hitbox in world coordinates
func (b *Body) WorldHitbox() Rect {
	return b.Hitbox.At(b.Pos)
}

// WorldTexbox returns the destination rectangle for drawing
func (b *Body) WorldTexbox() Rect {
	return b.Texbox.At(b.Pos)
}

// CurrentAnimation returns the animation selected by Anim
func (b *Body) CurrentAnimation() *Animation {
	if b.Anim == AnimWalking {
		return &b.Walking
	}
	return &b.Idle
}

// Move sets horizontal speed, faces the direction of travel and walks.
// A zero speed keeps the current facing.
func (b *Body) Move(speed int) {
	b.Vel.X = speed
	if speed > 0 {
		b.Dir = DirRight
	} else if speed < 0 {
		b.Dir = DirLeft
	}
	b.Anim = AnimWalking
}

// Stop zeroes horizontal speed and idles
func (b *Body) Stop() {
	b.Vel.X = 0
	b.Anim = AnimIdle
}

// Jump sets an upward velocity of the given magnitude
func (b *Body) Jump(velocity int) {
	b.Vel.Y = -velocity
}

// Teleport moves the body and cancels vertical motion
func (b *Body) Teleport(pos Vec2i) {
	b.Pos = pos
	b.Vel.Y = 0
}

// FacingSign returns +1 when facing right and -1 when facing left
func (b *Body) FacingSign() int {
	if b.Dir == DirLeft {
		return -1
	}
	return 1
}
