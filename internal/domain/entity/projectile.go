package entity

// ProjectileState is the lifecycle of a projectile slot
type ProjectileState int

const (
	ProjectileDead ProjectileState = iota
	ProjectileActive
	ProjectilePoof
)

// String returns the string representation of the projectile state
func (s ProjectileState) String() string {
	switch s {
	case ProjectileDead:
		return "Dead"
	case ProjectileActive:
		return "Active"
	case ProjectilePoof:
		return "Poof"
	default:
		return "Unknown"
	}
}

// Projectile is a straight-flying shot. It has no hitbox: only its
// position point is tested against the grid.
type Projectile struct {
	State ProjectileState
	Pos   Vec2i
	Vel   Vec2i

	ActiveAnim Animation
	PoofAnim   Animation
}

// NewProjectile creates a dead projectile carrying its animations
func NewProjectile(active, poof Animation) Projectile {
	return Projectile{
		ActiveAnim: active,
		PoofAnim:   poof,
	}
}

// Launch activates the projectile at pos with constant velocity vel
func (p *Projectile) Launch(pos, vel Vec2i) {
	p.State = ProjectileActive
	p.Pos = pos
	p.Vel = vel
}

// Impact switches to the poof animation from its first frame
func (p *Projectile) Impact() {
	p.State = ProjectilePoof
	p.PoofAnim.Reset()
}

// CurrentAnimation returns the animation for the current state, nil when dead
func (p *Projectile) CurrentAnimation() *Animation {
	switch p.State {
	case ProjectileActive:
		return &p.ActiveAnim
	case ProjectilePoof:
		return &p.PoofAnim
	default:
		return nil
	}
}
