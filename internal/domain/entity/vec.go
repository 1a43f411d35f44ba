package entity

// Vec2i is an integer pair used for pixel positions, velocities and tile coordinates.
type Vec2i struct {
	X, Y int
}

// V builds a Vec2i.
func V(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns a + b.
func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// Scale multiplies both components by k.
func (a Vec2i) Scale(k int) Vec2i {
	return Vec2i{a.X * k, a.Y * k}
}

// FloorDiv divides both components by d rounding toward negative infinity,
// so pixel -1 maps to tile -1 rather than tile 0.
func (a Vec2i) FloorDiv(d int) Vec2i {
	return Vec2i{floorDiv(a.X, d), floorDiv(a.Y, d)}
}

// SqrDist returns the squared Euclidean distance between a and b.
func (a Vec2i) SqrDist(b Vec2i) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// Rect is an axis-aligned rectangle. For hitboxes and texboxes X and Y are
// offsets relative to the owning body's position.
type Rect struct {
	X, Y int
	W, H int
}

// At returns the rectangle translated by pos.
func (r Rect) At(pos Vec2i) Rect {
	return Rect{X: r.X + pos.X, Y: r.Y + pos.Y, W: r.W, H: r.H}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2i {
	return Vec2i{r.X, r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2i {
	return Vec2i{r.X + r.W, r.Y + r.H}
}

// CenteredSquare returns a size×size rect centered on the origin.
func CenteredSquare(size int) Rect {
	return Rect{X: -(size / 2), Y: -(size / 2), W: size, H: size}
}
