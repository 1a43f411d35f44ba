package system

import "github.com/younwookim/mg/internal/domain/entity"

// DefaultImpactThreshold is the correction, in pixels, at which a box
// resolution also stops the body on that axis.
const DefaultImpactThreshold = 3

// TileMap is the grid capability the resolvers need. Implementations must
// report empty everywhere outside a finite region so escape walks terminate.
type TileMap interface {
	IsEmpty(tx, ty int) bool
	TileSize() int
}

// escape is one candidate exit from a solid tile
type escape struct {
	score int          // squared distance, inflated per blocked neighbor
	pos   entity.Vec2i // where the point ends up
	dir   entity.Vec2i // tile step away from the tile through pos
	step  int          // added to score per blocked neighbor
}

// ResolvePoint moves a point embedded in a solid tile to the nearest exit
// on that tile's boundary. Points in empty tiles are returned unchanged.
//
// Candidates are the four edges (projected along one axis) and the four
// corners. An exit that leads into more solid tiles costs one step per
// blocked neighbor: tileSize² for edges, 2·tileSize² for corners. The
// cheapest exit wins; ties go to the earlier candidate in the order
// left, right, top, bottom, top-left, top-right, bottom-left, bottom-right.
//
// This samples the point's current position only. A point that crosses a
// whole wall within one step is not caught.
func ResolvePoint(m TileMap, p entity.Vec2i) entity.Vec2i {
	ts := m.TileSize()
	tile := p.FloorDiv(ts)
	if m.IsEmpty(tile.X, tile.Y) {
		return p
	}

	p0 := tile.Scale(ts)
	p1 := tile.Add(entity.V(1, 1)).Scale(ts)

	edge := ts * ts
	corner := 2 * edge

	tr := entity.V(p1.X, p0.Y)
	bl := entity.V(p0.X, p1.Y)

	candidates := [8]escape{
		// edges: left, right, top, bottom
		{sqr(p.X - p0.X), entity.V(p0.X, p.Y), entity.V(-1, 0), edge},
		{sqr(p1.X - p.X), entity.V(p1.X, p.Y), entity.V(1, 0), edge},
		{sqr(p.Y - p0.Y), entity.V(p.X, p0.Y), entity.V(0, -1), edge},
		{sqr(p1.Y - p.Y), entity.V(p.X, p1.Y), entity.V(0, 1), edge},
		// corners: top-left, top-right, bottom-left, bottom-right
		{p.SqrDist(p0), p0, entity.V(-1, -1), corner},
		{p.SqrDist(tr), tr, entity.V(1, -1), corner},
		{p.SqrDist(bl), bl, entity.V(-1, 1), corner},
		{p.SqrDist(p1), p1, entity.V(1, 1), corner},
	}

	best := -1
	for i := range candidates {
		c := &candidates[i]
		for n := 1; ; n++ {
			next := tile.Add(c.dir.Scale(n))
			if m.IsEmpty(next.X, next.Y) {
				break
			}
			c.score += c.step
		}
		if best < 0 || c.score < candidates[best].score {
			best = i
		}
	}

	return candidates[best].pos
}

// ResolveBox pushes a body's hitbox out of solid tiles using its four
// corners as probes, in the fixed order top-left, top-right, bottom-left,
// bottom-right. Each corner's correction shifts the whole corner mesh and
// the body before the next corner is probed, so the order matters at
// concave corners. A correction of at least threshold pixels on an axis
// zeroes the body's velocity on that axis.
//
// The body is mutated in place; the total displacement is returned.
func ResolveBox(m TileMap, b *entity.Body, threshold int) entity.Vec2i {
	box := b.WorldHitbox()
	lo, hi := box.Min(), box.Max()

	mesh := [4]entity.Vec2i{
		lo,
		entity.V(hi.X, lo.Y),
		entity.V(lo.X, hi.Y),
		hi,
	}

	var total entity.Vec2i
	for i := range mesh {
		d := ResolvePoint(m, mesh[i]).Sub(mesh[i])

		if d.Y != 0 && abs(d.Y) >= threshold {
			b.Vel.Y = 0
		}
		if d.X != 0 && abs(d.X) >= threshold {
			b.Vel.X = 0
		}

		for j := range mesh {
			mesh[j] = mesh[j].Add(d)
		}
		b.Pos = b.Pos.Add(d)
		total = total.Add(d)
	}
	return total
}

func sqr(x int) int {
	return x * x
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
