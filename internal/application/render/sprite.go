// Package render draws sprites and debug shapes onto ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/mg/internal/domain/entity"
)

// Sprite is a source region of a texture
type Sprite struct {
	Image *ebiten.Image
	Src   image.Rectangle
}

// Size returns the source region size
func (s Sprite) Size() (int, int) {
	return s.Src.Dx(), s.Src.Dy()
}

// Sheet is a texture cut into animation frames
type Sheet struct {
	Image  *ebiten.Image
	Frames []image.Rectangle
}

// Frame returns frame i, wrapping out-of-range indices
func (s Sheet) Frame(i int) Sprite {
	n := len(s.Frames)
	if n == 0 {
		return Sprite{Image: s.Image}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return Sprite{Image: s.Image, Src: s.Frames[i]}
}

// DestGeoM maps a src-sized image onto dst, mirrored horizontally when flip
// is set. The mirrored image still covers exactly dst.
func DestGeoM(src image.Rectangle, dst entity.Rect, flip bool) ebiten.GeoM {
	var geo ebiten.GeoM
	w, h := src.Dx(), src.Dy()
	if w == 0 || h == 0 {
		return geo
	}
	if flip {
		geo.Scale(-1, 1)
		geo.Translate(float64(w), 0)
	}
	geo.Scale(float64(dst.W)/float64(w), float64(dst.H)/float64(h))
	geo.Translate(float64(dst.X), float64(dst.Y))
	return geo
}

// CenteredRect places a w×h rectangle centered on pos
func CenteredRect(w, h int, pos entity.Vec2i) entity.Rect {
	return entity.Rect{X: pos.X - w/2, Y: pos.Y - h/2, W: w, H: h}
}

// DrawSprite stretches the sprite into dst
func DrawSprite(screen *ebiten.Image, s Sprite, dst entity.Rect, flip bool) {
	if s.Image == nil || s.Src.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = DestGeoM(s.Src, dst, flip)
	screen.DrawImage(s.Image.SubImage(s.Src).(*ebiten.Image), op)
}

// DrawSpriteAt draws the sprite at its native size centered on pos
func DrawSpriteAt(screen *ebiten.Image, s Sprite, pos entity.Vec2i) {
	w, h := s.Size()
	DrawSprite(screen, s, CenteredRect(w, h, pos), false)
}

// FillRect draws a solid rectangle
func FillRect(screen *ebiten.Image, r entity.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// StrokeRect draws a one-pixel rectangle outline
func StrokeRect(screen *ebiten.Image, r entity.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
