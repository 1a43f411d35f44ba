package render

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/mg/internal/domain/entity"
)

func apply(geo ebiten.GeoM, x, y float64) [2]float64 {
	ax, ay := geo.Apply(x, y)
	return [2]float64{ax, ay}
}

func TestDestGeoM(t *testing.T) {
	src := image.Rect(12, 0, 24, 12)
	dst := entity.Rect{X: 100, Y: 50, W: 48, H: 48}

	t.Run("stretches into dst", func(t *testing.T) {
		geo := DestGeoM(src, dst, false)

		assert.Equal(t, [2]float64{100, 50}, apply(geo, 0, 0))
		assert.Equal(t, [2]float64{148, 98}, apply(geo, 12, 12))
		assert.Equal(t, [2]float64{124, 74}, apply(geo, 6, 6))
	})

	t.Run("flip mirrors within dst", func(t *testing.T) {
		geo := DestGeoM(src, dst, true)

		assert.Equal(t, [2]float64{148, 50}, apply(geo, 0, 0))
		assert.Equal(t, [2]float64{100, 98}, apply(geo, 12, 12))
		assert.Equal(t, [2]float64{144, 50}, apply(geo, 1, 0))
	})

	t.Run("empty source is identity", func(t *testing.T) {
		geo := DestGeoM(image.Rectangle{}, dst, false)
		assert.Equal(t, [2]float64{3, 4}, apply(geo, 3, 4))
	})
}

func TestCenteredRect(t *testing.T) {
	assert.Equal(t, entity.Rect{X: 94, Y: 44, W: 12, H: 12}, CenteredRect(12, 12, entity.V(100, 50)))
	assert.Equal(t, entity.Rect{X: -3, Y: -2, W: 7, H: 5}, CenteredRect(7, 5, entity.V(0, 0)))
}

func TestSheet_Frame(t *testing.T) {
	sheet := Sheet{Frames: []image.Rectangle{
		image.Rect(0, 0, 8, 8),
		image.Rect(8, 0, 16, 8),
		image.Rect(16, 0, 24, 8),
	}}

	assert.Equal(t, sheet.Frames[1], sheet.Frame(1).Src)
	assert.Equal(t, sheet.Frames[0], sheet.Frame(3).Src, "wraps")
	assert.Equal(t, sheet.Frames[2], sheet.Frame(-1).Src, "wraps negative")

	w, h := sheet.Frame(2).Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	assert.True(t, Sheet{}.Frame(0).Src.Empty())
}
