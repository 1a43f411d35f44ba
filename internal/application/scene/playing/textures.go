package playing

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/mg/internal/application/render"
	"github.com/younwookim/mg/internal/infrastructure/assets"
	"github.com/younwookim/mg/internal/infrastructure/config"
)

// Textures holds everything Draw needs from the asset root
type Textures struct {
	Top        render.Sprite
	Ground     render.Sprite
	Walking    render.Sheet
	Projectile render.Sheet
	Poof       render.Sheet
	Face       text.Face
}

// LoadTextures decodes the configured sprites and the debug font
func LoadTextures(l *assets.Loader, cfg *config.AssetsConfig) (*Textures, error) {
	tiles, err := l.Image(cfg.Tiles.Path)
	if err != nil {
		return nil, err
	}

	sheets := make([]render.Sheet, 3)
	for i, sc := range []config.SheetConfig{cfg.Walking, cfg.Projectile, cfg.Poof} {
		img, frames, err := l.Sheet(sc.Path, sc.Frames)
		if err != nil {
			return nil, err
		}
		sheets[i] = render.Sheet{Image: img, Frames: frames}
	}

	face, err := l.Face(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		return nil, fmt.Errorf("debug font: %w", err)
	}

	return &Textures{
		Top:        render.Sprite{Image: tiles, Src: rect(cfg.Tiles.Top)},
		Ground:     render.Sprite{Image: tiles, Src: rect(cfg.Tiles.Ground)},
		Walking:    sheets[0],
		Projectile: sheets[1],
		Poof:       sheets[2],
		Face:       text.NewGoXFace(face),
	}, nil
}

func rect(r config.RectConfig) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
