// Package assets decodes images and fonts from an asset filesystem.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DecodePNG reads a PNG file and returns its pixels as non-premultiplied
// RGBA, whatever the file's own color model.
func DecodePNG(fsys fs.FS, path string) (*image.NRGBA, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if rgba, ok := src.(*image.NRGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, nil
}

// SliceFrames cuts a horizontal strip of width×height into n equal frames.
// Leftover columns when width is not a multiple of n are ignored.
func SliceFrames(width, height, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	w := width / n
	frames := make([]image.Rectangle, n)
	for i := range frames {
		frames[i] = image.Rect(i*w, 0, (i+1)*w, height)
	}
	return frames
}

// LoadFace parses a TrueType font at the given size. An empty path uses
// the built-in Go Regular font.
func LoadFace(fsys fs.FS, path string, size float64) (font.Face, error) {
	ttf := goregular.TTF
	if path != "" {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		ttf = data
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// Loader turns asset files into ebiten images, caching by path
type Loader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewLoader creates a loader over fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Image returns the texture for path, decoding it on first use
func (l *Loader) Image(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	pix, err := DecodePNG(l.fsys, path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(pix)
	l.cache[path] = img
	return img, nil
}

// Sheet loads a horizontal spritesheet and slices it into frames
func (l *Loader) Sheet(path string, frames int) (*ebiten.Image, []image.Rectangle, error) {
	img, err := l.Image(path)
	if err != nil {
		return nil, nil, err
	}
	b := img.Bounds()
	if b.Dx() < frames {
		return nil, nil, fmt.Errorf("%s is %dpx wide, too narrow for %d frames", path, b.Dx(), frames)
	}
	return img, SliceFrames(b.Dx(), b.Dy(), frames), nil
}

// Face loads a font face from the asset filesystem
func (l *Loader) Face(path string, size float64) (font.Face, error) {
	return LoadFace(l.fsys, path, size)
}
