// Package drawables holds the named images that draw systems render.
// A Registry is filled before the loop starts and only read while drawing.
package drawables

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Player is the name of the player sprite.
const Player = "player"

var (
	ErrNotFound  = errors.New("drawable not found")
	ErrNilImage  = errors.New("drawable image is nil")
	ErrEmptyName = errors.New("drawable name is empty")
)

// Registry maps names to images.
type Registry struct {
	images map[string]*ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{
		images: make(map[string]*ebiten.Image),
	}
}

// Add registers img under name, replacing any previous image.
func (r *Registry) Add(name string, img *ebiten.Image) error {
	if name == "" {
		return ErrEmptyName
	}
	if img == nil {
		return fmt.Errorf("%q: %w", name, ErrNilImage)
	}
	r.images[name] = img
	return nil
}

// AddSolid registers a w*h image filled with clr. Handy as a placeholder
// sprite when no asset file is available.
func (r *Registry) AddSolid(name string, w, h int, clr color.Color) error {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return r.Add(name, img)
}

// LoadFile decodes the PNG at path and registers it under name.
func (r *Registry) LoadFile(name, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load drawable %q: %w", name, err)
	}
	return r.Add(name, img)
}

// Image returns the image registered under name. The error wraps ErrNotFound
// when nothing is registered.
func (r *Registry) Image(name string) (*ebiten.Image, error) {
	img, ok := r.images[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return img, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.images[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.images)
}
