// internal/ui/entity_renderer.go
package ui

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ render.Target = (*EntityRenderer)(nil)

// EntityRenderer рисует сущности на экран ebiten, растягивая спрайт до размера сущности
type EntityRenderer struct {
	sprites *SpriteSet
	screen  *ebiten.Image
}

func NewEntityRenderer(sprites *SpriteSet) *EntityRenderer {
	return &EntityRenderer{sprites: sprites}
}

// Draw рисует весь список за кадр
func (r *EntityRenderer) Draw(screen *ebiten.Image, entities []*component.Entity) {
	r.screen = screen
	render.DrawAll(r, entities)
	r.screen = nil
}

func (r *EntityRenderer) DrawEntity(e *component.Entity, x, y, w, h float64) {
	img, ok := r.sprites.Get(e.Sprite)
	if !ok {
		img = r.sprites.Placeholder(e.Kind)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	if e.Kind == component.KindParticle {
		op.ColorScale.ScaleAlpha(float32(e.Opacity))
	}
	r.screen.DrawImage(img, op)
}
