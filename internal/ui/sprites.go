// internal/ui/sprites.go
package ui

import (
	"image/color"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SpriteSet хранит готовые к отрисовке картинки по символьному имени.
// Создаётся один раз после загрузки ресурсов, на игровом потоке.
type SpriteSet struct {
	sprites map[string]*ebiten.Image
	Life    *ebiten.Image
}

// NewSpriteSet режет лист по атласу. Без листа все спрайты — цветные заглушки.
func NewSpriteSet(b *assets.Bundle, log *zap.Logger) *SpriteSet {
	s := &SpriteSet{sprites: make(map[string]*ebiten.Image)}

	if b.Sheet != nil {
		sheet := ebiten.NewImageFromImage(b.Sheet)
		found, outside := b.Atlas.Regions(sheet.Bounds(), config.SpriteNames...)
		for name, r := range found {
			s.sprites[name] = sheet.SubImage(r).(*ebiten.Image)
		}
		for _, name := range outside {
			log.Warn("sprite region outside sheet", zap.String("sprite", name))
		}
	}

	// иконка жизни: отдельный файл, затем область листа, затем заглушка
	switch life, ok := s.sprites[config.SpriteLife]; {
	case b.Life != nil:
		s.Life = ebiten.NewImageFromImage(b.Life)
	case ok:
		s.Life = life
	default:
		s.Life = placeholder(32, 26, config.LifeColor)
	}
	return s
}

func placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// Get возвращает спрайт по имени
func (s *SpriteSet) Get(name string) (*ebiten.Image, bool) {
	img, ok := s.sprites[name]
	return img, ok
}

// Placeholder возвращает сплошную картинку для вида сущности; размер 1x1, масштабируется при отрисовке
func (s *SpriteSet) Placeholder(kind component.Kind) *ebiten.Image {
	key := "#" + kind.String()
	if img, ok := s.sprites[key]; ok {
		return img
	}
	img := placeholder(1, 1, render.ColorFor(kind))
	s.sprites[key] = img
	return img
}

