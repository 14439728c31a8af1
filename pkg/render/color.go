// pkg/render/color.go
package render

import (
	"image/color"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
)

// ColorFor — цвет заглушки для вида сущности, когда спрайта нет
func ColorFor(kind component.Kind) color.RGBA {
	switch kind {
	case component.KindPlayer:
		return config.PlayerColor
	case component.KindEnemy:
		return config.EnemyColor
	case component.KindProjectile:
		return config.LaserColor
	}
	return config.ParticleColor
}

// WithOpacity умножает альфа-канал на opacity из [0, 1]
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	// premultiplied alpha: масштабируем все каналы
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
