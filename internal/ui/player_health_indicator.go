// internal/ui/player_health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerHealthIndicator отображает оставшиеся жизни иконками в правом нижнем углу
type PlayerHealthIndicator struct {
	X, Y float64
	Icon *ebiten.Image
	Step float64
}

// NewPlayerHealthIndicator создает новый индикатор жизней.
func NewPlayerHealthIndicator(x, y, step float64, icon *ebiten.Image) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Step: step, Icon: icon}
}

// Draw рисует по иконке на каждую жизнь
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, life int) {
	for j := 0; j < life; j++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(i.X+i.Step*float64(j+1), i.Y)
		screen.DrawImage(i.Icon, op)
	}
}
