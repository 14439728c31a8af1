// internal/ui/hud.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// PointsIndicator — счёт в левом нижнем углу
type PointsIndicator struct {
	X, Y  int
	Color color.Color
	Face  font.Face
}

func NewPointsIndicator(x, y int, clr color.Color) *PointsIndicator {
	return &PointsIndicator{X: x, Y: y, Color: clr, Face: basicfont.Face7x13}
}

func (p *PointsIndicator) Draw(screen *ebiten.Image, points int) {
	text.Draw(screen, "Points: "+strconv.Itoa(points), p.Face, p.X, p.Y, p.Color)
}

// Banner — финальное сообщение по центру чёрного экрана
type Banner struct {
	Width, Height int
	Face          font.Face
}

func NewBanner(width, height int) *Banner {
	return &Banner{Width: width, Height: height, Face: basicfont.Face7x13}
}

func (b *Banner) Draw(screen *ebiten.Image, message string, clr color.Color) {
	w := font.MeasureString(b.Face, message).Ceil()
	text.Draw(screen, message, b.Face, (b.Width-w)/2, b.Height/2, clr)
}
