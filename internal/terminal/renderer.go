// internal/terminal/renderer.go
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// Убеждаемся, что CellRenderer соответствует render.Target
var _ render.Target = (*CellRenderer)(nil)

// CellRenderer рисует сущности символами: координаты поля масштабируются в клетки.
// Нижняя строка экрана отдана под HUD.
type CellRenderer struct {
	screen         tcell.Screen
	fieldW, fieldH float64
	cols, rows     int
}

func NewCellRenderer(screen tcell.Screen, fieldW, fieldH float64) *CellRenderer {
	r := &CellRenderer{screen: screen, fieldW: fieldW, fieldH: fieldH}
	r.Resize()
	return r
}

// Resize перечитывает размер экрана
func (r *CellRenderer) Resize() {
	w, h := r.screen.Size()
	r.cols = w
	r.rows = h - 1
	if r.rows < 1 {
		r.rows = 1
	}
}

// glyph — символ для вида сущности
func glyph(kind component.Kind) rune {
	switch kind {
	case component.KindPlayer:
		return 'A'
	case component.KindEnemy:
		return 'W'
	case component.KindProjectile:
		return '|'
	}
	return '.'
}

func styleFor(e *component.Entity) tcell.Style {
	c := render.ColorFor(e.Kind)
	if e.Kind == component.KindParticle {
		c = render.WithOpacity(c, e.Opacity)
	}
	return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(toTcell(c))
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSpan переводит отрезок поля [pos, pos+size] в диапазон клеток, минимум одна
func cellSpan(pos, size, field float64, cells int) (int, int) {
	scale := field / float64(cells)
	from := int(math.Floor(pos / scale))
	to := int(math.Ceil((pos+size)/scale)) - 1
	if to < from {
		to = from
	}
	return from, to
}

// DrawEntity закрашивает клетки, покрытые прямоугольником сущности
func (r *CellRenderer) DrawEntity(e *component.Entity, x, y, w, h float64) {
	if r.cols <= 0 || r.fieldW <= 0 || r.fieldH <= 0 {
		return
	}
	x0, x1 := cellSpan(x, w, r.fieldW, r.cols)
	y0, y1 := cellSpan(y, h, r.fieldH, r.rows)
	ch := glyph(e.Kind)
	style := styleFor(e)
	for cy := max(y0, 0); cy <= min(y1, r.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, r.cols-1); cx++ {
			r.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

// DrawHUD пишет очки и жизни в нижнюю строку
func (r *CellRenderer) DrawHUD(points, life int) {
	style := tcell.StyleDefault.Foreground(toTcell(render.ColorFor(component.KindEnemy)))
	r.text(0, r.rows, fmt.Sprintf("Points: %d", points), style)

	lives := fmt.Sprintf("Lives: %d", life)
	r.text(r.cols-len(lives)-1, r.rows, lives, style)
}

// DrawBanner выводит сообщение по центру экрана
func (r *CellRenderer) DrawBanner(message string, clr color.RGBA) {
	x := (r.cols - len(message)) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, r.rows/2, message, tcell.StyleDefault.Foreground(toTcell(clr)))
}

func (r *CellRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		if x+i < 0 || x+i >= r.cols {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
