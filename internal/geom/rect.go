// internal/geom/rect.go
package geom

// Rect — ограничивающий прямоугольник в координатах поля (ось Y вниз)
type Rect struct {
	Top, Left, Bottom, Right float64
}

// NewRect строит прямоугольник по позиции и размеру
func NewRect(x, y, w, h float64) Rect {
	return Rect{Top: y, Left: x, Bottom: y + h, Right: x + w}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Intersects проверяет пересечение двух прямоугольников.
// Интервалы замкнутые: касание краями считается пересечением.
func Intersects(a, b Rect) bool {
	return !(a.Right < b.Left ||
		a.Left > b.Right ||
		a.Bottom < b.Top ||
		a.Top > b.Bottom)
}
