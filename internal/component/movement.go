// internal/component/movement.go
package component

// Position — компонент позиции (левый верхний угол)
type Position struct {
	X, Y float64
}

// Size — компонент размера
type Size struct {
	Width, Height float64
}

// Translate сдвигает сущность на (dx, dy)
func Translate(e *Entity, dx, dy float64) {
	e.X += dx
	e.Y += dy
}
