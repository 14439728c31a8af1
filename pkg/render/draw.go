package render

import "go-space-shooter/internal/component"

// Target — внешний рисовальщик. Ядро передаёт только позицию и размер,
// визуальный ресурс рисовальщик находит сам по e.Sprite.
type Target interface {
	DrawEntity(e *component.Entity, x, y, w, h float64)
}

// DrawAll рисует живые сущности в порядке коллекции (частицы первыми)
func DrawAll(t Target, entities []*component.Entity) int {
	n := 0
	for _, e := range entities {
		if !component.Alive(e) {
			continue
		}
		b := component.Bounds(e)
		t.DrawEntity(e, b.Left, b.Top, b.Width(), b.Height())
		n++
	}
	return n
}
