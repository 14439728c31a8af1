// internal/entity/ecs.go
package entity

import (
	"go-space-shooter/internal/component"
)

// World — живая коллекция сущностей сессии.
// Порядок вставки важен только для отрисовки: частицы держатся позади.
type World struct {
	GameTime float64
	NextID   component.EntityID
	entities []*component.Entity
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Add присваивает ID и кладёт сущность в мир. Частицы вставляются
// перед всеми остальными сущностями.
func (w *World) Add(e *component.Entity) *component.Entity {
	e.ID = w.NewEntity()
	if e.Kind == component.KindParticle {
		i := 0
		for i < len(w.entities) && w.entities[i].Kind == component.KindParticle {
			i++
		}
		w.entities = append(w.entities, nil)
		copy(w.entities[i+1:], w.entities[i:])
		w.entities[i] = e
		return e
	}
	w.entities = append(w.entities, e)
	return e
}

// All возвращает живой срез; вызывающий не должен его изменять
func (w *World) All() []*component.Entity {
	return w.entities
}

// OfKind возвращает снимок сущностей данного вида, включая помеченные мёртвыми
func (w *World) OfKind(kind component.Kind) []*component.Entity {
	var out []*component.Entity
	for _, e := range w.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CountAlive считает непомеченные сущности данного вида
func (w *World) CountAlive(kind component.Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind && component.Alive(e) {
			n++
		}
	}
	return n
}

// Purge удаляет мёртвые сущности и возвращает их количество
func (w *World) Purge() int {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if component.Alive(e) {
			kept = append(kept, e)
		}
	}
	removed := len(w.entities) - len(kept)
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	return removed
}

// Clear удаляет всё и сбрасывает счётчики
func (w *World) Clear() {
	w.entities = nil
	w.NextID = 1
	w.GameTime = 0
}
