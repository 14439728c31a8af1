// internal/component/entity.go
package component

import (
	"fmt"

	"go-space-shooter/internal/geom"
)

// EntityID — идентификатор сущности внутри сессии
type EntityID uint64

// Kind — тег варианта сущности
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		return "Projectile"
	case KindParticle:
		return "Particle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entity — единая запись для всех подвижных объектов.
// Поля вне общего набора имеют смысл только для своего Kind.
type Entity struct {
	ID   EntityID
	Kind Kind
	Position
	Size
	Dead   bool
	Sprite string // символьное имя спрайта в атласе

	Speed   float64 // вертикальная скорость: враг, снаряд, частица
	Opacity float64 // только частица

	Player *PlayerData // только игрок
}

// Bounds вычисляет ограничивающий прямоугольник из позиции и размера
func Bounds(e *Entity) geom.Rect {
	return geom.NewRect(e.X, e.Y, e.Width, e.Height)
}

// MarkDead помечает сущность мёртвой. Повторный вызов ничего не меняет.
func MarkDead(e *Entity) {
	e.Dead = true
}

// Alive — удобный предикат для фильтров
func Alive(e *Entity) bool {
	return !e.Dead
}
