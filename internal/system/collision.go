// internal/system/collision.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/geom"
)

// CollisionSystem находит пересечения и публикует сообщения о столкновениях.
// Сама система ничего не меняет: реакция — дело подписчиков.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update проверяет сначала врагов против игрока, затем каждую пару снаряд/враг.
// Списки снимаются один раз до проверок, поэтому сущности, помеченные
// обработчиками по ходу, остаются в переборе до очистки.
func (s *CollisionSystem) Update(player *component.Entity) {
	enemies := s.world.OfKind(component.KindEnemy)
	projectiles := s.world.OfKind(component.KindProjectile)

	if player != nil {
		playerRect := component.Bounds(player)
		for _, enemy := range enemies {
			if geom.Intersects(playerRect, component.Bounds(enemy)) {
				s.eventDispatcher.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: enemy})
			}
		}
	}

	for _, p := range projectiles {
		pr := component.Bounds(p)
		for _, enemy := range enemies {
			if geom.Intersects(pr, component.Bounds(enemy)) {
				s.eventDispatcher.Publish(event.CollisionEnemyProjectile, event.CollisionPair{First: p, Second: enemy})
			}
		}
	}
}
