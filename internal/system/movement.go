// internal/system/movement.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
)

// MovementSystem двигает строй врагов вниз
type MovementSystem struct {
	world *entity.World
	cfg   *config.Settings
}

func NewMovementSystem(world *entity.World, cfg *config.Settings) *MovementSystem {
	return &MovementSystem{world: world, cfg: cfg}
}

// Update сдвигает врагов и возвращает true, если нижний край хотя бы
// одного врага достиг нижней границы поля. Это поражение, минуя шину.
func (s *MovementSystem) Update(deltaTime float64) bool {
	for _, enemy := range s.world.OfKind(component.KindEnemy) {
		if enemy.Dead {
			continue
		}
		component.Translate(enemy, 0, enemy.Speed*deltaTime)
		if enemy.Y+enemy.Height >= s.cfg.Field.Height {
			return true
		}
	}
	return false
}
