// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
)

// ProjectileSystem управляет движением снарядов
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update двигает снаряды вверх; снаряд, целиком ушедший за верхний край, помечается мёртвым
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, p := range s.world.OfKind(component.KindProjectile) {
		if p.Dead {
			continue
		}
		component.Translate(p, 0, -p.Speed*deltaTime)
		if p.Y+p.Height < 0 {
			component.MarkDead(p)
		}
	}
}
