// internal/system/player_system.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// PlayerSystem отвечает за движение игрока, стрельбу и перезарядку
type PlayerSystem struct {
	world *entity.World
	cfg   *config.Settings
	input *KeyboardState
}

func NewPlayerSystem(world *entity.World, cfg *config.Settings, input *KeyboardState) *PlayerSystem {
	return &PlayerSystem{world: world, cfg: cfg, input: input}
}

// Move применяет направления независимо друг от друга, без нормализации диагонали
func (s *PlayerSystem) Move(player *component.Entity, deltaTime float64) {
	p := player.Player
	if s.input.Up {
		component.Translate(player, 0, -p.SpeedY*deltaTime)
	}
	if s.input.Down {
		component.Translate(player, 0, p.SpeedY*deltaTime)
	}
	if s.input.Left {
		component.Translate(player, -p.SpeedX*deltaTime, 0)
	}
	if s.input.Right {
		component.Translate(player, p.SpeedX*deltaTime, 0)
	}
}

// Fire выпускает снаряд, если огонь зажат и перезарядка закончилась
func (s *PlayerSystem) Fire(player *component.Entity) *component.Entity {
	if !s.input.Fire || !player.Player.CanFire() {
		return nil
	}
	player.Player.FireCooldown = s.cfg.Projectile.Cooldown
	return SpawnProjectile(s.world, s.cfg, player)
}

// Cooldown уменьшает перезарядку выстрела, не опуская ниже нуля
func (s *PlayerSystem) Cooldown(player *component.Entity, deltaTime float64) {
	p := player.Player
	p.FireCooldown = utils.DecrementToZero(p.FireCooldown, s.cfg.Timing.CooldownPerSecond*deltaTime)
}
