// internal/system/particle.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// ParticleSystem управляет фоновыми частицами: появление по таймеру и падение вниз
type ParticleSystem struct {
	world *entity.World
	cfg   *config.Settings
	rng   *utils.PRNGService

	SpawnCooldown float64
}

func NewParticleSystem(world *entity.World, cfg *config.Settings, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, cfg: cfg, rng: rng}
}

// Reset заполняет поле начальными частицами и взводит таймер
func (s *ParticleSystem) Reset(rng *utils.PRNGService) {
	s.rng = rng
	for i := 0; i < s.cfg.Particles.InitialCount; i++ {
		x := s.rng.Range(0, s.cfg.Field.Width-s.cfg.Particles.Size)
		y := s.rng.Range(0, s.cfg.Field.Height)
		SpawnParticle(s.world, s.cfg, s.rng, x, y)
	}
	s.rearm()
}

func (s *ParticleSystem) rearm() {
	s.SpawnCooldown = s.rng.Range(s.cfg.Particles.MinCooldown, s.cfg.Particles.MaxCooldown)
}

// Update выполняет появление новой частицы и сдвигает все частицы вниз.
// Частица, ушедшая за нижний край, помечается мёртвой.
func (s *ParticleSystem) Update(deltaTime float64) {
	if s.SpawnCooldown == 0 {
		x := s.rng.Range(0, s.cfg.Field.Width-s.cfg.Particles.Size)
		SpawnParticle(s.world, s.cfg, s.rng, x, -s.cfg.Particles.Size)
		s.rearm()
	}

	for _, p := range s.world.OfKind(component.KindParticle) {
		if p.Dead {
			continue
		}
		component.Translate(p, 0, p.Speed*deltaTime)
		if p.Y > s.cfg.Field.Height {
			component.MarkDead(p)
		}
	}
}

// Cooldown уменьшает таймер появления
func (s *ParticleSystem) Cooldown(deltaTime float64) {
	s.SpawnCooldown = utils.DecrementToZero(s.SpawnCooldown, s.cfg.Timing.CooldownPerSecond*deltaTime)
}
