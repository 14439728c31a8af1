// internal/system/spawn.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// SpawnFormation строит начальный строй врагов: столбцы по центру поля,
// ряды сверху вниз начиная с y=0.
func SpawnFormation(world *entity.World, cfg *config.Settings) []*component.Entity {
	e := cfg.Enemy
	formationWidth := float64(e.Columns) * e.ColumnPitch
	startX := (cfg.Field.Width - formationWidth) / 2

	enemies := make([]*component.Entity, 0, e.Columns*e.Rows)
	for col := 0; col < e.Columns; col++ {
		x := startX + float64(col)*e.ColumnPitch
		for row := 0; row < e.Rows; row++ {
			enemies = append(enemies, SpawnEnemy(world, cfg, x, float64(row)*e.RowPitch))
		}
	}
	return enemies
}

func SpawnEnemy(world *entity.World, cfg *config.Settings, x, y float64) *component.Entity {
	return world.Add(&component.Entity{
		Kind:     component.KindEnemy,
		Position: component.Position{X: x, Y: y},
		Size:     component.Size{Width: cfg.Enemy.Width, Height: cfg.Enemy.Height},
		Sprite:   config.SpriteEnemy,
		Speed:    cfg.Enemy.Speed,
	})
}

// SpawnPlayer ставит игрока по центру на высоте трёх четвертей поля
func SpawnPlayer(world *entity.World, cfg *config.Settings) *component.Entity {
	p := cfg.Player
	return world.Add(&component.Entity{
		Kind: component.KindPlayer,
		Position: component.Position{
			X: cfg.Field.Width/2 - p.CenterX,
			Y: cfg.Field.Height - cfg.Field.Height/4,
		},
		Size:   component.Size{Width: p.Width, Height: p.Height},
		Sprite: config.SpritePlayer,
		Player: &component.PlayerData{
			Life:   p.Life,
			SpeedX: p.SpeedX,
			SpeedY: p.SpeedY,
		},
	})
}

// SpawnProjectile выпускает снаряд со смещением над игроком
func SpawnProjectile(world *entity.World, cfg *config.Settings, player *component.Entity) *component.Entity {
	pr := cfg.Projectile
	return world.Add(&component.Entity{
		Kind:     component.KindProjectile,
		Position: component.Position{X: player.X + pr.OffsetX, Y: player.Y - pr.OffsetY},
		Size:     component.Size{Width: pr.Width, Height: pr.Height},
		Sprite:   config.SpriteLaser,
		Speed:    pr.Speed,
	})
}

// SpawnParticle создаёт фоновую частицу в точке (x, y) со случайной скоростью и яркостью
func SpawnParticle(world *entity.World, cfg *config.Settings, rng *utils.PRNGService, x, y float64) *component.Entity {
	pc := cfg.Particles
	return world.Add(&component.Entity{
		Kind:     component.KindParticle,
		Position: component.Position{X: x, Y: y},
		Size:     component.Size{Width: pc.Size, Height: pc.Size},
		Sprite:   config.SpriteParticle,
		Speed:    rng.Range(pc.MinSpeed, pc.MaxSpeed),
		Opacity:  rng.Range(pc.MinOpacity, pc.MaxOpacity),
	})
}
