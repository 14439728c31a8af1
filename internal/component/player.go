// internal/component/player.go
package component

// PlayerData хранит данные, специфичные для игрока:
// жизни, очки, перезарядку выстрела и скорость по осям.
type PlayerData struct {
	Life         int
	Score        int
	FireCooldown float64
	SpeedX       float64
	SpeedY       float64
}

// CanFire — перезарядка завершена
func (p *PlayerData) CanFire() bool {
	return p.FireCooldown == 0
}

// DecrementLife отнимает одну жизнь и сообщает, остались ли ещё жизни
func (p *PlayerData) DecrementLife() bool {
	if p.Life > 0 {
		p.Life--
	}
	return p.Life > 0
}

func (p *PlayerData) AddPoints(points int) {
	p.Score += points
}
