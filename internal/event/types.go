// internal/event/types.go
package event

import "go-space-shooter/internal/component"

const (
	KeyDownUp    EventType = "KEY_DOWN_UP"
	KeyDownDown  EventType = "KEY_DOWN_DOWN"
	KeyDownLeft  EventType = "KEY_DOWN_LEFT"
	KeyDownRight EventType = "KEY_DOWN_RIGHT"
	KeyDownFire  EventType = "KEY_DOWN_FIRE"

	KeyUpUp      EventType = "KEY_UP_UP"
	KeyUpDown    EventType = "KEY_UP_DOWN"
	KeyUpLeft    EventType = "KEY_UP_LEFT"
	KeyUpRight   EventType = "KEY_UP_RIGHT"
	KeyUpFire    EventType = "KEY_UP_FIRE"
	KeyUpConfirm EventType = "KEY_UP_CONFIRM" // только в завершённой сессии

	CollisionEnemyProjectile EventType = "COLLISION_ENEMY_PROJECTILE" // данные: CollisionPair
	CollisionEnemyPlayer     EventType = "COLLISION_ENEMY_PLAYER"     // данные: EnemyHit

	GameEndWin  EventType = "GAME_END_WIN"
	GameEndLoss EventType = "GAME_END_LOSS"
)

// CollisionPair — снаряд (First) попал во врага (Second)
type CollisionPair struct {
	First, Second *component.Entity
}

// EnemyHit — враг столкнулся с игроком
type EnemyHit struct {
	Enemy *component.Entity
}
