// internal/interfaces/game_context.go
package interfaces

import "go-space-shooter/internal/component"

// GameContext — то, что контроллер состояния требует от сессии.
// Интерфейс разрывает цикл импортов между system и app.
type GameContext interface {
	Player() *component.Entity
	IsEnded() bool
	End(outcome component.Outcome)
	Reset()
}
