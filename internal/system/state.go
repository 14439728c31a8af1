// internal/system/state.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"

	"go.uber.org/zap"
)

// StateSystem — контроллер состояния игры: реагирует на столкновения,
// меняет жизни и очки, объявляет победу или поражение, перезапускает сессию.
type StateSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewStateSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, log *zap.Logger) *StateSystem {
	ss := &StateSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.Subscribe(event.CollisionEnemyProjectile, ss)
	eventDispatcher.Subscribe(event.CollisionEnemyPlayer, ss)
	eventDispatcher.Subscribe(event.GameEndWin, ss)
	eventDispatcher.Subscribe(event.GameEndLoss, ss)
	eventDispatcher.Subscribe(event.KeyUpConfirm, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.CollisionEnemyProjectile:
		if pair, ok := e.Data.(event.CollisionPair); ok {
			s.onProjectileHit(pair)
		}
	case event.CollisionEnemyPlayer:
		if hit, ok := e.Data.(event.EnemyHit); ok {
			s.onPlayerHit(hit)
		}
	case event.GameEndWin:
		s.gameContext.End(component.Win)
	case event.GameEndLoss:
		s.gameContext.End(component.Loss)
	case event.KeyUpConfirm:
		if s.gameContext.IsEnded() {
			s.gameContext.Reset()
		}
	}
}

func (s *StateSystem) onProjectileHit(pair event.CollisionPair) {
	if s.gameContext.IsEnded() {
		return
	}
	// каждая опубликованная пара приносит очки, даже если враг уже сбит в этом кадре
	if pair.First == nil || pair.Second == nil {
		return
	}
	component.MarkDead(pair.First)
	component.MarkDead(pair.Second)
	if player := s.gameContext.Player(); player != nil {
		player.Player.AddPoints(config.PointsPerEnemy)
	}

	if s.enemiesDead() {
		s.eventDispatcher.Publish(event.GameEndWin, nil)
	}
}

func (s *StateSystem) onPlayerHit(hit event.EnemyHit) {
	if s.gameContext.IsEnded() || hit.Enemy == nil || hit.Enemy.Dead {
		return
	}
	player := s.gameContext.Player()
	if player == nil {
		return
	}
	component.MarkDead(hit.Enemy)

	alive := player.Player.DecrementLife()
	s.log.Debug("life lost", zap.Int("life", player.Player.Life))
	if !alive {
		component.MarkDead(player)
		s.eventDispatcher.Publish(event.GameEndLoss, nil)
		return
	}
	if s.enemiesDead() {
		s.eventDispatcher.Publish(event.GameEndWin, nil)
	}
}

func (s *StateSystem) enemiesDead() bool {
	return s.world.CountAlive(component.KindEnemy) == 0
}
