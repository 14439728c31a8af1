// internal/state/loading_state.go
package state

import (
	"fmt"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Убеждаемся, что LoadingState соответствует интерфейсу State
var _ State = (*LoadingState)(nil)

// LoadingState — фаза загрузки: ядро не тикает, пока ресурсы не готовы
type LoadingState struct {
	sm     *StateMachine
	loader *assets.Loader
	cfg    *config.Settings
	log    *zap.Logger
}

func NewLoadingState(sm *StateMachine, loader *assets.Loader, cfg *config.Settings, log *zap.Logger) *LoadingState {
	return &LoadingState{sm: sm, loader: loader, cfg: cfg, log: log}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) error {
	bundle, ready, err := s.loader.Poll()
	if !ready {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	game, err := app.NewGame(s.cfg, s.log)
	if err != nil {
		return err
	}
	sprites := ui.NewSpriteSet(bundle, s.log)
	s.sm.SetState(NewPlayState(s.sm, game, sprites))
	return nil
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrint(screen, "Loading...")
}

func (s *LoadingState) Exit() {}
