// internal/state/play_state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// keyBinding — клавиша и пара сообщений на нажатие/отпускание.
// Пустой тег означает, что это событие не публикуется.
type keyBinding struct {
	key  ebiten.Key
	down event.EventType
	up   event.EventType
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, event.KeyDownUp, event.KeyUpUp},
	{ebiten.KeyArrowDown, event.KeyDownDown, event.KeyUpDown},
	{ebiten.KeyArrowLeft, event.KeyDownLeft, event.KeyUpLeft},
	{ebiten.KeyArrowRight, event.KeyDownRight, event.KeyUpRight},
	{ebiten.KeyW, event.KeyDownUp, event.KeyUpUp},
	{ebiten.KeyS, event.KeyDownDown, event.KeyUpDown},
	{ebiten.KeyA, event.KeyDownLeft, event.KeyUpLeft},
	{ebiten.KeyD, event.KeyDownRight, event.KeyUpRight},
	{ebiten.KeySpace, event.KeyDownFire, event.KeyUpFire},
	{ebiten.KeyEnter, "", event.KeyUpConfirm},
}

// PlayState — состояние игры: переводит клавиши в сообщения шины,
// тикает сессию и рисует её
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *ui.EntityRenderer
	points   *ui.PointsIndicator
	lives    *ui.PlayerHealthIndicator
	banner   *ui.Banner
}

func NewPlayState(sm *StateMachine, game *app.Game, sprites *ui.SpriteSet) *PlayState {
	w := int(game.Settings.Field.Width)
	h := int(game.Settings.Field.Height)
	return &PlayState{
		sm:       sm,
		game:     game,
		renderer: ui.NewEntityRenderer(sprites),
		points:   ui.NewPointsIndicator(config.HUDFontOffsetX, h-config.HUDFontOffsetY, config.PointsColor),
		lives: ui.NewPlayerHealthIndicator(
			float64(w-config.LifeIconOffset),
			float64(h-config.LifeIconY),
			config.LifeIconStep,
			sprites.Life,
		),
		banner: ui.NewBanner(w, h),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !s.game.IsEnded() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}

	for _, b := range keyBindings {
		if b.down != "" && inpututil.IsKeyJustPressed(b.key) {
			s.game.Publish(b.down)
		}
		if b.up != "" && inpututil.IsKeyJustReleased(b.key) {
			s.game.Publish(b.up)
		}
	}

	s.game.Update(deltaTime)
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	if msg, visible := s.game.Banner(); visible {
		clr := config.LossColor
		if s.game.Outcome() == component.Win {
			clr = config.WinColor
		}
		s.banner.Draw(screen, msg, clr)
		return
	}

	s.renderer.Draw(screen, s.game.Entities())
	player := s.game.Player()
	s.points.Draw(screen, player.Player.Score)
	s.lives.Draw(screen, player.Player.Life)
}

func (s *PlayState) Exit() {}

// releaseAll отпускает все клавиши, например при уходе в паузу
func (s *PlayState) releaseAll() {
	for _, b := range keyBindings {
		if b.down != "" {
			s.game.Publish(b.up)
		}
	}
}
