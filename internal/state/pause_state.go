// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: тики идут, но Update сессии не вызывается
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

// Enter отпускает клавиши: key-up, пришедший во время паузы, иначе потеряется
func (s *PauseState) Enter() {
	s.previousState.releaseAll()
}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	w, h := float32(config.ScreenWidth), float32(config.ScreenHeight)
	if b := screen.Bounds(); b.Dx() > 0 {
		w, h = float32(b.Dx()), float32(b.Dy())
	}
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	face := basicfont.Face7x13
	tw := font.MeasureString(face, pauseText).Ceil()
	text.Draw(screen, pauseText, face, (int(w)-tw)/2, int(h)/2, color.White)
}

func (s *PauseState) Exit() {}
