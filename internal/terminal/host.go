// internal/terminal/host.go
package terminal

import (
	"context"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// FrameInterval — период тиков терминального хоста (~60 FPS)
const FrameInterval = 16 * time.Millisecond

// Host связывает экран tcell и игровую сессию. Сессия трогается только
// из HandleEvent и Tick, то есть из одной горутины цикла.
type Host struct {
	screen   tcell.Screen
	game     *app.Game
	keys     *KeyTracker
	renderer *CellRenderer
	log      *zap.Logger

	lastTick time.Time
}

func NewHost(screen tcell.Screen, game *app.Game, log *zap.Logger) *Host {
	cfg := game.Settings
	return &Host{
		screen:   screen,
		game:     game,
		keys:     NewKeyTracker(cfg.Timing.KeyReleaseTimeout, game.Publish),
		renderer: NewCellRenderer(screen, cfg.Field.Width, cfg.Field.Height),
		log:      log,
	}
}

// HandleEvent обрабатывает событие терминала; false означает выход
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := MapKey(ev)
		if a == ActionQuit {
			return false
		}
		if a == ActionConfirm && h.game.IsEnded() {
			// новая сессия стартует с пустым вводом, трекер должен это знать
			h.keys.ReleaseAll()
		}
		h.keys.Press(a, now)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.keys.ReleaseAll()
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.renderer.Resize()
		h.log.Debug("terminal resized")
	}
	return true
}

// Tick продвигает сессию на прошедшее время (не больше MaxDeltaTime) и рисует кадр
func (h *Host) Tick(now time.Time) {
	deltaTime := 0.0
	if !h.lastTick.IsZero() {
		deltaTime = now.Sub(h.lastTick).Seconds()
	}
	if limit := h.game.Settings.Timing.MaxDeltaTime; deltaTime > limit {
		deltaTime = limit
	}
	h.lastTick = now

	h.keys.Expire(now)
	h.game.Update(deltaTime)
	h.Draw()
}

// Draw рисует текущее состояние сессии
func (h *Host) Draw() {
	h.screen.Clear()
	if msg, visible := h.game.Banner(); visible {
		clr := config.LossColor
		if h.game.Outcome() == component.Win {
			clr = config.WinColor
		}
		h.renderer.DrawBanner(msg, clr)
	} else {
		render.DrawAll(h.renderer, h.game.Entities())
		p := h.game.Player().Player
		h.renderer.DrawHUD(p.Score, p.Life)
	}
	h.screen.Show()
}

// Run крутит цикл до выхода или отмены контекста. События терминала читаются
// отдельной горутиной и передаются в цикл через канал.
func (h *Host) Run(ctx context.Context) {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !h.HandleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			h.Tick(now)
		}
	}
}
