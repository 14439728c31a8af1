// internal/terminal/keys.go
package terminal

import (
	"time"

	"go-space-shooter/internal/event"

	"github.com/gdamore/tcell/v2"
)

// Action — игровое действие, на которое отображается клавиша терминала
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionConfirm
	ActionQuit
)

// удерживаемые действия в фиксированном порядке: отпускание детерминировано
var heldActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire}

var (
	downTags = map[Action]event.EventType{
		ActionUp:    event.KeyDownUp,
		ActionDown:  event.KeyDownDown,
		ActionLeft:  event.KeyDownLeft,
		ActionRight: event.KeyDownRight,
		ActionFire:  event.KeyDownFire,
	}
	upTags = map[Action]event.EventType{
		ActionUp:    event.KeyUpUp,
		ActionDown:  event.KeyUpDown,
		ActionLeft:  event.KeyUpLeft,
		ActionRight: event.KeyUpRight,
		ActionFire:  event.KeyUpFire,
	}
)

// MapKey переводит клавишу tcell в действие: стрелки или WASD, пробел, Enter.
// Esc, Ctrl-C и q завершают программу.
func MapKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ActionUp
		case 's', 'S':
			return ActionDown
		case 'a', 'A':
			return ActionLeft
		case 'd', 'D':
			return ActionRight
		case ' ':
			return ActionFire
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyTracker восстанавливает пары нажатие/отпускание. Терминал присылает
// только нажатия (и автоповтор), поэтому отпускание синтезируется, когда
// нажатий не было дольше timeout.
type KeyTracker struct {
	timeout time.Duration
	publish func(event.EventType)
	held    map[Action]time.Time
}

func NewKeyTracker(timeout time.Duration, publish func(event.EventType)) *KeyTracker {
	return &KeyTracker{
		timeout: timeout,
		publish: publish,
		held:    make(map[Action]time.Time),
	}
}

// Press отмечает нажатие. Повтор уже удерживаемой клавиши только продлевает её.
func (k *KeyTracker) Press(a Action, now time.Time) {
	if a == ActionConfirm {
		// подтверждение срабатывает на отпускание; в терминале это сразу
		k.publish(event.KeyUpConfirm)
		return
	}
	down, ok := downTags[a]
	if !ok {
		return
	}
	if _, held := k.held[a]; !held {
		k.publish(down)
	}
	k.held[a] = now
}

// Expire отпускает клавиши без нажатий за последние timeout
func (k *KeyTracker) Expire(now time.Time) {
	for _, a := range heldActions {
		last, held := k.held[a]
		if held && now.Sub(last) >= k.timeout {
			delete(k.held, a)
			k.publish(upTags[a])
		}
	}
}

// ReleaseAll отпускает все удерживаемые клавиши: потеря фокуса, перезапуск сессии
func (k *KeyTracker) ReleaseAll() {
	for _, a := range heldActions {
		if _, held := k.held[a]; held {
			delete(k.held, a)
			k.publish(upTags[a])
		}
	}
}
