// internal/system/input.go
package system

import "go-space-shooter/internal/event"

// KeyboardState — пять независимых флагов, читаются один раз за кадр
type KeyboardState struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// InputSystem переключает флаги по сообщениям key-down/key-up
type InputSystem struct {
	State KeyboardState
}

func NewInputSystem(eventDispatcher *event.Dispatcher) *InputSystem {
	s := &InputSystem{}
	for _, t := range []event.EventType{
		event.KeyDownUp, event.KeyDownDown, event.KeyDownLeft, event.KeyDownRight, event.KeyDownFire,
		event.KeyUpUp, event.KeyUpDown, event.KeyUpLeft, event.KeyUpRight, event.KeyUpFire,
	} {
		eventDispatcher.Subscribe(t, s)
	}
	return s
}

func (s *InputSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.KeyDownUp:
		s.State.Up = true
	case event.KeyUpUp:
		s.State.Up = false
	case event.KeyDownDown:
		s.State.Down = true
	case event.KeyUpDown:
		s.State.Down = false
	case event.KeyDownLeft:
		s.State.Left = true
	case event.KeyUpLeft:
		s.State.Left = false
	case event.KeyDownRight:
		s.State.Right = true
	case event.KeyUpRight:
		s.State.Right = false
	case event.KeyDownFire:
		s.State.Fire = true
	case event.KeyUpFire:
		s.State.Fire = false
	}
}

// Reset отпускает все клавиши
func (s *InputSystem) Reset() {
	s.State = KeyboardState{}
}
