// internal/event/event.go
package event

// EventType — тег сообщения из закрытого набора (см. types.go)
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие; порядок подписки задаёт порядок вызова
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам до возврата.
// Подписчик может сам вызывать Dispatch: вложенное событие обрабатывается
// целиком до перехода к следующему подписчику.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}

// Publish — сокращение для Dispatch(Event{Type, Data})
func (d *Dispatcher) Publish(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
