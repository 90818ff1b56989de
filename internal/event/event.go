// internal/event/event.go
package event

// EventType names a gameplay event.
type EventType string

// Event carries one of the payload structs from types.go in Data.
type Event struct {
	Type EventType
	// Time is the frame time the event happened at.
	Time float64
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// goroutine that dispatches them.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for the given types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch sends event to its subscribers. A nil dispatcher drops it, so
// systems can run without anyone listening.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit is Dispatch for a freshly built event.
func (d *Dispatcher) Emit(t EventType, now float64, data any) {
	d.Dispatch(Event{Type: t, Time: now, Data: data})
}
