package events

// Type names a lifecycle event kind.
type Type string

const (
	TypePickup      Type = "pickup"
	TypeUseItem     Type = "use-item"
	TypeUseObject   Type = "use-object"
	TypeStart       Type = "start"
	TypeCombine     Type = "combine"
	TypeEnter       Type = "enter"
	TypeMusicChange Type = "music"
)

// Event is a lifecycle notification published on a state transition. Data
// carries the named payload; entities are referenced by identity key, never
// by pointer.
type Event struct {
	Type Type           `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Handler receives a published event.
type Handler func(Event)

// Dispatcher is an in-process publish/subscribe hub for lifecycle events.
// It is constructed explicitly and passed to collaborators; there is no
// process-wide instance. Dispatch is synchronous and handlers run in
// registration order. Handler panics are not isolated: a panicking handler
// aborts dispatch to the handlers registered after it.
type Dispatcher struct {
	handlers map[Type][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for the given event type. There is no
// unsubscribe: handlers live as long as the dispatcher.
func (d *Dispatcher) Subscribe(t Type, h Handler) {
	d.handlers[t] = append(d.handlers[t], h)
}

// Publish invokes every handler registered for the type, in registration
// order, blocking until all have returned.
func (d *Dispatcher) Publish(t Type, data map[string]any) {
	for _, h := range d.handlers[t] {
		h(Event{Type: t, Data: data})
	}
}
