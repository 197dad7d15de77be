package particle

// Signal is a synchronous broadcast of values of type T.
// Listeners are called in subscription order on the emitting goroutine.
type Signal[T any] struct {
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
// The returned function may be called any number of times.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers v to every current listener.
func (s *Signal[T]) Emit(v T) {
	// a listener may unsubscribe while being called
	snapshot := make([]listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len returns the number of registered listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}

// Events groups the window-level notifications the network listens to.
// The host scene polls input and publishes here once per frame.
type Events struct {
	Resize      Signal[ResizeEvent]
	PointerMove Signal[PointerMoveEvent]
}

// NewEvents creates an empty event hub.
func NewEvents() *Events {
	return &Events{}
}

// ListenerCount returns the total number of listeners across all signals.
func (e *Events) ListenerCount() int {
	return e.Resize.Len() + e.PointerMove.Len()
}
