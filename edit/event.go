package edit

import "slices"

// Event is a list of listeners notified synchronously, in registration order.
//
// Firing an event from inside one of its own listeners does not recurse: the
// nested payload is queued and delivered to all listeners once the current
// round finishes.
//
// The zero value is ready to use. Event is not safe for concurrent use.
type Event[T any] struct {
	listeners []listener[T]
	nextID    uint64
	firing    bool
	pending   []T
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Add registers fn and returns a function that unregisters it.
func (e *Event[T]) Add(fn func(T)) (remove func()) {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})

	return func() {
		// Clone so that a round in progress keeps its own view.
		e.listeners = slices.DeleteFunc(slices.Clone(e.listeners), func(l listener[T]) bool {
			return l.id == id
		})
	}
}

// Len returns the number of registered listeners.
func (e *Event[T]) Len() int {
	return len(e.listeners)
}

// Fire notifies every listener with v.
func (e *Event[T]) Fire(v T) {
	if e.firing {
		e.pending = append(e.pending, v)
		return
	}

	e.firing = true
	defer func() {
		e.firing = false
		e.pending = nil
	}()

	for {
		for _, l := range e.listeners {
			l.fn(v)
		}
		if len(e.pending) == 0 {
			return
		}
		v = e.pending[0]
		e.pending = e.pending[1:]
	}
}
