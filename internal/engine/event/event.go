// Package event provides typed multicast notifications.
package event

// ListenerID identifies a subscription so it can be removed later.
type ListenerID int

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Event delivers a value of type T to every subscribed listener, in
// subscription order. The zero value is ready to use.
type Event[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// Subscribe registers fn and returns an ID for Unsubscribe.
// A nil fn is ignored and returns -1.
func (e *Event[T]) Subscribe(fn func(T)) ListenerID {
	if fn == nil {
		return -1
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe removes a listener. Unknown IDs are ignored.
func (e *Event[T]) Unsubscribe(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Publish calls every listener with v.
func (e *Event[T]) Publish(v T) {
	for _, l := range e.listeners {
		l.fn(v)
	}
}

// Len returns the number of listeners.
func (e *Event[T]) Len() int {
	return len(e.listeners)
}
