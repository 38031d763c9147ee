package selection

// Observer receives values pushed by a Stream.
type Observer[T any] interface {
	OnChange(T)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(T)

// OnChange calls f(v).
func (f ObserverFunc[T]) OnChange(v T) { f(v) }

// Stream is a synchronous multicast of values. Each Emit delivers to every
// current subscriber in subscription order before returning. Observer
// panics are not recovered.
type Stream[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	observer Observer[T]
	removed  bool
}

// Subscription is returned by Stream.Subscribe.
type Subscription struct {
	cancel func()
}

// Unsubscribe stops delivery to the observer. It is safe to call more
// than once and from within an observer.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Subscribe registers o for future emissions.
func (s *Stream[T]) Subscribe(o Observer[T]) *Subscription {
	sub := &subscriber[T]{observer: o}
	s.subs = append(s.subs, sub)
	return &Subscription{cancel: func() { s.remove(sub) }}
}

// SubscribeFunc registers fn for future emissions.
func (s *Stream[T]) SubscribeFunc(fn func(T)) *Subscription {
	return s.Subscribe(ObserverFunc[T](fn))
}

// Len returns the number of active subscribers.
func (s *Stream[T]) Len() int {
	return len(s.subs)
}

// Emit pushes v to all subscribers registered before the call.
// Subscribers removed while delivery is in progress are skipped.
func (s *Stream[T]) Emit(v T) {
	if len(s.subs) == 0 {
		return
	}
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		sub.observer.OnChange(v)
	}
}

func (s *Stream[T]) remove(target *subscriber[T]) {
	target.removed = true
	for i, sub := range s.subs {
		if sub == target {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}
