package watcher

// Queue hands values from background goroutines to a single consumer loop.
// It holds at most one pending value: pushing replaces anything not yet drained.
type Queue[T any] struct {
	ch chan T
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{ch: make(chan T, 1)}
}

// Push stores v, dropping an older undrained value. It never blocks.
func (q *Queue[T]) Push(v T) {
	for {
		select {
		case q.ch <- v:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Drain calls fn for the pending value, if any, and reports how many ran
func (q *Queue[T]) Drain(fn func(T)) int {
	n := 0
	for {
		select {
		case v := <-q.ch:
			fn(v)
			n++
		default:
			return n
		}
	}
}

// C exposes the channel for consumers that select on it
func (q *Queue[T]) C() <-chan T {
	return q.ch
}
