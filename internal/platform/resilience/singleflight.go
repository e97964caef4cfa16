package resilience

import "sync"

// Flight collapses concurrent calls that share a key into one execution.
type Flight[T any] struct {
	mu      sync.Mutex
	pending map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per key at a time. Callers that arrive while fn is running
// wait for it and receive the same result with shared set to true.
func (f *Flight[T]) Do(key string, fn func() (T, error)) (val T, shared bool, err error) {
	f.mu.Lock()
	if f.pending == nil {
		f.pending = make(map[string]*flightCall[T])
	}
	if c, ok := f.pending[key]; ok {
		f.mu.Unlock()
		<-c.done
		return c.val, true, c.err
	}

	c := &flightCall[T]{done: make(chan struct{})}
	f.pending[key] = c
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.pending, key)
		f.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
	return c.val, false, c.err
}
