// Package pool wraps sync.Pool with a typed API.
package pool

import "sync"

// Pool hands out *T values, resetting each one before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New returns a pool that builds values with factory. reset may be nil.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return factory() }},
		reset: reset,
	}
}

// Get returns a reset value from the pool, or a fresh one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns obj to the pool. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj != nil {
		p.pool.Put(obj)
	}
}
