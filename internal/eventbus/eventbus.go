package eventbus

import (
	"context"
	"reflect"
	"sync"
)

// Handler processes events of type T.
type Handler[T any] func(context.Context, T)

type subscription struct {
	id uint64
	fn func(context.Context, any)
}

// Bus is a simple in-process event dispatcher. Handlers run synchronously on
// the publishing goroutine. A nil *Bus drops every event.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[reflect.Type][]subscription
}

// New creates a new Bus.
func New() *Bus { return &Bus{handlers: make(map[reflect.Type][]subscription)} }

func (b *Bus) subscribe(t reflect.Type, fn func(context.Context, any)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			hs := b.handlers[t]
			for i, s := range hs {
				if s.id == id {
					hs = append(hs[:i:i], hs[i+1:]...)
					break
				}
			}
			if len(hs) == 0 {
				delete(b.handlers, t)
			} else {
				b.handlers[t] = hs
			}
		})
	}
}

func (b *Bus) emit(ctx context.Context, t reflect.Type, e any) {
	b.mu.RLock()
	hs := b.handlers[t]
	b.mu.RUnlock()
	// Unsubscribe never mutates a published slice in place, so hs is safe to
	// range over without the lock.
	for _, s := range hs {
		s.fn(ctx, e)
	}
}

// Subscribe registers h for events of type T on b.
func Subscribe[T any](b *Bus, h Handler[T]) (unsubscribe func()) {
	if b == nil {
		return func() {}
	}
	return b.subscribe(reflect.TypeFor[T](), func(ctx context.Context, v any) { h(ctx, v.(T)) })
}

// Publish sends e to the handlers subscribed to T on b.
func Publish[T any](ctx context.Context, b *Bus, e T) {
	if b == nil {
		return
	}
	b.emit(ctx, reflect.TypeFor[T](), e)
}
