package eventbus

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type started struct{ Name string }
type finished struct{ Name string }

func TestPublishDispatchesByType(t *testing.T) {
	b := New()
	var got []string
	Subscribe(b, func(_ context.Context, e started) { got = append(got, "start "+e.Name) })
	Subscribe(b, func(_ context.Context, e finished) { got = append(got, "finish "+e.Name) })

	Publish(context.Background(), b, started{"a"})
	Publish(context.Background(), b, finished{"a"})
	Publish(context.Background(), b, 42)

	assert.Equal(t, []string{"start a", "finish a"}, got)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	var got []string
	// Both handlers are created from the same closure, so they share code.
	subscribe := func(label string) func() {
		return Subscribe(b, func(_ context.Context, e started) { got = append(got, label) })
	}
	unsubFirst := subscribe("first")
	subscribe("second")

	unsubFirst()
	unsubFirst()
	Publish(context.Background(), b, started{})

	assert.Equal(t, []string{"second"}, got)
}

func TestNilBus(t *testing.T) {
	var b *Bus
	called := false
	unsub := Subscribe(b, func(context.Context, started) { called = true })
	Publish(context.Background(), b, started{})
	unsub()
	assert.False(t, called)
}

func TestConcurrentPublish(t *testing.T) {
	b := New()
	var mu sync.Mutex
	count := 0
	Subscribe(b, func(context.Context, started) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Publish(context.Background(), b, started{})
			unsub := Subscribe(b, func(context.Context, finished) {})
			unsub()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, count)
}
