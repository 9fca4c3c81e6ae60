package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"spellslinger-go/core/event"
)

// mockEvent is a simple event for testing.
type mockEvent struct {
	name string
}

func (e *mockEvent) EventName() string {
	return e.name
}

// waitGroupTimeout reports whether wg finished within d.
func waitGroupTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := New(10, nil)
	defer bus.Close()

	var received atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(func(e event.Event) {
		received.Add(1)
		wg.Done()
	})

	bus.Publish(&mockEvent{name: "test"})

	if !waitGroupTimeout(&wg, time.Second) {
		t.Fatal("Timeout waiting for event")
	}
	if received.Load() != 1 {
		t.Errorf("Expected 1 event, got %d", received.Load())
	}
}

func TestEventBus_MultipleSubscribers(t *testing.T) {
	bus := New(10, nil)
	defer bus.Close()

	var received atomic.Int32
	var wg sync.WaitGroup
	wg.Add(3)

	for i := 0; i < 3; i++ {
		bus.Subscribe(func(e event.Event) {
			received.Add(1)
			wg.Done()
		})
	}

	bus.Publish(&mockEvent{name: "test"})

	if !waitGroupTimeout(&wg, time.Second) {
		t.Fatal("Timeout waiting for events")
	}
	if received.Load() != 3 {
		t.Errorf("Expected 3 events, got %d", received.Load())
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := New(10, nil)

	var received atomic.Int32
	subID := bus.Subscribe(func(e event.Event) {
		received.Add(1)
	})

	bus.Unsubscribe(subID)
	bus.Publish(&mockEvent{name: "test"})
	bus.Close()

	if received.Load() != 0 {
		t.Errorf("Expected 0 events after unsubscribe, got %d", received.Load())
	}
}

func TestEventBus_Close(t *testing.T) {
	bus := New(10, nil)

	var received atomic.Int32
	bus.Subscribe(func(e event.Event) {
		received.Add(1)
	})

	bus.Close()
	bus.Publish(&mockEvent{name: "test"})

	time.Sleep(50 * time.Millisecond)

	if received.Load() != 0 {
		t.Errorf("Expected 0 events after close, got %d", received.Load())
	}

	// Close again should not panic
	bus.Close()
}

func TestEventBus_HandlerPanic(t *testing.T) {
	bus := New(10, nil)
	defer bus.Close()

	var received atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)

	bus.Subscribe(func(e event.Event) {
		panic("test panic")
	})

	bus.Subscribe(func(e event.Event) {
		received.Add(1)
		wg.Done()
	})

	bus.Publish(&mockEvent{name: "test"})

	if !waitGroupTimeout(&wg, time.Second) {
		t.Fatal("Timeout waiting for event")
	}
	if received.Load() != 1 {
		t.Errorf("Expected 1 event despite panic, got %d", received.Load())
	}
}

func TestEventBus_DeliveryOrder(t *testing.T) {
	bus := New(10, nil)

	var mu sync.Mutex
	var got []string
	bus.Subscribe(func(e event.Event) {
		mu.Lock()
		got = append(got, e.EventName())
		mu.Unlock()
	})

	want := []string{"first", "second", "third"}
	for _, name := range want {
		bus.Publish(&mockEvent{name: name})
	}
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != len(want) {
		t.Fatalf("received %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEventBus_ConcurrentPublish(t *testing.T) {
	bus := New(100, nil)
	defer bus.Close()

	var received atomic.Int32
	var wg sync.WaitGroup

	const numEvents = 100
	wg.Add(numEvents)

	bus.Subscribe(func(e event.Event) {
		received.Add(1)
		wg.Done()
	})

	for i := 0; i < numEvents; i++ {
		go func() {
			bus.Publish(&mockEvent{name: "test"})
		}()
	}

	if !waitGroupTimeout(&wg, 5*time.Second) {
		t.Fatalf("Timeout: received %d of %d events", received.Load(), numEvents)
	}
}
