package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/tickstack/constants"
)

func keyEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue()
	for _, r := range "abc" {
		q.Push(keyEvent(r))
	}

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	for i, r := range "abc" {
		if got[i].Rune != r {
			t.Errorf("Event %d: expected %c, got %c", i, r, got[i].Rune)
		}
	}
}

func TestQueueConsumeEmptyReturnsNil(t *testing.T) {
	q := NewQueue()
	if got := q.Consume(); got != nil {
		t.Errorf("Expected nil on empty queue, got %v", got)
	}
}

func TestQueueConsumeDrains(t *testing.T) {
	q := NewQueue()
	q.Push(keyEvent('x'))

	if got := q.Consume(); len(got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(got))
	}
	if got := q.Consume(); got != nil {
		t.Error("Second consume must return nothing")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()

	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventKey, Key: KeyRune, Rune: rune(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", constants.EventQueueSize, len(got))
	}
	// The newest events survive
	if got[len(got)-1].Rune != rune(total-1) {
		t.Errorf("Expected newest event to survive overflow, got %d", got[len(got)-1].Rune)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 16 // Total stays within queue capacity

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(keyEvent('k'))
			}
		}()
	}
	wg.Wait()

	got := q.Consume()
	if len(got) != producers*perProducer {
		t.Errorf("Expected %d events from concurrent producers, got %d", producers*perProducer, len(got))
	}
}
