package pipeline

import (
	"sync"
	"testing"
)

func TestRingBufferPublishConsumeOrder(t *testing.T) {
	rb := NewRingBuffer[int](8)
	for i := 0; i < 5; i++ {
		rb.Publish(i)
	}

	c := NewConsumer(rb)
	for i := 0; i < 5; i++ {
		if got := c.Consume(); got != i {
			t.Errorf("expected %d, got %d", i, got)
		}
	}
}

func TestRingBufferWrapsAroundCapacity(t *testing.T) {
	rb := NewRingBuffer[int](4)
	c := NewConsumer(rb)

	for round := 0; round < 3; round++ {
		for i := 0; i < 4; i++ {
			rb.Publish(round*4 + i)
		}
		for i := 0; i < 4; i++ {
			want := round*4 + i
			if got := c.Consume(); got != want {
				t.Errorf("round %d: expected %d, got %d", round, want, got)
			}
		}
	}
}

func TestRingBufferConcurrentProducerConsumer(t *testing.T) {
	rb := NewRingBuffer[int](16)
	const n = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			rb.Publish(i)
		}
	}()

	c := NewConsumer(rb)
	for i := 0; i < n; i++ {
		if got := c.Consume(); got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
	}
	wg.Wait()
}

func TestRingBufferPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-power-of-2 size")
		}
	}()
	NewRingBuffer[int](3)
}
