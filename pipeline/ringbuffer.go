// Package pipeline holds the disruptor-style ring buffer used to move
// values between the ingest goroutine and a Book's dispatch goroutine
// (*domain.Event), and between the dispatcher and the output writer
// (*domain.Record).
package pipeline

import (
	"sync/atomic"
	_ "unsafe" // for go:linkname
)

//go:linkname semacquireSafe sync.runtime_Semacquire
func semacquireSafe(s *uint32)

//go:linkname semreleaseSafe sync.runtime_Semrelease
func semreleaseSafe(s *uint32, handoff bool, skipframes int)

// batchSize bounds how many elements a Consumer pulls into its local cache
// in one fill.
const batchSize = 128

// RingBuffer is a fixed-capacity, single-producer-or-multi, single- or
// multi-consumer queue backed by two counting semaphores (empty slots, full
// slots) instead of a mutex or CAS loop on the hot path. size must be a
// power of two.
//
// This collapses the teacher's RingBufferSemaphoreBatchSafe (*domain.Order)
// and TradeRingBufferBatchSafe (*domain.Trade) into one generic type: the
// two were identical but for element type, and Go generics make keeping
// both copies unnecessary.
type RingBuffer[T any] struct {
	buffer     []T
	mask       int64
	writeSeq   atomic.Int64
	readSeq    atomic.Int64
	emptySlots uint32
	fullSlots  uint32
}

// NewRingBuffer creates a ring buffer of the given power-of-two size.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	if size&(size-1) != 0 {
		panic("pipeline: RingBuffer size must be a power of 2")
	}

	rb := &RingBuffer[T]{
		buffer: make([]T, size),
		mask:   int64(size - 1),
	}
	for i := 0; i < size; i++ {
		semreleaseSafe(&rb.emptySlots, false, 0)
	}
	return rb
}

// Publish inserts one element, blocking until a slot is free.
func (rb *RingBuffer[T]) Publish(v T) {
	semacquireSafe(&rb.emptySlots)

	seq := rb.writeSeq.Add(1) - 1
	index := seq & rb.mask
	rb.buffer[index] = v

	semreleaseSafe(&rb.fullSlots, false, 0)
}

// Consumer is a batch-reading handle on a RingBuffer: it pulls up to
// batchSize elements per underlying semaphore round-trip and serves them
// out of a local cache, amortizing the semaphore cost across the batch.
type Consumer[T any] struct {
	rb         *RingBuffer[T]
	localCache [batchSize]T
	cacheStart int
	cacheEnd   int
}

// NewConsumer creates a batch-reading consumer over rb.
func NewConsumer[T any](rb *RingBuffer[T]) *Consumer[T] {
	return &Consumer[T]{rb: rb}
}

// Consume returns the next element, blocking until one is available.
func (c *Consumer[T]) Consume() T {
	if c.cacheStart < c.cacheEnd {
		v := c.localCache[c.cacheStart]
		c.cacheStart++
		return v
	}
	c.fillCache()
	v := c.localCache[c.cacheStart]
	c.cacheStart++
	return v
}

func (c *Consumer[T]) fillCache() {
	rb := c.rb

	// Block for the first element so the caller never observes an empty
	// cache; everything after that is a best-effort non-blocking top-up.
	semacquireSafe(&rb.fullSlots)
	seq := rb.readSeq.Add(1) - 1
	c.localCache[0] = rb.buffer[seq&rb.mask]
	semreleaseSafe(&rb.emptySlots, false, 0)
	acquired := 1

	available := int(rb.writeSeq.Load() - rb.readSeq.Load())
	if available > batchSize-1 {
		available = batchSize - 1
	}

	for i := 0; i < available; i++ {
		semacquireSafe(&rb.fullSlots)
		seq := rb.readSeq.Add(1) - 1
		c.localCache[acquired] = rb.buffer[seq&rb.mask]
		semreleaseSafe(&rb.emptySlots, false, 0)
		acquired++
	}

	c.cacheStart = 0
	c.cacheEnd = acquired
}
