// Package engine runs one orderbook.Book per instrument on its own
// dedicated goroutine, fed and drained through pipeline ring buffers.
package engine

import (
	"runtime"

	"github.com/rs/zerolog"

	"mbp10/domain"
	"mbp10/orderbook"
	"mbp10/pipeline"
)

// defaultBufferSize is used by NewWorker; NewWorkerWithBufferSize lets a
// Registry propagate a configured size instead.
const defaultBufferSize = 65536

// Worker owns one instrument's Book and the single goroutine that mutates
// it. All state it touches (the book, the tracker, the stats) is private
// to that goroutine; nothing outside Worker reaches in except through the
// ring buffers and the atomic Stats counters.
//
// Grounded on the teacher's MatchingEngine, with processOrder/matchBuyOrder/
// matchSellOrder/executeTrade (order crossing) dropped: this package
// reconstructs book state from a feed, it does not cross orders.
type Worker struct {
	Symbol string

	book     *orderbook.Book
	in       *pipeline.RingBuffer[*domain.Event]
	out      *pipeline.RingBuffer[*domain.Record]
	consumer *pipeline.Consumer[*domain.Record]

	stopChan chan struct{}
}

// NewWorker creates a stopped worker for symbol with the default ring
// buffer capacity.
func NewWorker(symbol string) *Worker {
	return NewWorkerWithBufferSize(symbol, defaultBufferSize)
}

// NewWorkerWithBufferSize creates a stopped worker for symbol with the
// given ring buffer capacity (must be a power of two).
func NewWorkerWithBufferSize(symbol string, bufferSize int) *Worker {
	out := pipeline.NewRingBuffer[*domain.Record](bufferSize)
	return &Worker{
		Symbol:   symbol,
		book:     orderbook.NewBook(symbol),
		in:       pipeline.NewRingBuffer[*domain.Event](bufferSize),
		out:      out,
		consumer: pipeline.NewConsumer(out),
		stopChan: make(chan struct{}),
	}
}

// SetLogger attaches a logger the worker's book warns/debugs through on
// semantic anomalies.
func (w *Worker) SetLogger(l zerolog.Logger) {
	w.book.SetLogger(l)
}

// Start launches the dispatch goroutine. Start must be called at most once.
func (w *Worker) Start() {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		consumer := pipeline.NewConsumer(w.in)
		for {
			select {
			case <-w.stopChan:
				return
			default:
			}

			e := consumer.Consume()
			w.book.Apply(e)

			r := domain.NewRecord()
			copyHeader(r, e)
			w.book.Snapshot(r)
			w.out.Publish(r)

			e.Destroy()
		}
	}()
}

// Stop signals the dispatch goroutine to exit after its current event.
func (w *Worker) Stop() {
	close(w.stopChan)
}

// SubmitEvent enqueues e for processing. It blocks if the input buffer is
// full; ownership of e passes to the worker, which destroys it after use.
func (w *Worker) SubmitEvent(e *domain.Event) {
	w.in.Publish(e)
}

// Records returns the consumer over this worker's output records. There is
// exactly one per worker; callers must not create a second one over the
// same ring buffer, or they would race for records and each would observe
// only a subset.
func (w *Worker) Records() *pipeline.Consumer[*domain.Record] {
	return w.consumer
}

// Stats returns the worker's book's running counters.
func (w *Worker) Stats() *orderbook.Stats {
	return &w.book.Stats
}

func copyHeader(r *domain.Record, e *domain.Event) {
	r.TsRecv = e.TsRecv
	r.TsEvent = e.TsEvent
	r.RType = domain.RecordTypeMBP
	r.PublisherID = e.PublisherID
	r.InstrumentID = e.InstrumentID
	r.Action = e.Action
	r.Side = e.Side
	r.Price = e.Price
	r.Size = e.Size
	r.Flags = e.Flags
	r.TsInDelta = e.TsInDelta
	r.Sequence = e.Sequence
	r.OrderID = e.OrderID
}
