package engine

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Registry dispatches events to one Worker per instrument symbol, creating
// workers lazily. Reads are lock-free; writes (creating a new worker) are
// rare and copy-on-write, so they never block a reader.
//
// Grounded verbatim on the teacher's ExchangeEngine: same atomic.Value
// fast-path read, same mutex-guarded double-checked slow path, same
// copy-on-write map replace on create.
type Registry struct {
	workers    atomic.Value // map[string]*Worker
	mu         sync.Mutex
	bufferSize int
	log        zerolog.Logger
}

// NewRegistry creates an empty registry using the default ring buffer
// capacity and a no-op logger.
func NewRegistry() *Registry {
	return NewRegistryWithOptions(defaultBufferSize, zerolog.Nop())
}

// NewRegistryWithOptions creates an empty registry whose workers are all
// built with bufferSize-capacity ring buffers and log through l.
func NewRegistryWithOptions(bufferSize int, l zerolog.Logger) *Registry {
	r := &Registry{bufferSize: bufferSize, log: l}
	r.workers.Store(make(map[string]*Worker))
	return r
}

// Get returns the worker for symbol, starting a new one if none exists
// yet.
func (r *Registry) Get(symbol string) *Worker {
	workers := r.workers.Load().(map[string]*Worker)
	if w, ok := workers[symbol]; ok {
		return w
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	workers = r.workers.Load().(map[string]*Worker)
	if w, ok := workers[symbol]; ok {
		return w
	}

	w := NewWorkerWithBufferSize(symbol, r.bufferSize)
	w.SetLogger(r.log)
	w.Start()

	next := make(map[string]*Worker, len(workers)+1)
	for k, v := range workers {
		next[k] = v
	}
	next[symbol] = w
	r.workers.Store(next)

	return w
}

// StopAll signals every worker created so far to stop.
func (r *Registry) StopAll() {
	workers := r.workers.Load().(map[string]*Worker)
	for _, w := range workers {
		w.Stop()
	}
}

// Symbols returns the set of instrument symbols with an active worker.
func (r *Registry) Symbols() []string {
	workers := r.workers.Load().(map[string]*Worker)
	out := make([]string, 0, len(workers))
	for k := range workers {
		out = append(out, k)
	}
	return out
}
