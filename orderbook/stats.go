package orderbook

import "sync/atomic"

// Stats are lock-free running counters for one Book, incremented on the
// single dispatch goroutine that owns the book and readable concurrently
// from anywhere via Snapshot. The five core counters mirror spec §4.5;
// Anomalies is a supplemental counter for the semantic-anomaly taxonomy in
// §7, surfaced the same way: logged via the statistics surface, never
// fatal.
type Stats struct {
	eventsProcessed   uint64
	ordersAdded       uint64
	ordersCancelled   uint64
	tradesProcessed   uint64
	totalProcessingNs uint64
	anomalies         uint64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	EventsProcessed   uint64
	OrdersAdded       uint64
	OrdersCancelled   uint64
	TradesProcessed   uint64
	TotalProcessingNs uint64
	Anomalies         uint64
}

func (s *Stats) addProcessed(elapsedNs int64) {
	atomic.AddUint64(&s.eventsProcessed, 1)
	if elapsedNs > 0 {
		atomic.AddUint64(&s.totalProcessingNs, uint64(elapsedNs))
	}
}
func (s *Stats) addAdd()     { atomic.AddUint64(&s.ordersAdded, 1) }
func (s *Stats) addCancel()  { atomic.AddUint64(&s.ordersCancelled, 1) }
func (s *Stats) addTrade()   { atomic.AddUint64(&s.tradesProcessed, 1) }
func (s *Stats) addAnomaly() { atomic.AddUint64(&s.anomalies, 1) }

// Snapshot returns a consistent-enough point-in-time read of all counters.
// Individual fields may be read out of step with one another under
// concurrent writes; callers that need atomicity across fields should stop
// the writer first.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		EventsProcessed:   atomic.LoadUint64(&s.eventsProcessed),
		OrdersAdded:       atomic.LoadUint64(&s.ordersAdded),
		OrdersCancelled:   atomic.LoadUint64(&s.ordersCancelled),
		TradesProcessed:   atomic.LoadUint64(&s.tradesProcessed),
		TotalProcessingNs: atomic.LoadUint64(&s.totalProcessingNs),
		Anomalies:         atomic.LoadUint64(&s.anomalies),
	}
}
