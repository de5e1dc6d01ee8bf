package engine

import (
	"testing"
	"time"

	"mbp10/domain"
)

func TestWorkerProcessesEventIntoRecord(t *testing.T) {
	w := NewWorker("AAPL")
	w.Start()
	defer w.Stop()

	e := domain.NewEvent()
	e.Action = domain.ActionAdd
	e.Side = domain.SideBid
	e.Price = 50_000_000
	e.Size = 100
	e.OrderID = 1
	e.Sequence = 1
	w.SubmitEvent(e)

	records := w.Records()
	done := make(chan *domain.Record, 1)
	go func() { done <- records.Consume() }()

	select {
	case r := <-done:
		if r.BidLevels[0].Price != 50_000_000 || r.BidLevels[0].Size != 100 {
			t.Errorf("expected bid[0]=(50_000_000,100), got (%d,%d)", r.BidLevels[0].Price, r.BidLevels[0].Size)
		}
		if r.Symbol != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", r.Symbol)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for record")
	}
}

func TestWorkerStatsAdvance(t *testing.T) {
	w := NewWorker("AAPL")
	w.Start()
	defer w.Stop()

	records := w.Records()
	for i := domain.OrderID(1); i <= 3; i++ {
		e := domain.NewEvent()
		e.Action = domain.ActionAdd
		e.Side = domain.SideAsk
		e.Price = 50_000_000
		e.Size = 10
		e.OrderID = i
		w.SubmitEvent(e)

		select {
		case <-drain(records):
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for record")
		}
	}

	if got := w.Stats().Snapshot().OrdersAdded; got != 3 {
		t.Errorf("expected 3 adds, got %d", got)
	}
}

func drain(c interface {
	Consume() *domain.Record
}) <-chan *domain.Record {
	ch := make(chan *domain.Record, 1)
	go func() { ch <- c.Consume() }()
	return ch
}
