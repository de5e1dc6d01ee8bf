package main

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"mbp10/domain"
	"mbp10/engine"
)

func main() {
	fmt.Println("=== orderbook reconstruction throughput test ===")

	w := engine.NewWorker("AAPL")
	w.Start()
	defer w.Stop()

	testDuration := 5 * time.Second
	numCPU := runtime.NumCPU()
	numProducers := numCPU - 2 // one core for the dispatcher, one for GC/scheduler
	if numProducers < 1 {
		numProducers = 1
	}

	var (
		eventCount  atomic.Int64
		recordCount atomic.Int64
		lastRecord  atomic.Pointer[domain.Record]
	)

	go func() {
		records := w.Records()
		for {
			r := records.Consume()
			prev := lastRecord.Swap(r)
			if prev != nil {
				prev.Destroy()
			}
			recordCount.Add(1)
		}
	}()

	fmt.Printf("starting...\n")
	fmt.Printf("CPU cores: %d\n", numCPU)
	fmt.Printf("producers: %d (NumCPU - 2)\n", numProducers)
	fmt.Printf("duration: %v\n\n", testDuration)

	startTime := time.Now()
	stopChan := make(chan struct{})

	for p := 0; p < numProducers; p++ {
		go func(producerID int) {
			var orderID uint64
			resting := make([]domain.OrderID, 0, 256)
			restingSide := make([]domain.Side, 0, 256)
			for i := 0; ; i++ {
				select {
				case <-stopChan:
					return
				default:
				}

				e := domain.NewEvent()
				// Cancel roughly one in five, to exercise both add and
				// cancel dispatch paths rather than only growing the book.
				if len(resting) > 0 && i%5 == 0 {
					id := resting[len(resting)-1]
					resting = resting[:len(resting)-1]
					e.Action = domain.ActionCancel
					e.Side = restingSide[len(restingSide)-1]
					restingSide = restingSide[:len(restingSide)-1]
					e.OrderID = id
				} else {
					id := domain.OrderID(producerID)<<48 | domain.OrderID(orderID)
					orderID++
					e.Action = domain.ActionAdd
					if orderID%2 == 0 {
						e.Side = domain.SideBid
					} else {
						e.Side = domain.SideAsk
					}
					e.Price = domain.Price(50_000_000 + int64(orderID%200)*domain.PriceScale)
					e.Size = 1
					e.OrderID = id
					resting = append(resting, id)
					restingSide = append(restingSide, e.Side)
				}

				w.SubmitEvent(e)
				eventCount.Add(1)
			}
		}(p)
	}

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			elapsed := time.Since(startTime)
			events := eventCount.Load()
			records := recordCount.Load()
			fmt.Printf("[%.0fs] events: %d (%.0f/s) | records: %d (%.0f/s)\n",
				elapsed.Seconds(), events, float64(events)/elapsed.Seconds(),
				records, float64(records)/elapsed.Seconds())
		}
	}()

	time.Sleep(testDuration)
	close(stopChan)
	ticker.Stop()
	time.Sleep(500 * time.Millisecond)

	elapsed := time.Since(startTime)
	totalEvents := eventCount.Load()
	totalRecords := recordCount.Load()

	eps := float64(totalEvents) / elapsed.Seconds()
	rps := float64(totalRecords) / elapsed.Seconds()
	avgLatency := elapsed.Seconds() * 1e6 / float64(totalEvents)

	fmt.Println("\n=== results ===")
	fmt.Printf("duration:       %v\n", elapsed)
	fmt.Printf("total events:   %d\n", totalEvents)
	fmt.Printf("total records:  %d\n", totalRecords)
	fmt.Printf("event throughput:  %.0f events/sec\n", eps)
	fmt.Printf("record throughput: %.0f records/sec\n", rps)
	fmt.Printf("avg latency:       %.2f us/event\n", avgLatency)

	stats := w.Stats().Snapshot()
	fmt.Println("\n=== book stats ===")
	fmt.Printf("events processed:    %d\n", stats.EventsProcessed)
	fmt.Printf("orders added:        %d\n", stats.OrdersAdded)
	fmt.Printf("orders cancelled:    %d\n", stats.OrdersCancelled)
	fmt.Printf("anomalies:           %d\n", stats.Anomalies)

	if r := lastRecord.Load(); r != nil {
		fmt.Println("\n=== final depth (top 5) ===")
		fmt.Println("bids:")
		for i := 0; i < 5; i++ {
			lv := r.BidLevels[i]
			fmt.Printf("  %d. price=%d size=%d orders=%d\n", i+1, lv.Price, lv.Size, lv.Count)
		}
		fmt.Println("asks:")
		for i := 0; i < 5; i++ {
			lv := r.AskLevels[i]
			fmt.Printf("  %d. price=%d size=%d orders=%d\n", i+1, lv.Price, lv.Size, lv.Count)
		}
	}
}
