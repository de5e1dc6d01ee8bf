package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"mbp10/domain"
	"mbp10/engine"
)

func main() {
	cpuFile, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	defer cpuFile.Close()

	pprof.StartCPUProfile(cpuFile)
	defer pprof.StopCPUProfile()

	fmt.Println("=== CPU profiling ===")
	fmt.Println("writing CPU profile: cpu.prof")

	w := engine.NewWorker("AAPL")
	w.Start()
	defer w.Stop()

	duration := 10 * time.Second
	numCPU := runtime.NumCPU()
	numProducers := numCPU - 2
	if numProducers < 1 {
		numProducers = 1
	}

	var eventCount, recordCount atomic.Int64

	go func() {
		records := w.Records()
		for {
			r := records.Consume()
			r.Destroy()
			recordCount.Add(1)
		}
	}()

	fmt.Printf("CPU cores: %d\n", numCPU)
	fmt.Printf("producers: %d\n", numProducers)
	fmt.Printf("duration: %v\n\n", duration)

	startTime := time.Now()
	stopChan := make(chan struct{})

	for p := 0; p < numProducers; p++ {
		go func(producerID int) {
			var orderID uint64
			for {
				select {
				case <-stopChan:
					return
				default:
					e := domain.NewEvent()
					e.Action = domain.ActionAdd
					if orderID%2 == 0 {
						e.Side = domain.SideBid
					} else {
						e.Side = domain.SideAsk
					}
					e.Price = domain.Price(50_000_000 + int64(orderID%200)*domain.PriceScale)
					e.Size = 1
					e.OrderID = domain.OrderID(producerID)<<48 | domain.OrderID(orderID)
					w.SubmitEvent(e)
					eventCount.Add(1)
					orderID++
				}
			}
		}(p)
	}

	time.Sleep(duration)
	close(stopChan)
	time.Sleep(500 * time.Millisecond)

	elapsed := time.Since(startTime)
	totalEvents := eventCount.Load()
	totalRecords := recordCount.Load()

	fmt.Println("\n=== profiling results ===")
	fmt.Printf("events submitted: %d\n", totalEvents)
	fmt.Printf("records produced: %d\n", totalRecords)
	fmt.Printf("Event rate: %.0f events/sec\n", float64(totalEvents)/elapsed.Seconds())

	fmt.Println("\nanalyze the CPU profile:")
	fmt.Println("  go tool pprof -http=:8080 cpu.prof")
	fmt.Println("  or: go tool pprof cpu.prof")
	fmt.Println("  then: top10  (top 10 hot functions)")
	fmt.Println("  then: list <function>  (see the source)")
}
