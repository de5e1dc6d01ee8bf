// Command reconstruct replays an MBO event CSV into an MBP-10 snapshot CSV.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"mbp10/engine"
	"mbp10/ingest"
	"mbp10/internal/config"
	"mbp10/internal/logging"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <input_mbo_file.csv>\n", os.Args[0])
		os.Exit(1)
	}

	cfg := config.Load()
	log := logging.New(cfg)

	if err := run(os.Args[1], cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath string, cfg config.Config, log logging.Logger) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	reader := ingest.NewReader(in)
	writer := ingest.NewWriter(out)

	reg := engine.NewRegistryWithOptions(cfg.RingBufferSize, log)
	defer reg.StopAll()

	log.Info().Str("input", inputPath).Str("output", cfg.OutputPath).Msg("reconstruction started")
	start := time.Now()

	var rows uint64
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}

		w := reg.Get(e.Symbol)
		w.SubmitEvent(e)

		r := w.Records().Consume()
		if err := writer.WriteRecord(r); err != nil {
			r.Destroy()
			return fmt.Errorf("write record: %w", err)
		}
		r.Destroy()
		rows++
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	elapsed := time.Since(start)
	log.Info().
		Uint64("rows", rows).
		Uint64("dropped_input_rows", reader.Dropped()).
		Dur("elapsed", elapsed).
		Float64("rows_per_sec", float64(rows)/elapsed.Seconds()).
		Msg("reconstruction complete")

	return nil
}
