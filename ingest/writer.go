package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"mbp10/domain"
)

var csvHeader = []string{
	"", "ts_recv", "ts_event", "rtype", "publisher_id", "instrument_id",
	"action", "side", "depth", "price", "size", "flags", "ts_in_delta", "sequence",
}

// Writer emits domain.Record values as MBP-10 CSV rows: a header row, then
// one row per record with a leading empty field, the record's own header
// fields, 10 bid (price, size, count) triples, 10 ask triples, and a
// trailing (symbol, order_id).
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter wraps w as an MBP-10 CSV sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteRecord writes r as one CSV row, writing the header first if it
// hasn't been written yet.
func (w *Writer) WriteRecord(r *domain.Record) error {
	if !w.wroteHeader {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}

	row := make([]string, 0, len(csvHeader)+2*3*domain.MaxDepth+2)
	row = append(row,
		"",
		FormatTimestamp(r.TsRecv),
		FormatTimestamp(r.TsEvent),
		strconv.FormatUint(uint64(r.RType), 10),
		strconv.FormatUint(uint64(r.PublisherID), 10),
		strconv.FormatUint(uint64(r.InstrumentID), 10),
		r.Action.String(),
		r.Side.String(),
		strconv.FormatUint(uint64(r.Depth), 10),
		FormatPrice(r.Price),
		strconv.FormatUint(uint64(r.Size), 10),
		strconv.FormatUint(uint64(r.Flags), 10),
		strconv.FormatUint(uint64(r.TsInDelta), 10),
		strconv.FormatUint(uint64(r.Sequence), 10),
	)

	for _, lv := range r.BidLevels {
		row = append(row, FormatPrice(lv.Price), strconv.FormatUint(uint64(lv.Size), 10), strconv.FormatUint(uint64(lv.Count), 10))
	}
	for _, lv := range r.AskLevels {
		row = append(row, FormatPrice(lv.Price), strconv.FormatUint(uint64(lv.Size), 10), strconv.FormatUint(uint64(lv.Count), 10))
	}

	row = append(row, r.Symbol, strconv.FormatUint(uint64(r.OrderID), 10))

	return w.csv.Write(row)
}

// Flush flushes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) writeHeader() error {
	header := make([]string, 0, len(csvHeader)+2*3*domain.MaxDepth+2)
	header = append(header, csvHeader...)
	for i := 0; i < domain.MaxDepth; i++ {
		header = append(header,
			"bid_px_"+pad2(i), "bid_sz_"+pad2(i), "bid_ct_"+pad2(i))
	}
	for i := 0; i < domain.MaxDepth; i++ {
		header = append(header,
			"ask_px_"+pad2(i), "ask_sz_"+pad2(i), "ask_ct_"+pad2(i))
	}
	header = append(header, "symbol", "order_id")

	if err := w.csv.Write(header); err != nil {
		return err
	}
	w.wroteHeader = true
	return nil
}

func pad2(i int) string {
	s := strconv.Itoa(i)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
