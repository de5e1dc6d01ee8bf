package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"mbp10/domain"
)

// mboFieldCount is the number of comma-separated fields on one MBO row:
// ts_recv, ts_event, rtype, publisher_id, instrument_id, action, side,
// price, size, channel_id, order_id, flags, ts_in_delta, sequence, symbol.
const mboFieldCount = 15

// Reader parses MBO rows from an underlying CSV stream into domain.Event
// values. Malformed rows (wrong field count, unparseable numeric fields,
// unrecognized action/side characters) are dropped silently, matching the
// collaborator contract: the core is only ever handed well-typed events.
type Reader struct {
	csv     *csv.Reader
	dropped uint64
}

// NewReader wraps r as an MBO event source.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually so malformed rows can be dropped instead of erroring the whole stream
	return &Reader{csv: cr}
}

// Dropped reports how many rows have been skipped for malformed content.
func (r *Reader) Dropped() uint64 {
	return r.dropped
}

// Next returns the next well-formed event, skipping malformed rows. It
// returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (*domain.Event, error) {
	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		e, ok := r.parseRow(row)
		if !ok {
			r.dropped++
			continue
		}
		return e, nil
	}
}

func (r *Reader) parseRow(row []string) (*domain.Event, bool) {
	if len(row) != mboFieldCount {
		return nil, false
	}

	tsRecv, err := ParseTimestamp(row[0])
	if err != nil {
		return nil, false
	}
	tsEvent, err := ParseTimestamp(row[1])
	if err != nil {
		return nil, false
	}
	rtype, err := strconv.ParseUint(row[2], 10, 16)
	if err != nil {
		return nil, false
	}
	publisherID, err := strconv.ParseUint(row[3], 10, 16)
	if err != nil {
		return nil, false
	}
	instrumentID, err := strconv.ParseUint(row[4], 10, 32)
	if err != nil {
		return nil, false
	}

	action, ok := parseAction(row[5])
	if !ok {
		return nil, false
	}
	side, ok := parseSide(row[6])
	if !ok {
		return nil, false
	}

	price, err := ParsePrice(row[7])
	if err != nil {
		return nil, false
	}
	size, err := strconv.ParseUint(row[8], 10, 32)
	if err != nil {
		return nil, false
	}
	channelID, err := strconv.ParseUint(row[9], 10, 16)
	if err != nil {
		return nil, false
	}
	orderID, err := strconv.ParseUint(row[10], 10, 64)
	if err != nil {
		return nil, false
	}
	flags, err := strconv.ParseUint(row[11], 10, 32)
	if err != nil {
		return nil, false
	}
	tsInDelta, err := strconv.ParseUint(row[12], 10, 32)
	if err != nil {
		return nil, false
	}
	sequence, err := strconv.ParseUint(row[13], 10, 64)
	if err != nil {
		return nil, false
	}

	e := domain.NewEvent()
	e.TsRecv = tsRecv
	e.TsEvent = tsEvent
	e.RType = domain.RecordType(rtype)
	e.PublisherID = domain.PublisherID(publisherID)
	e.InstrumentID = domain.InstrumentID(instrumentID)
	e.Action = action
	e.Side = side
	e.Price = price
	e.Size = domain.Size(size)
	e.ChannelID = uint16(channelID)
	e.OrderID = domain.OrderID(orderID)
	e.Flags = uint32(flags)
	e.TsInDelta = uint32(tsInDelta)
	e.Sequence = domain.Sequence(sequence)
	e.Symbol = row[14]
	return e, true
}

func parseAction(s string) (domain.Action, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch domain.Action(s[0]) {
	case domain.ActionAdd, domain.ActionCancel, domain.ActionTrade, domain.ActionFill, domain.ActionClear:
		return domain.Action(s[0]), true
	default:
		return 0, false
	}
}

func parseSide(s string) (domain.Side, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch domain.Side(s[0]) {
	case domain.SideBid, domain.SideAsk, domain.SideNeutral:
		return domain.Side(s[0]), true
	default:
		return 0, false
	}
}
