package domain

import "sync"

// PriceLevel is one aggregated level in a depth snapshot: price, the summed
// resting size of its members, and the member count. The sentinel slot used
// to pad unused depth positions is the zero value.
type PriceLevel struct {
	Price Price
	Size  Size
	Count uint32
}

// Record is one MBP-10 output row: the triggering event's header fields plus
// the post-event top-MaxDepth bid and ask snapshots.
type Record struct {
	// Header, mirrored from the triggering Event.
	TsRecv       Timestamp
	TsEvent      Timestamp
	RType        RecordType
	PublisherID  PublisherID
	InstrumentID InstrumentID
	Action       Action
	Side         Side
	Depth        uint8
	Price        Price
	Size         Size
	Flags        uint32
	TsInDelta    uint32
	Sequence     Sequence
	Symbol       string
	OrderID      OrderID

	// Depth payload.
	BidLevels [MaxDepth]PriceLevel
	AskLevels [MaxDepth]PriceLevel
}

var recordPool sync.Pool

func init() {
	recordPool.New = func() any {
		return &Record{}
	}
}

// NewRecord returns a zeroed Record from the pool.
func NewRecord() *Record {
	return recordPool.Get().(*Record)
}

// Destroy resets the record and returns it to the pool.
func (r *Record) Destroy() {
	r.Reset()
	recordPool.Put(r)
}

// Reset zeroes the record in place via whole-struct assignment.
func (r *Record) Reset() {
	*r = Record{}
}
