package domain

import "sync"

// Event is one parsed MBO row: the header fields common to every record plus
// the action-specific (action, side, price, size, order_id) tuple.
//
// Hot fields (read on every dispatch) are grouped first; header fields that
// only matter for round-tripping into the output record are grouped after.
type Event struct {
	// Hot fields: consulted by Book.Apply on every event.
	Action  Action
	Side    Side
	Price   Price
	Size    Size
	OrderID OrderID

	// Header fields: copied into the paired MBP record, except ChannelID
	// (the record has no such field), RType (the record is tagged MBP) and
	// Symbol (the record takes the book's symbol).
	TsRecv       Timestamp
	TsEvent      Timestamp
	RType        RecordType
	PublisherID  PublisherID
	InstrumentID InstrumentID
	ChannelID    uint16
	Flags        uint32
	TsInDelta    uint32
	Sequence     Sequence
	Symbol       string
}

var eventPool sync.Pool

func init() {
	eventPool.New = func() any {
		return &Event{}
	}
}

// NewEvent returns a zeroed Event from the pool, ready to be filled in by a
// parser.
func NewEvent() *Event {
	return eventPool.Get().(*Event)
}

// Destroy resets the event and returns it to the pool. Callers must not use
// the event again after calling Destroy.
func (e *Event) Destroy() {
	e.Reset()
	eventPool.Put(e)
}

// Reset zeroes the event in place via whole-struct assignment, which the
// compiler lowers to a single zeroing move rather than field-by-field
// clears.
func (e *Event) Reset() {
	*e = Event{}
}
