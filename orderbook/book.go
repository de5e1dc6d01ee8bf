package orderbook

import (
	"time"

	"github.com/rs/zerolog"

	"mbp10/domain"
)

// Book is one instrument's order book: a bid Side, an ask Side, the trade
// sequence tracker that links them, and running stats. A Book is not
// goroutine-safe; callers serialize access through a single writer, per
// instrument.
type Book struct {
	Symbol string
	Log    zerolog.Logger

	bid    Side
	ask    Side
	trades *tracker
	Stats  Stats
}

// NewBook creates an empty book for symbol. Semantic anomalies are
// discarded unless a logger is attached via SetLogger.
func NewBook(symbol string) *Book {
	return &Book{
		Symbol: symbol,
		Log:    zerolog.Nop(),
		bid:    newRBTreeSide(true),
		ask:    newRBTreeSide(false),
		trades: newTracker(),
	}
}

// SetLogger attaches a logger that Apply warns on for semantic anomalies.
func (b *Book) SetLogger(l zerolog.Logger) {
	b.Log = l
}

func (b *Book) side(s domain.Side) Side {
	if s == domain.SideBid {
		return b.bid
	}
	return b.ask
}

// Apply dispatches one MBO event against the book, mutating bid/ask state
// and the trade tracker. Anomalies (duplicate add, unknown order, fill or
// cancel with no matching state) are counted in Stats and never returned as
// an error: per the feed's forward-progress policy, a malformed or
// out-of-order event is logged and skipped, not fatal.
func (b *Book) Apply(e *domain.Event) {
	start := time.Now()
	defer func() { b.Stats.addProcessed(int64(time.Since(start))) }()

	switch e.Action {
	case domain.ActionAdd:
		b.Stats.addAdd()
		if err := b.side(e.Side).Add(e.OrderID, e.Price, e.Size); err != nil {
			b.Stats.addAnomaly()
			b.Log.Warn().Uint64("order_id", uint64(e.OrderID)).Msg("duplicate add, overwriting")
		}

	case domain.ActionCancel:
		b.Stats.addCancel()
		if side, _, consumed, ok := b.trades.Take(e.OrderID); ok {
			b.Stats.addTrade()
			if err := b.side(side.Opposite()).Consume(e.OrderID, consumed); err != nil {
				b.Stats.addAnomaly()
				b.Log.Debug().Uint64("order_id", uint64(e.OrderID)).Msg("trade terminator for unknown resting order")
			}
			return
		}
		if err := b.side(e.Side).Cancel(e.OrderID, e.Size); err != nil {
			b.Stats.addAnomaly()
			b.Log.Debug().Uint64("order_id", uint64(e.OrderID)).Msg("cancel for unknown order, ignored")
		}

	case domain.ActionTrade:
		if b.trades.Begin(e.OrderID, e.Side, e.Price, e.Size) {
			b.Stats.addAnomaly()
			b.Log.Warn().Uint64("order_id", uint64(e.OrderID)).Msg("trade sequence already open for order, replacing")
		}

	case domain.ActionFill:
		if !b.trades.Fill(e.OrderID, e.Size) {
			b.Stats.addAnomaly()
			b.Log.Debug().Uint64("order_id", uint64(e.OrderID)).Msg("fill with no open trade sequence, ignored")
		}

	case domain.ActionClear:
		// Ignored at dispatch for every sequence value, not only sequence
		// zero: the original never calls OrderbookSide::clear() from its
		// record-processing path, so a clear never mutates book state here
		// either. Sequence zero is the documented "book not yet seeded"
		// case; any other sequence falls through the same way the original's
		// switch default does.

	default:
		b.Stats.addAnomaly()
		b.Log.Warn().Str("action", e.Action.String()).Msg("unrecognized action")
	}
}

// Snapshot fills r with the book's current top-MaxDepth state and sets
// r.Symbol to the book's symbol. It does not set the other header fields
// (TsRecv, TsEvent, Action, ...); callers copy those from the triggering
// Event before or after calling Snapshot.
func (b *Book) Snapshot(r *domain.Record) {
	var bids, asks [domain.MaxDepth]domain.PriceLevel
	n := b.bid.Levels(bids[:])
	for i := 0; i < n; i++ {
		r.BidLevels[i] = bids[i]
	}
	for i := n; i < domain.MaxDepth; i++ {
		r.BidLevels[i] = domain.PriceLevel{}
	}

	m := b.ask.Levels(asks[:])
	for i := 0; i < m; i++ {
		r.AskLevels[i] = asks[i]
	}
	for i := m; i < domain.MaxDepth; i++ {
		r.AskLevels[i] = domain.PriceLevel{}
	}

	// Depth is left at 0 (reserved), per spec §4.4 / the original's
	// mbp_record.depth = 0 (a field it declares but never computes).
	r.Symbol = b.Symbol
}
