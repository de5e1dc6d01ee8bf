package orderbook

import "mbp10/domain"

// pendingTrade holds the running state of one T->F*->C trade sequence,
// keyed by the order_id shared across all three record kinds.
type pendingTrade struct {
	side   domain.Side // aggressor side, as carried on the T record
	price  domain.Price
	tSize  domain.Size
	sumF   domain.Size
	sawF   bool
}

// tracker accumulates trade sequences so their net resting-side consumption
// can be applied in a single step when the terminating cancel arrives.
//
// Consumed size is sum(F.size) when at least one F was observed, falling
// back to T.size when the sequence is T->C with no fills. This differs from
// a naive "always subtract F from T" rule, which double-counts and can
// under-report consumption entirely for a single-fill sequence.
type tracker struct {
	pending map[domain.OrderID]*pendingTrade
}

func newTracker() *tracker {
	return &tracker{pending: make(map[domain.OrderID]*pendingTrade)}
}

// Begin starts (or restarts) a trade sequence for orderID. It returns true
// if a sequence was already open for orderID, in which case the old entry
// is discarded in favor of the new one; the caller treats this as a
// suspicious-but-recoverable anomaly, not a fatal error.
func (t *tracker) Begin(orderID domain.OrderID, side domain.Side, price domain.Price, size domain.Size) bool {
	alreadyOpen := t.Open(orderID)
	t.pending[orderID] = &pendingTrade{side: side, price: price, tSize: size}
	return alreadyOpen
}

// Fill records an F record against an open sequence. Returns false if no
// sequence is open for orderID, which the caller treats as an anomaly, not
// a fatal error.
func (t *tracker) Fill(orderID domain.OrderID, size domain.Size) bool {
	p, ok := t.pending[orderID]
	if !ok {
		return false
	}
	p.sumF += size
	p.sawF = true
	return true
}

// Take closes an open sequence and returns the aggressor side recorded on
// the T (the resting side to debit is its Opposite), the price, and the net
// size to consume. ok is false if no sequence was open, which
// means the terminating C is an ordinary cancel instead.
func (t *tracker) Take(orderID domain.OrderID) (side domain.Side, price domain.Price, consumed domain.Size, ok bool) {
	p, found := t.pending[orderID]
	if !found {
		return domain.SideNeutral, 0, 0, false
	}
	delete(t.pending, orderID)

	consumed = p.tSize
	if p.sawF {
		consumed = p.sumF
	}
	return p.side, p.price, consumed, true
}

// Open reports whether a sequence is currently pending for orderID.
func (t *tracker) Open(orderID domain.OrderID) bool {
	_, ok := t.pending[orderID]
	return ok
}

