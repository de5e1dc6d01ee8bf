package orderbook

import "mbp10/domain"

// resting is one order sitting on a Side: enough to answer a Cancel or a
// Consume without touching the price-ordered structure.
type resting struct {
	price domain.Price
	size  domain.Size
}

// Side is one half of a Book: a price-ordered collection of levels plus an
// order_id index for O(1) cancel/consume. Implementations are not
// goroutine-safe; a Book serializes all access through its single dispatch
// goroutine.
type Side interface {
	// Add inserts a new resting order. Returns ErrDuplicateOrder if
	// order_id is already indexed, after overwriting the prior entry with
	// the new one (the old quantity is removed from its level first).
	Add(orderID domain.OrderID, price domain.Price, size domain.Size) error

	// Cancel reduces a resting order's size by min(sizeHint, resting size).
	// sizeHint == 0, or sizeHint >= the resting size, means a full cancel:
	// the order is removed outright. Returns ErrUnknownOrder if order_id is
	// not indexed.
	Cancel(orderID domain.OrderID, sizeHint domain.Size) error

	// Consume reduces a resting order's size by qty, removing it outright
	// if the reduction exhausts it. Returns ErrUnknownOrder if order_id is
	// not indexed. If qty exceeds the resting size, the order is removed
	// and no error is returned: the feed's view of the order is already
	// gone.
	Consume(orderID domain.OrderID, qty domain.Size) error

	// Levels writes up to len(out) aggregated price levels, best price
	// first, and returns the number written.
	Levels(out []domain.PriceLevel) int

	// Len returns the number of resting orders indexed on this side.
	Len() int
}
