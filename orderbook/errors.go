package orderbook

import "errors"

// ErrDuplicateOrder is returned by Side.Add when order_id is already
// indexed on that side. Per spec the caller treats this as recoverable: the
// new add overwrites the prior entry.
var ErrDuplicateOrder = errors.New("orderbook: duplicate order id")

// ErrUnknownOrder is returned by Side.Cancel/Consume when order_id is not
// indexed. The caller treats this as a no-op, not a failure.
var ErrUnknownOrder = errors.New("orderbook: unknown order id")
