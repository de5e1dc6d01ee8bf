package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"mbp10/domain"
)

// level is one price level: the aggregate resting size and the member
// orders backing it.
type level struct {
	price  domain.Price
	size   domain.Size
	count  uint32
	orders map[domain.OrderID]domain.Size
}

// rbtreeSide is a Side backed by a github.com/emirpasic/gods/v2 red-black
// tree keyed by price, with a side-flipping comparator so the best price is
// always the tree's leftmost node. A flat order_id index gives O(1)
// cancel/consume without walking the tree.
//
// The teacher's bucket-array sharding over the same tree assumed
// unit-spaced integer prices (cents); at this package's PriceScale of 1e6
// that assumption doesn't hold, so levels are addressed directly by price
// rather than through a bucket layer.
type rbtreeSide struct {
	tree  *rbt.Tree[domain.Price, *level]
	index map[domain.OrderID]resting
}

func newRBTreeSide(bid bool) *rbtreeSide {
	var cmp func(a, b domain.Price) int
	if bid {
		cmp = func(a, b domain.Price) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		}
	} else {
		cmp = func(a, b domain.Price) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}
	return &rbtreeSide{
		tree:  rbt.NewWith[domain.Price, *level](cmp),
		index: make(map[domain.OrderID]resting),
	}
}

func (s *rbtreeSide) Add(orderID domain.OrderID, price domain.Price, size domain.Size) error {
	var dup error
	if old, found := s.index[orderID]; found {
		s.removeFromLevel(orderID, old.price)
		dup = ErrDuplicateOrder
	}

	lv, found := s.tree.Get(price)
	if !found {
		lv = &level{price: price, orders: make(map[domain.OrderID]domain.Size)}
		s.tree.Put(price, lv)
	}
	lv.orders[orderID] = size
	lv.size += size
	lv.count++
	s.index[orderID] = resting{price: price, size: size}

	return dup
}

func (s *rbtreeSide) Cancel(orderID domain.OrderID, sizeHint domain.Size) error {
	r, found := s.index[orderID]
	if !found {
		return ErrUnknownOrder
	}
	if sizeHint == 0 || sizeHint >= r.size {
		s.removeFromLevel(orderID, r.price)
		delete(s.index, orderID)
		return nil
	}

	lv, found := s.tree.Get(r.price)
	if !found {
		delete(s.index, orderID)
		return ErrUnknownOrder
	}
	lv.orders[orderID] -= sizeHint
	lv.size -= sizeHint
	r.size -= sizeHint
	s.index[orderID] = r
	return nil
}

func (s *rbtreeSide) Consume(orderID domain.OrderID, qty domain.Size) error {
	r, found := s.index[orderID]
	if !found {
		return ErrUnknownOrder
	}
	if qty >= r.size {
		s.removeFromLevel(orderID, r.price)
		delete(s.index, orderID)
		return nil
	}

	lv, found := s.tree.Get(r.price)
	if !found {
		// index and tree disagree; treat as unknown rather than panic.
		delete(s.index, orderID)
		return ErrUnknownOrder
	}
	lv.orders[orderID] -= qty
	lv.size -= qty
	r.size -= qty
	s.index[orderID] = r
	return nil
}

// removeFromLevel detaches orderID from its level, dropping the level
// entirely once it empties out.
func (s *rbtreeSide) removeFromLevel(orderID domain.OrderID, price domain.Price) {
	lv, found := s.tree.Get(price)
	if !found {
		return
	}
	sz, found := lv.orders[orderID]
	if !found {
		return
	}
	delete(lv.orders, orderID)
	lv.size -= sz
	lv.count--
	if lv.count == 0 {
		s.tree.Remove(price)
	}
}

func (s *rbtreeSide) Levels(out []domain.PriceLevel) int {
	it := s.tree.Iterator()
	n := 0
	for n < len(out) && it.Next() {
		lv := it.Value()
		out[n] = domain.PriceLevel{Price: lv.price, Size: lv.size, Count: lv.count}
		n++
	}
	return n
}

func (s *rbtreeSide) Len() int {
	return len(s.index)
}
