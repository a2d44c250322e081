package services

import (
	"fmt"
	"sort"

	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// OrderBookService keeps the two waiting-order collections of a session.
// Unmatched orders stay here across rounds until they cross or the session
// is reset. The book is only ever touched by the auction service, one round
// at a time, so it carries no lock of its own.
type OrderBookService struct {
	waitingBids []models.Order
	waitingAsks []models.Order
}

func NewOrderBookService() *OrderBookService {
	return &OrderBookService{}
}

// AddOrder routes the order to its side's waiting collection. The side tag
// is the only dispatch criterion; an unknown side is an error and the order
// is not stored.
func (ob *OrderBookService) AddOrder(order models.Order) error {
	switch order.Side {
	case models.SideBid:
		ob.waitingBids = append(ob.waitingBids, order)
	case models.SideAsk:
		ob.waitingAsks = append(ob.waitingAsks, order)
	default:
		return fmt.Errorf("%q is not a known order side", order.Side)
	}
	return nil
}

// SortForMatching orders both sides for crossing: bids from highest to
// lowest price, asks from lowest to highest. The sort is stable, so orders
// at the same price keep their arrival order.
func (ob *OrderBookService) SortForMatching() {
	sort.SliceStable(ob.waitingBids, func(i, j int) bool {
		return ob.waitingBids[i].Price > ob.waitingBids[j].Price
	})
	sort.SliceStable(ob.waitingAsks, func(i, j int) bool {
		return ob.waitingAsks[i].Price < ob.waitingAsks[j].Price
	})
}

// WaitingBids returns a copy of the waiting buy orders
func (ob *OrderBookService) WaitingBids() []models.Order {
	bids := make([]models.Order, len(ob.waitingBids))
	copy(bids, ob.waitingBids)
	return bids
}

// WaitingAsks returns a copy of the waiting sell orders
func (ob *OrderBookService) WaitingAsks() []models.Order {
	asks := make([]models.Order, len(ob.waitingAsks))
	copy(asks, ob.waitingAsks)
	return asks
}

// AgentOrders returns the agent's own waiting orders, bids first
func (ob *OrderBookService) AgentOrders(agentID string) []models.Order {
	var orders []models.Order
	for _, bid := range ob.waitingBids {
		if bid.AgentID == agentID {
			orders = append(orders, bid)
		}
	}
	for _, ask := range ob.waitingAsks {
		if ask.AgentID == agentID {
			orders = append(orders, ask)
		}
	}
	return orders
}

func (ob *OrderBookService) WaitingBidsCount() int {
	return len(ob.waitingBids)
}

func (ob *OrderBookService) WaitingAsksCount() int {
	return len(ob.waitingAsks)
}

func (ob *OrderBookService) WaitingOrdersCount() int {
	return len(ob.waitingBids) + len(ob.waitingAsks)
}

// Clear drops every waiting order on both sides
func (ob *OrderBookService) Clear() {
	ob.waitingBids = nil
	ob.waitingAsks = nil
}
