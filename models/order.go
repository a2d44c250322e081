package models

import "fmt"

// OrderSide define order side type
type OrderSide string

// Global enums
const (
	SideBid OrderSide = "BID"
	SideAsk OrderSide = "ASK"
)

// Order is a single-unit buy or sell intention submitted by one agent.
// Orders rest in the book across rounds until they are matched.
type Order struct {
	AgentID  string    `json:"agentId"`
	Side     OrderSide `json:"side"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// NewBid returns a single-unit buy order for the given agent
func NewBid(agentID string, price float64) Order {
	return Order{
		AgentID:  agentID,
		Side:     SideBid,
		Price:    price,
		Quantity: 1,
	}
}

// NewAsk returns a single-unit sell order for the given agent
func NewAsk(agentID string, price float64) Order {
	return Order{
		AgentID:  agentID,
		Side:     SideAsk,
		Price:    price,
		Quantity: 1,
	}
}

// Validate checks the submission-time invariants. The mechanism trades
// exactly one unit per order, so any other quantity is rejected. Price is
// deliberately not checked: a zero or negative price is accepted and left
// to the matching rules.
func (o Order) Validate() error {
	if o.Quantity != 1 {
		return fmt.Errorf("order quantity must be 1, got %d", o.Quantity)
	}
	switch o.Side {
	case SideBid, SideAsk:
		return nil
	default:
		return fmt.Errorf("%q is not a known order side", o.Side)
	}
}

// IsBid returns true if the order is a buy order
func (o Order) IsBid() bool {
	return o.Side == SideBid
}

// IsAsk returns true if the order is a sell order
func (o Order) IsAsk() bool {
	return o.Side == SideAsk
}
