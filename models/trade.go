package models

// Trade is one crossed bid/ask pair. Trades are created by the matching
// service only and are never mutated afterwards; the session trade log is
// append-only and TradeID grows monotonically within a session.
type Trade struct {
	TradeID  int     `json:"tradeId"`
	BuyerID  string  `json:"buyerId"`
	SellerID string  `json:"sellerId"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	GoodName string  `json:"goodName"`
	BidPrice float64 `json:"bidPrice"`
	AskPrice float64 `json:"askPrice"`
}

// Involves returns true if the agent is the buyer or the seller
func (t Trade) Involves(agentID string) bool {
	return t.BuyerID == agentID || t.SellerID == agentID
}
