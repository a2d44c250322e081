package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBidAndAsk(t *testing.T) {
	bid := NewBid("buyer-1", 10.5)
	assert.Equal(t, "buyer-1", bid.AgentID)
	assert.Equal(t, SideBid, bid.Side)
	assert.Equal(t, 10.5, bid.Price)
	assert.Equal(t, 1, bid.Quantity)
	assert.True(t, bid.IsBid())

	ask := NewAsk("seller-1", 9.0)
	assert.Equal(t, SideAsk, ask.Side)
	assert.True(t, ask.IsAsk())
	assert.Nil(t, ask.Validate())
}

func TestOrderValidateRejectsWrongQuantity(t *testing.T) {
	order := Order{AgentID: "buyer-1", Side: SideBid, Price: 10, Quantity: 2}
	assert.Error(t, order.Validate())

	order.Quantity = 0
	assert.Error(t, order.Validate())

	order.Quantity = 1
	assert.Nil(t, order.Validate())
}

func TestOrderValidateRejectsUnknownSide(t *testing.T) {
	order := Order{AgentID: "buyer-1", Side: "SHORT", Price: 10, Quantity: 1}
	assert.Error(t, order.Validate())
}

func TestOrderValidateAcceptsNonPositivePrice(t *testing.T) {
	// Price positivity is intentionally not enforced at submission time
	assert.Nil(t, NewBid("buyer-1", 0).Validate())
	assert.Nil(t, NewAsk("seller-1", -3).Validate())
}

func TestTradeInvolves(t *testing.T) {
	trade := Trade{TradeID: 0, BuyerID: "buyer-1", SellerID: "seller-1", Price: 9.5, Quantity: 1}
	assert.True(t, trade.Involves("buyer-1"))
	assert.True(t, trade.Involves("seller-1"))
	assert.False(t, trade.Involves("buyer-2"))
}
