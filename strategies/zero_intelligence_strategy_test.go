package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

func TestZeroIntelligenceBuyerStaysUnderValuation(t *testing.T) {
	strategy := NewSeededZeroIntelligenceStrategy(42)
	profile := models.TraderProfile{AgentID: "buyer-1", Role: models.RoleBuyer, LimitPrice: 80}

	for i := 0; i < 200; i++ {
		order, ok := strategy.DecideOrder(profile, nil)
		assert.True(t, ok)
		assert.Equal(t, models.SideBid, order.Side)
		assert.Equal(t, 1, order.Quantity)
		assert.LessOrEqual(t, order.Price, 80.0)
		assert.GreaterOrEqual(t, order.Price, 40.0)
	}
}

func TestZeroIntelligenceSellerStaysAboveCost(t *testing.T) {
	strategy := NewSeededZeroIntelligenceStrategy(42)
	profile := models.TraderProfile{AgentID: "seller-1", Role: models.RoleSeller, LimitPrice: 30}

	for i := 0; i < 200; i++ {
		order, ok := strategy.DecideOrder(profile, nil)
		assert.True(t, ok)
		assert.Equal(t, models.SideAsk, order.Side)
		assert.GreaterOrEqual(t, order.Price, 30.0)
		assert.LessOrEqual(t, order.Price, 45.0)
	}
}

func TestZeroIntelligenceOrdersPassValidation(t *testing.T) {
	strategy := NewSeededZeroIntelligenceStrategy(7)
	profile := models.TraderProfile{AgentID: "buyer-1", Role: models.RoleBuyer, LimitPrice: 100}

	order, _ := strategy.DecideOrder(profile, nil)
	assert.Nil(t, order.Validate())
}
