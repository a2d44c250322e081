package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

func TestTrendBuyerAggressiveOnRisingMarket(t *testing.T) {
	strategy := NewTrendStrategy()
	profile := models.TraderProfile{AgentID: "buyer-1", Role: models.RoleBuyer, LimitPrice: 100}

	order, ok := strategy.DecideOrder(profile, seriesFromCloses(10, 11, 12, 13))
	assert.True(t, ok)
	assert.Equal(t, models.SideBid, order.Side)
	assert.Equal(t, 95.0, order.Price)
}

func TestTrendBuyerConservativeOnFallingMarket(t *testing.T) {
	strategy := NewTrendStrategy()
	profile := models.TraderProfile{AgentID: "buyer-1", Role: models.RoleBuyer, LimitPrice: 100}

	order, _ := strategy.DecideOrder(profile, seriesFromCloses(13, 12, 11, 10))
	assert.Equal(t, 70.0, order.Price)
}

func TestTrendSellerMirrorsTheTrend(t *testing.T) {
	strategy := NewTrendStrategy()
	profile := models.TraderProfile{AgentID: "seller-1", Role: models.RoleSeller, LimitPrice: 40}

	order, _ := strategy.DecideOrder(profile, seriesFromCloses(10, 11, 12, 13))
	assert.Equal(t, models.SideAsk, order.Side)
	assert.Equal(t, 42.0, order.Price)

	order, _ = strategy.DecideOrder(profile, seriesFromCloses(13, 12, 11, 10))
	assert.Equal(t, 52.0, order.Price)
}

func TestTrendFallsBackWithShortHistory(t *testing.T) {
	strategy := NewTrendStrategy()
	profile := models.TraderProfile{AgentID: "buyer-1", Role: models.RoleBuyer, LimitPrice: 100}

	// behaves like SpreadStrategy until the moving average has data
	order, ok := strategy.DecideOrder(profile, nil)
	assert.True(t, ok)
	assert.Equal(t, 80.0, order.Price)

	order, _ = strategy.DecideOrder(profile, seriesFromCloses(60, 62))
	assert.Equal(t, 80.0, order.Price)
}
