package strategies

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// SpreadStrategy anchors on the last traded price and shades halfway
// towards the agent's limit. Before any trade exists it falls back to a
// fixed fraction of the limit.
type SpreadStrategy struct {
}

func NewSpreadStrategy() SpreadStrategy {
	return SpreadStrategy{}
}

func (s *SpreadStrategy) DecideOrder(profile models.TraderProfile,
	history *techan.TimeSeries) (models.Order, bool) {

	lastClose := 0.0
	if history != nil && history.LastCandle() != nil {
		lastClose = history.LastCandle().ClosePrice.Float()
	}

	if profile.IsBuyer() {
		price := profile.LimitPrice * 0.8
		if lastClose > 0 {
			price = (lastClose + profile.LimitPrice) / 2
			if price > profile.LimitPrice {
				price = profile.LimitPrice
			}
		}
		return models.NewBid(profile.AgentID, price), true
	}

	price := profile.LimitPrice * 1.2
	if lastClose > 0 {
		price = (lastClose + profile.LimitPrice) / 2
		if price < profile.LimitPrice {
			price = profile.LimitPrice
		}
	}
	return models.NewAsk(profile.AgentID, price), true
}
