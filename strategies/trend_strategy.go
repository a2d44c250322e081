package strategies

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

const trendWindow = 3

// TrendStrategy reads a short moving average of the round closes. A rising
// market makes the agent aggressive (price near its limit, trade while the
// trend lasts); a falling or unreadable market makes it conservative. It
// behaves like SpreadStrategy until enough candles exist.
type TrendStrategy struct {
	fallback SpreadStrategy
}

func NewTrendStrategy() TrendStrategy {
	return TrendStrategy{fallback: NewSpreadStrategy()}
}

func (s *TrendStrategy) DecideOrder(profile models.TraderProfile,
	history *techan.TimeSeries) (models.Order, bool) {

	if history == nil || len(history.Candles) < trendWindow+1 {
		return s.fallback.DecideOrder(profile, history)
	}

	lastIndex := len(history.Candles) - 1
	closePrices := techan.NewClosePriceIndicator(history)
	sma := techan.NewSimpleMovingAverage(closePrices, trendWindow)

	lastValue := sma.Calculate(lastIndex).Float()
	previousValue := sma.Calculate(lastIndex - 1).Float()
	rising := lastValue > previousValue

	if profile.IsBuyer() {
		factor := 0.7
		if rising {
			factor = 0.95
		}
		return models.NewBid(profile.AgentID, profile.LimitPrice*factor), true
	}

	factor := 1.3
	if rising {
		factor = 1.05
	}
	return models.NewAsk(profile.AgentID, profile.LimitPrice*factor), true
}
