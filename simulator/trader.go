package simulator

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/interfaces"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// Trader is one simulated market participant: a private economic profile
// plus the strategy that turns it into orders.
type Trader struct {
	Profile  models.TraderProfile
	Strategy interfaces.TraderStrategy
}

func NewTrader(profile models.TraderProfile, strategy interfaces.TraderStrategy) Trader {
	return Trader{
		Profile:  profile,
		Strategy: strategy,
	}
}

// DecideOrder asks the strategy for this round's order. ok is false when
// the trader sits the round out.
func (t *Trader) DecideOrder(history *techan.TimeSeries) (models.Order, bool) {
	return t.Strategy.DecideOrder(t.Profile, history)
}
