package strategies

import (
	"math/rand"
	"time"

	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// ZeroIntelligenceStrategy prices at random inside the agent's budget
// constraint: buyers bid somewhere below their valuation, sellers ask
// somewhere above their cost. It never looks at the market.
type ZeroIntelligenceStrategy struct {
	rng *rand.Rand
}

func NewZeroIntelligenceStrategy() ZeroIntelligenceStrategy {
	return ZeroIntelligenceStrategy{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewSeededZeroIntelligenceStrategy(seed int64) ZeroIntelligenceStrategy {
	return ZeroIntelligenceStrategy{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *ZeroIntelligenceStrategy) DecideOrder(profile models.TraderProfile,
	history *techan.TimeSeries) (models.Order, bool) {

	if profile.IsBuyer() {
		price := profile.LimitPrice * (0.5 + 0.5*s.rng.Float64())
		return models.NewBid(profile.AgentID, price), true
	}

	price := profile.LimitPrice * (1.0 + 0.5*s.rng.Float64())
	return models.NewAsk(profile.AgentID, price), true
}
