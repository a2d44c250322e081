package strategies

import (
	"fmt"

	"gitlab.com/mbarrenech/GoAuctionHouse/interfaces"
)

func StrategyFactory(strategyName string) (interfaces.TraderStrategy, error) {

	switch strategyName {
	case "zeroIntelligenceStrategy":
		zeroIntelligenceStrategy := NewZeroIntelligenceStrategy()
		return interfaces.TraderStrategy(&zeroIntelligenceStrategy), nil
	case "spreadStrategy":
		spreadStrategy := NewSpreadStrategy()
		return interfaces.TraderStrategy(&spreadStrategy), nil
	case "trendStrategy":
		trendStrategy := NewTrendStrategy()
		return interfaces.TraderStrategy(&trendStrategy), nil
	default:
		return nil, fmt.Errorf("%s is not a known strategy", strategyName)
	}

}
