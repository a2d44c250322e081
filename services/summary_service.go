package services

import (
	"gitlab.com/mbarrenech/GoAuctionHouse/helpers"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// SummaryService aggregates the trades of a single round into a
// MarketSummary. It is a pure computation over its input.
type SummaryService struct {
}

func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// Summarize returns the zero-value summary when the round had no trades.
// Volume equals the trade count because every trade moves exactly one unit.
func (ss *SummaryService) Summarize(trades []models.Trade) models.MarketSummary {
	if len(trades) == 0 {
		return models.MarketSummary{}
	}

	prices := make([]float64, 0, len(trades))
	for _, trade := range trades {
		prices = append(prices, trade.Price)
	}
	min, max := helpers.MinMax(prices)

	return models.MarketSummary{
		TradesCount:  len(trades),
		AveragePrice: helpers.Mean(prices),
		TotalVolume:  len(trades),
		PriceRange:   models.PriceRange{Min: min, Max: max},
	}
}
