package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

func TestSummarizeEmptyRound(t *testing.T) {
	summary := NewSummaryService().Summarize(nil)

	assert.Equal(t, 0, summary.TradesCount)
	assert.Equal(t, 0.0, summary.AveragePrice)
	assert.Equal(t, 0, summary.TotalVolume)
	assert.Equal(t, models.PriceRange{Min: 0.0, Max: 0.0}, summary.PriceRange)
}

func TestSummarizeComputesRoundStatistics(t *testing.T) {
	trades := []models.Trade{
		{TradeID: 0, Price: 10, Quantity: 1},
		{TradeID: 1, Price: 14, Quantity: 1},
		{TradeID: 2, Price: 6, Quantity: 1},
	}

	summary := NewSummaryService().Summarize(trades)

	assert.Equal(t, 3, summary.TradesCount)
	assert.Equal(t, 10.0, summary.AveragePrice)
	assert.Equal(t, 3, summary.TotalVolume)
	assert.Equal(t, models.PriceRange{Min: 6.0, Max: 14.0}, summary.PriceRange)
}

func TestSummarizeSingleTrade(t *testing.T) {
	summary := NewSummaryService().Summarize([]models.Trade{{TradeID: 0, Price: 9.5, Quantity: 1}})

	assert.Equal(t, 1, summary.TradesCount)
	assert.Equal(t, 9.5, summary.AveragePrice)
	assert.Equal(t, models.PriceRange{Min: 9.5, Max: 9.5}, summary.PriceRange)
}
