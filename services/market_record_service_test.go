package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

func TestRecordRoundBuildsCandleFromTrades(t *testing.T) {
	record := NewMarketRecordService()

	record.RecordRound(1, []models.Trade{
		{TradeID: 0, Price: 10, Quantity: 1},
		{TradeID: 1, Price: 12, Quantity: 1},
		{TradeID: 2, Price: 8, Quantity: 1},
	})

	candle := record.TimeSeries().LastCandle()
	assert.NotNil(t, candle)
	assert.Equal(t, 10.0, candle.OpenPrice.Float())
	assert.Equal(t, 8.0, candle.ClosePrice.Float())
	assert.Equal(t, 12.0, candle.MaxPrice.Float())
	assert.Equal(t, 8.0, candle.MinPrice.Float())
	assert.Equal(t, 3.0, candle.Volume.Float())
	assert.Equal(t, 8.0, record.LastTradedPrice())
}

func TestRecordRoundSkipsRoundsBeforeFirstTrade(t *testing.T) {
	record := NewMarketRecordService()

	record.RecordRound(1, nil)

	assert.Len(t, record.TimeSeries().Candles, 0)
	assert.Equal(t, 0.0, record.LastTradedPrice())
}

func TestRecordRoundCarriesCloseThroughQuietRounds(t *testing.T) {
	record := NewMarketRecordService()

	record.RecordRound(1, []models.Trade{{TradeID: 0, Price: 9.5, Quantity: 1}})
	record.RecordRound(2, nil)

	assert.Len(t, record.TimeSeries().Candles, 2)
	candle := record.TimeSeries().LastCandle()
	assert.Equal(t, 9.5, candle.OpenPrice.Float())
	assert.Equal(t, 9.5, candle.ClosePrice.Float())
	assert.Equal(t, 0.0, candle.Volume.Float())
	assert.Equal(t, 9.5, record.LastTradedPrice())
}
