package services

import (
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// MarketRecordService folds each round's trades into a techan time series,
// one candle per round. Strategies and the monitor read the series to see
// how the session price has been moving. Rounds without trades carry the
// previous close forward as a flat candle.
type MarketRecordService struct {
	timeSeries *techan.TimeSeries
	start      time.Time
}

func NewMarketRecordService() *MarketRecordService {
	return &MarketRecordService{
		timeSeries: techan.NewTimeSeries(),
		start:      time.Now(),
	}
}

// RecordRound appends the round's candle. Rounds before the first trade of
// the session are skipped: there is no price to anchor a candle on yet.
func (mrs *MarketRecordService) RecordRound(round int, trades []models.Trade) {
	period := techan.NewTimePeriod(mrs.start.Add(time.Duration(round)*time.Minute), time.Minute)
	candle := techan.NewCandle(period)

	if len(trades) == 0 {
		last := mrs.timeSeries.LastCandle()
		if last == nil {
			return
		}
		candle.OpenPrice = last.ClosePrice
		candle.ClosePrice = last.ClosePrice
		candle.MaxPrice = last.ClosePrice
		candle.MinPrice = last.ClosePrice
		candle.Volume = big.ZERO
		mrs.timeSeries.AddCandle(candle)
		return
	}

	maxPrice := trades[0].Price
	minPrice := trades[0].Price
	for _, trade := range trades {
		if trade.Price > maxPrice {
			maxPrice = trade.Price
		}
		if trade.Price < minPrice {
			minPrice = trade.Price
		}
	}

	candle.OpenPrice = big.NewDecimal(trades[0].Price)
	candle.ClosePrice = big.NewDecimal(trades[len(trades)-1].Price)
	candle.MaxPrice = big.NewDecimal(maxPrice)
	candle.MinPrice = big.NewDecimal(minPrice)
	candle.Volume = big.NewDecimal(float64(len(trades)))
	candle.TradeCount = uint(len(trades))
	mrs.timeSeries.AddCandle(candle)
}

// TimeSeries exposes the per-round candle series
func (mrs *MarketRecordService) TimeSeries() *techan.TimeSeries {
	return mrs.timeSeries
}

// LastTradedPrice returns the close of the latest candle, or 0 before any
// trade happened
func (mrs *MarketRecordService) LastTradedPrice() float64 {
	last := mrs.timeSeries.LastCandle()
	if last == nil {
		return 0
	}
	return last.ClosePrice.Float()
}
