package models

// PriceRange holds the lowest and highest trade price of a round
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MarketSummary aggregates the trades of a single round. It is recomputed
// from scratch every round; a round without trades yields the zero value.
type MarketSummary struct {
	TradesCount  int        `json:"tradesCount"`
	AveragePrice float64    `json:"averagePrice"`
	TotalVolume  int        `json:"totalVolume"`
	PriceRange   PriceRange `json:"priceRange"`
}
