package database

import "gorm.io/gorm"

type Trade struct {
	gorm.Model
	SessionID uint
	TradeID   int     `json:"tradeId"`
	Round     int     `json:"round"`
	BuyerID   string  `json:"buyerId"`
	SellerID  string  `json:"sellerId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	GoodName  string  `json:"goodName"`
	BidPrice  float64 `json:"bidPrice"`
	AskPrice  float64 `json:"askPrice"`
}
