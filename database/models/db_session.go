package database

import "gorm.io/gorm"

// Session is one completed (or running) auction session
type Session struct {
	gorm.Model
	GoodName   string  `json:"goodName"`
	MaxRounds  int     `json:"maxRounds"`
	RoundsRun  int     `json:"roundsRun"`
	TradeCount int     `json:"tradeCount"`
	Trades     []Trade `gorm:"foreignKey:SessionID"`
	Orders     []Order `gorm:"foreignKey:SessionID"`
}
