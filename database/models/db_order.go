package database

import "gorm.io/gorm"

// OrderSide define order side type
type OrderSide string

type Order struct {
	gorm.Model
	SessionID uint
	Round     int       `json:"round"`
	AgentID   string    `json:"agentId"`
	Side      OrderSide `json:"side"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}
