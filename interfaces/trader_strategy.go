package interfaces

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

type (
	// TraderStrategy decides the single order an agent submits for the next
	// round. history is the per-round candle series of the session so far.
	// The second return value is false when the agent sits the round out.
	TraderStrategy interface {
		DecideOrder(profile models.TraderProfile, history *techan.TimeSeries) (models.Order, bool)
	}
)
