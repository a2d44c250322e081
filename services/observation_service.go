package services

import (
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// ObservationService projects the global outcome of a round into the
// private per-agent views.
type ObservationService struct {
}

func NewObservationService() *ObservationService {
	return &ObservationService{}
}

// Synthesize builds one observation per agent that either traded this round
// or still has an order resting in the book. Agents with neither get no
// entry at all; absence means nothing happened for them, not an error. The
// market summary is attached to every observation unchanged.
func (obs *ObservationService) Synthesize(newTrades []models.Trade, book *OrderBookService,
	marketSummary models.MarketSummary) map[string]models.LocalObservation {

	agentIDs := make(map[string]struct{})
	for _, trade := range newTrades {
		agentIDs[trade.BuyerID] = struct{}{}
		agentIDs[trade.SellerID] = struct{}{}
	}
	for _, bid := range book.waitingBids {
		agentIDs[bid.AgentID] = struct{}{}
	}
	for _, ask := range book.waitingAsks {
		agentIDs[ask.AgentID] = struct{}{}
	}

	observations := make(map[string]models.LocalObservation, len(agentIDs))
	for agentID := range agentIDs {
		var agentTrades []models.Trade
		for _, trade := range newTrades {
			if trade.Involves(agentID) {
				agentTrades = append(agentTrades, trade)
			}
		}

		observations[agentID] = models.LocalObservation{
			AgentID: agentID,
			Observation: models.Observation{
				Trades:        agentTrades,
				MarketSummary: marketSummary,
				WaitingOrders: book.AgentOrders(agentID),
			},
		}
	}

	return observations
}
