package services

import (
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// MatchingService crosses the waiting bids and asks of a book at a round
// boundary. Matching cannot fail: for any book state it produces zero or
// more trades and leaves the rest of the book untouched.
type MatchingService struct {
	goodName string
}

func NewMatchingService(goodName string) *MatchingService {
	return &MatchingService{goodName: goodName}
}

// Match repeatedly tries the current best bid against the current best ask.
// A pair crosses while the bid price is at or above the ask price; the trade
// prints at the midpoint of the two and both orders leave the book. The
// first pair that does not cross stops the round: only best-against-best is
// ever examined, the book is not searched for other crossable pairings.
// Trade ids continue from nextTradeID in formation order.
func (ms *MatchingService) Match(book *OrderBookService, nextTradeID int) []models.Trade {
	var trades []models.Trade
	tradeID := nextTradeID

	book.SortForMatching()

	for len(book.waitingBids) > 0 && len(book.waitingAsks) > 0 {
		bid := book.waitingBids[0]
		ask := book.waitingAsks[0]

		if bid.Price < ask.Price {
			// No more matches possible
			break
		}

		tradePrice := (bid.Price + ask.Price) / 2
		trades = append(trades, models.Trade{
			TradeID:  tradeID,
			BuyerID:  bid.AgentID,
			SellerID: ask.AgentID,
			Price:    tradePrice,
			Quantity: 1,
			GoodName: ms.goodName,
			BidPrice: bid.Price,
			AskPrice: ask.Price,
		})
		tradeID++

		book.waitingBids = book.waitingBids[1:]
		book.waitingAsks = book.waitingAsks[1:]
	}

	return trades
}
