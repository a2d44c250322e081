package services

import (
	"fmt"
	"sort"
	"sync"

	"gitlab.com/mbarrenech/GoAuctionHouse/helpers"
	"gitlab.com/mbarrenech/GoAuctionHouse/models"
)

// AuctionService owns the state of one double-auction session: the round
// counter, the append-only trade log and the order book. Exactly one round
// is in flight at a time; the mutex only exists so that monitoring
// snapshots can be taken while a round runs.
type AuctionService struct {
	mu sync.Mutex

	maxRounds    int
	currentRound int
	goodName     string
	tradeLog     []models.Trade

	book        *OrderBookService
	matching    *MatchingService
	summary     *SummaryService
	observation *ObservationService
}

func NewAuctionService(maxRounds int, goodName string) *AuctionService {
	return &AuctionService{
		maxRounds:   maxRounds,
		goodName:    goodName,
		book:        NewOrderBookService(),
		matching:    NewMatchingService(goodName),
		summary:     NewSummaryService(),
		observation: NewObservationService(),
	}
}

// Step processes one round: the batch is ingested into the book, the book
// is crossed, the new trades are summarized and projected into per-agent
// observations, and the round counter advances. Termination is evaluated
// after processing, so the round that reaches maxRounds still gets a full
// matching cycle.
func (as *AuctionService) Step(batch map[string]models.Order) models.StepResult {
	as.mu.Lock()
	defer as.mu.Unlock()

	as.currentRound++
	as.ingestOrders(batch)

	newTrades := as.matching.Match(as.book, len(as.tradeLog))
	as.tradeLog = append(as.tradeLog, newTrades...)

	marketSummary := as.summary.Summarize(newTrades)
	observations := as.observation.Synthesize(newTrades, as.book, marketSummary)

	return models.StepResult{
		GlobalObservation: models.GlobalObservation{
			Observations:  observations,
			AllTrades:     newTrades,
			MarketSummary: marketSummary,
		},
		Done: as.currentRound >= as.maxRounds,
		Info: models.StepInfo{CurrentRound: as.currentRound},
	}
}

// ingestOrders applies the batch to the book. An order that fails
// validation is logged and dropped on its own; the rest of the batch still
// applies. Agents are visited in id order so that same-price ties resolve
// the same way on every run.
func (as *AuctionService) ingestOrders(batch map[string]models.Order) {
	agentIDs := make([]string, 0, len(batch))
	for agentID := range batch {
		agentIDs = append(agentIDs, agentID)
	}
	sort.Strings(agentIDs)

	for _, agentID := range agentIDs {
		order := batch[agentID]
		order.AgentID = agentID
		if err := order.Validate(); err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("invalid order from agent %s: %v", agentID, err))
			continue
		}
		if err := as.book.AddOrder(order); err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("order from agent %s rejected by the book: %v", agentID, err))
		}
	}
}

// Snapshot returns a read-only copy of the full session state
func (as *AuctionService) Snapshot() models.SessionSnapshot {
	as.mu.Lock()
	defer as.mu.Unlock()

	trades := make([]models.Trade, len(as.tradeLog))
	copy(trades, as.tradeLog)

	return models.SessionSnapshot{
		CurrentRound: as.currentRound,
		Trades:       trades,
		WaitingBids:  as.book.WaitingBids(),
		WaitingAsks:  as.book.WaitingAsks(),
	}
}

// Reset returns the session to round zero with an empty trade log and an
// empty book, whatever state it was in. The session object is reused, not
// replaced.
func (as *AuctionService) Reset() {
	as.mu.Lock()
	defer as.mu.Unlock()

	as.currentRound = 0
	as.tradeLog = nil
	as.book.Clear()
}

// Done reports whether the session reached its round limit
func (as *AuctionService) Done() bool {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.currentRound >= as.maxRounds
}

func (as *AuctionService) CurrentRound() int {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.currentRound
}

func (as *AuctionService) MaxRounds() int {
	return as.maxRounds
}

func (as *AuctionService) GoodName() string {
	return as.goodName
}
