package models

// SessionSnapshot is a read-only copy of the session state for monitoring
// and logging. Mutating a snapshot has no effect on the running session.
type SessionSnapshot struct {
	CurrentRound int     `json:"currentRound"`
	Trades       []Trade `json:"trades"`
	WaitingBids  []Order `json:"waitingBids"`
	WaitingAsks  []Order `json:"waitingAsks"`
}
