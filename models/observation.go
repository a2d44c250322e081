package models

// Observation is the private view of a round handed to one agent: the
// trades they took part in, the global market summary and their own orders
// still resting in the book. Observations are rebuilt every round and never
// persisted.
type Observation struct {
	Trades        []Trade       `json:"trades"`
	MarketSummary MarketSummary `json:"marketSummary"`
	WaitingOrders []Order       `json:"waitingOrders"`
}

// LocalObservation pairs an observation with its addressee
type LocalObservation struct {
	AgentID     string      `json:"agentId"`
	Observation Observation `json:"observation"`
}

// GlobalObservation bundles the whole round outcome. Agents that neither
// traded nor have a resting order have no entry in Observations.
type GlobalObservation struct {
	Observations  map[string]LocalObservation `json:"observations"`
	AllTrades     []Trade                     `json:"allTrades"`
	MarketSummary MarketSummary               `json:"marketSummary"`
}

// StepInfo carries round metadata for the caller
type StepInfo struct {
	CurrentRound int `json:"currentRound"`
}

// StepResult is the outcome of one auction round
type StepResult struct {
	GlobalObservation GlobalObservation `json:"globalObservation"`
	Done              bool              `json:"done"`
	Info              StepInfo          `json:"info"`
}
