package models

// TraderRole define trader role type
type TraderRole string

const (
	RoleBuyer  TraderRole = "BUYER"
	RoleSeller TraderRole = "SELLER"
)

// TraderProfile is the private economic endowment of one simulated agent.
// LimitPrice is a valuation for buyers (never bid above it) and a unit cost
// for sellers (never ask below it).
type TraderProfile struct {
	AgentID    string     `json:"agentId"`
	Role       TraderRole `json:"role"`
	LimitPrice float64    `json:"limitPrice"`
}

// IsBuyer returns true if the trader buys the good
func (p TraderProfile) IsBuyer() bool {
	return p.Role == RoleBuyer
}
