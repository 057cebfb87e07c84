package models

import "time"

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIncoming MovementType = "IN"
	MovementOutgoing MovementType = "OUT"
)

func (t MovementType) Valid() bool {
	return t == MovementIncoming || t == MovementOutgoing
}

// MovementAction is the catalog lifecycle event that triggered a movement.
type MovementAction string

const (
	ActionInserted MovementAction = "Inserted"
	ActionUpdated  MovementAction = "Updated"
	ActionDeleted  MovementAction = "Deleted"
)

func (a MovementAction) Valid() bool {
	return a == ActionInserted || a == ActionUpdated || a == ActionDeleted
}

// ProductRef is a point-in-time snapshot of a product's identity, embedded in
// movements and notifications instead of a live reference.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StockMovement is an immutable audit record of a stock quantity change.
// Quantity is always the absolute magnitude of the change.
type StockMovement struct {
	ID       string         `json:"id"`
	Date     time.Time      `json:"date"`
	Type     MovementType   `json:"type"`
	Product  ProductRef     `json:"product"`
	Quantity int            `json:"quantity"`
	Action   MovementAction `json:"action"`
	Username string         `json:"username"`
}
