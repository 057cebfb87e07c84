package models

import "time"

// LowStockNotification records that a product's stock fell below its minimum
// at evaluation time. Notifications are never deduplicated; every qualifying
// product mutation produces a new record.
type LowStockNotification struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	Product      ProductRef `json:"product"`
	CurrentStock int        `json:"current_stock"`
	MinimumStock int        `json:"minimum_stock"`
}
