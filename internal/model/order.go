package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is the snapshot written when a simulated checkout completes.
// Exactly one order is kept; the next completed checkout overwrites it.
type Order struct {
	ID          uuid.UUID  `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	Items       []LineItem `json:"items"`
	Totals      Totals     `json:"totals"`
	CreatedAt   time.Time  `json:"createdAt"`
}
