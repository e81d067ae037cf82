package domain

import "time"

// AffiliateProduct is immutable once created.
type AffiliateProduct struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Category         string    `json:"category" db:"category"`
	CommissionRate   float64   `json:"commission_rate" db:"commission_rate"`
	CommissionAmount *float64  `json:"commission_amount" db:"commission_amount"`
	URL              string    `json:"url" db:"url"`
	Gravity          *int      `json:"gravity" db:"gravity"` // clickbank only
	RefundRate       *float64  `json:"refund_rate" db:"refund_rate"`
	HasUpsells       bool      `json:"has_upsells" db:"has_upsells"`
	IsRecurring      bool      `json:"is_recurring" db:"is_recurring"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
