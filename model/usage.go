package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// UsageRecord is append-only, one row per successful redemption
type UsageRecord struct {
	ID             int64           `db:"id"`
	OfferID        int64           `db:"offer_id"`
	CustomerID     string          `db:"customer_id"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	UsedAt         time.Time       `db:"used_at"`
}

// OfferUsage ...
type OfferUsage struct {
	GlobalUsed   int64 `db:"global_used_count"`
	CustomerUsed int64 `db:"customer_used"`
}

// IncrementResult ...
type IncrementResult int

const (
	// IncrementResultOK ...
	IncrementResultOK IncrementResult = 1

	// IncrementResultNotFound ...
	IncrementResultNotFound IncrementResult = 2

	// IncrementResultGlobalQuotaExceeded ...
	IncrementResultGlobalQuotaExceeded IncrementResult = 3

	// IncrementResultPerCustomerQuotaExceeded ...
	IncrementResultPerCustomerQuotaExceeded IncrementResult = 4
)
