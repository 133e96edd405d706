package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// Offer is a voucher or a promotion definition together with its global usage counter
type Offer struct {
	ID       int64       `db:"id" json:"id"`
	Code     string      `db:"code" json:"code"`
	CodeHash uint32      `db:"code_hash" json:"codeHash"`
	Kind     OfferKind   `db:"kind" json:"kind"`
	Status   OfferStatus `db:"status" json:"status"`

	DiscountType   DiscountType        `db:"discount_type" json:"discountType"`
	DiscountValue  decimal.Decimal     `db:"discount_value" json:"discountValue"`
	MaxDiscountCap decimal.NullDecimal `db:"max_discount_cap" json:"maxDiscountCap"`
	MinOrderValue  decimal.NullDecimal `db:"min_order_value" json:"minOrderValue"`

	ValidFrom time.Time `db:"valid_from" json:"validFrom"`
	ValidTo   time.Time `db:"valid_to" json:"validTo"`

	GlobalQuota      sql.NullInt64 `db:"global_quota" json:"globalQuota"`
	PerCustomerQuota sql.NullInt64 `db:"per_customer_quota" json:"perCustomerQuota"`
	GlobalUsedCount  int64         `db:"global_used_count" json:"globalUsedCount"`

	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullOffer ...
type NullOffer struct {
	Valid bool
	Offer Offer
}

// IsNotStarted ...
func (o Offer) IsNotStarted(now time.Time) bool {
	return now.Before(o.ValidFrom)
}

// IsExpired ...
func (o Offer) IsExpired(now time.Time) bool {
	return now.After(o.ValidTo)
}

// IsQuotaExhausted is derived from the counter at read time, never stored
func (o Offer) IsQuotaExhausted() bool {
	return o.GlobalQuota.Valid && o.GlobalUsedCount >= o.GlobalQuota.Int64
}

// OfferKind ...
type OfferKind int

const (
	// OfferKindVoucher is redeemed explicitly by code
	OfferKindVoucher OfferKind = 1

	// OfferKindPromotion is applied automatically when its conditions hold
	OfferKindPromotion OfferKind = 2
)

// OfferStatus ...
type OfferStatus int

const (
	// OfferStatusActive ...
	OfferStatusActive OfferStatus = 1

	// OfferStatusInactive ...
	OfferStatusInactive OfferStatus = 2
)

// DiscountType ...
type DiscountType int

const (
	// DiscountTypePercentage ...
	DiscountTypePercentage DiscountType = 1

	// DiscountTypeFixedAmount ...
	DiscountTypeFixedAmount DiscountType = 2
)
