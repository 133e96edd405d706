package offer

import (
	"database/sql"
	"errors"
	"fmt"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/discount"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"reflect"
	"time"
)

// ErrInvalidOffer for malformed offer configuration
var ErrInvalidOffer = errors.New("invalid offer")

// ErrInvalidInput for malformed preview or redeem requests
var ErrInvalidInput = errors.New("invalid input")

// ErrOfferNotFound ...
var ErrOfferNotFound = errors.New("offer not found")

// OfferInput is the mutable definition of an offer
type OfferInput struct {
	Code         string             `validate:"required,max=64"`
	Kind         model.OfferKind    `validate:"oneof=1 2"`
	DiscountType model.DiscountType `validate:"oneof=1 2"`

	DiscountValue  decimal.Decimal     `validate:"gt=0"`
	MaxDiscountCap decimal.NullDecimal `validate:"omitempty,gt=0"`
	MinOrderValue  decimal.NullDecimal `validate:"omitempty,gte=0"`

	ValidFrom time.Time `validate:"required"`
	ValidTo   time.Time `validate:"required"`

	GlobalQuota      sql.NullInt64 `validate:"omitempty,gt=0"`
	PerCustomerQuota sql.NullInt64 `validate:"omitempty,gt=0"`

	Title       string `validate:"max=255"`
	Description string `validate:"max=4096"`
}

// CreateOfferInput ...
type CreateOfferInput struct {
	OfferInput

	// Active creates the offer already activated
	Active bool
}

var maxPercentage = decimal.NewFromInt(100)

func decimalTypeFunc(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	case decimal.NullDecimal:
		if !v.Valid {
			return nil
		}
		return v.Decimal.InexactFloat64()
	default:
		return nil
	}
}

func nullInt64TypeFunc(field reflect.Value) interface{} {
	v, ok := field.Interface().(sql.NullInt64)
	if !ok || !v.Valid {
		return nil
	}
	return v.Int64
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{}, decimal.NullDecimal{})
	v.RegisterCustomTypeFunc(nullInt64TypeFunc, sql.NullInt64{})
	return v
}

func invalidOffer(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOffer, fmt.Sprintf(format, args...))
}

func validateOffer(v *validator.Validate, input OfferInput) error {
	if err := v.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOffer, err)
	}
	if input.ValidFrom.After(input.ValidTo) {
		return invalidOffer("valid from is after valid to")
	}
	if input.DiscountType == model.DiscountTypePercentage && input.DiscountValue.GreaterThan(maxPercentage) {
		return invalidOffer("percentage discount %s is greater than 100", input.DiscountValue)
	}

	amounts := []struct {
		name   string
		amount decimal.NullDecimal
	}{
		{name: "discount value", amount: decimal.NewNullDecimal(input.DiscountValue)},
		{name: "max discount cap", amount: input.MaxDiscountCap},
		{name: "min order value", amount: input.MinOrderValue},
	}
	for _, a := range amounts {
		if a.amount.Valid && !discount.HasValidScale(a.amount.Decimal) {
			return invalidOffer("%s %s has more than %d decimal places", a.name, a.amount.Decimal, discount.AmountScale)
		}
	}

	// omitempty skips zero values of set nullable fields
	if input.MaxDiscountCap.Valid && !input.MaxDiscountCap.Decimal.IsPositive() {
		return invalidOffer("max discount cap must be positive")
	}
	if input.GlobalQuota.Valid && input.GlobalQuota.Int64 <= 0 {
		return invalidOffer("global quota must be positive")
	}
	if input.PerCustomerQuota.Valid && input.PerCustomerQuota.Int64 <= 0 {
		return invalidOffer("per customer quota must be positive")
	}
	return nil
}

type redeemValidation struct {
	CustomerID string `validate:"required,max=64"`
	OfferID    int64  `validate:"gt=0"`
}

func validateRedeem(v *validator.Validate, input RedeemInput) error {
	err := v.Struct(redeemValidation{
		CustomerID: input.CustomerID,
		OfferID:    input.OfferID,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !input.OrderAmount.IsPositive() {
		return fmt.Errorf("%w: order amount must be positive", ErrInvalidInput)
	}
	return nil
}
