package discount

import (
	"github.com/QuangTung97/promo-offer/model"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places of stored money amounts
const AmountScale int32 = 2

var hundred = decimal.NewFromInt(100)

// HasValidScale reports whether the amount fits in AmountScale decimal places
func HasValidScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(AmountScale))
}

// Calculate returns the price reduction of an offer for an order amount, truncated to AmountScale.
// The result never exceeds the order amount nor the offer's cap.
func Calculate(offer model.Offer, orderAmount decimal.Decimal) decimal.Decimal {
	return calculate(offer, orderAmount).Truncate(AmountScale)
}

func calculate(offer model.Offer, orderAmount decimal.Decimal) decimal.Decimal {
	if !orderAmount.IsPositive() {
		return decimal.Zero
	}

	switch offer.DiscountType {
	case model.DiscountTypePercentage:
		return percentage(offer, orderAmount)
	case model.DiscountTypeFixedAmount:
		return decimal.Min(offer.DiscountValue, orderAmount)
	default:
		return decimal.Zero
	}
}

func percentage(offer model.Offer, orderAmount decimal.Decimal) decimal.Decimal {
	amount := orderAmount.Mul(offer.DiscountValue).Div(hundred)
	if offer.MaxDiscountCap.Valid && amount.GreaterThan(offer.MaxDiscountCap.Decimal) {
		amount = offer.MaxDiscountCap.Decimal
	}
	return decimal.Min(amount, orderAmount)
}
