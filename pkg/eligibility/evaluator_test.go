package eligibility

import (
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/timecond"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newNullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Valid: true, Int64: n}
}

func newOffer() model.Offer {
	return model.Offer{
		ID:     11,
		Code:   "SUMMER20",
		Kind:   model.OfferKindVoucher,
		Status: model.OfferStatusActive,

		DiscountType:   model.DiscountTypePercentage,
		DiscountValue:  newDecimal("20"),
		MaxDiscountCap: decimal.NewNullDecimal(newDecimal("500000")),
		MinOrderValue:  decimal.NewNullDecimal(newDecimal("1000000")),

		ValidFrom: newTime("2022-05-01T00:00:00+07:00"),
		ValidTo:   newTime("2022-05-31T23:59:59+07:00"),

		GlobalQuota:      newNullInt64(100),
		PerCustomerQuota: newNullInt64(1),
		GlobalUsedCount:  10,
	}
}

// Wednesday
func newInput() Input {
	return Input{
		Offer:       newOffer(),
		Date:        newTime("2022-05-11T10:00:00+07:00"),
		OrderAmount: newDecimal("10000000"),
		CustomerID:  "customer-01",
	}
}

func TestEvaluate__Eligible(t *testing.T) {
	result := Evaluate(newInput(), StrategyAggregate)

	assert.Equal(t, true, result.Eligible)
	assert.Nil(t, result.Reasons)
	assert.Equal(t, "500000", result.DiscountAmount.String())
	assert.Nil(t, result.Err())
}

func TestEvaluate__Eligible_Without_Optional_Limits(t *testing.T) {
	in := newInput()
	in.Offer.MaxDiscountCap = decimal.NullDecimal{}
	in.Offer.MinOrderValue = decimal.NullDecimal{}
	in.Offer.GlobalQuota = sql.NullInt64{}
	in.Offer.PerCustomerQuota = sql.NullInt64{}
	in.Offer.GlobalUsedCount = 1000000
	in.CustomerPriorUsage = 1000

	result := Evaluate(in, StrategyFirstFailure)
	assert.Equal(t, true, result.Eligible)
	assert.Equal(t, "2000000", result.DiscountAmount.String())
}

func TestEvaluate__Validity_Bounds_Inclusive(t *testing.T) {
	in := newInput()

	in.Date = in.Offer.ValidFrom
	assert.Equal(t, true, Evaluate(in, StrategyAggregate).Eligible)

	in.Date = in.Offer.ValidTo
	assert.Equal(t, true, Evaluate(in, StrategyAggregate).Eligible)

	in.Date = in.Offer.ValidFrom.Add(-time.Second)
	assert.Equal(t, []Reason{NewReason(ReasonNotYetStarted)}, Evaluate(in, StrategyAggregate).Reasons)

	in.Date = in.Offer.ValidTo.Add(time.Second)
	assert.Equal(t, []Reason{NewReason(ReasonExpired)}, Evaluate(in, StrategyAggregate).Reasons)
}

func TestEvaluate__Single_Violations(t *testing.T) {
	table := []struct {
		name   string
		modify func(in *Input)
		reason Reason
	}{
		{
			name: "inactive",
			modify: func(in *Input) {
				in.Offer.Status = model.OfferStatusInactive
			},
			reason: NewReason(ReasonInactive),
		},
		{
			name: "global-quota",
			modify: func(in *Input) {
				in.Offer.GlobalUsedCount = 100
			},
			reason: NewReason(ReasonGlobalQuotaExceeded),
		},
		{
			name: "min-order",
			modify: func(in *Input) {
				in.OrderAmount = newDecimal("999999")
			},
			reason: NewReason(ReasonMinOrderNotMet),
		},
		{
			name: "per-customer-quota",
			modify: func(in *Input) {
				in.CustomerPriorUsage = 1
			},
			reason: NewReason(ReasonPerCustomerQuotaExceeded),
		},
		{
			name: "time-condition",
			modify: func(in *Input) {
				in.Condition = timecond.NewCondition(timecond.FlagWeekend)
			},
			reason: TimeConditionUnmet(timecond.FlagWeekend),
		},
	}

	for _, e := range table {
		for _, strategy := range []Strategy{StrategyAggregate, StrategyFirstFailure} {
			t.Run(e.name+"-"+strategy.String(), func(t *testing.T) {
				in := newInput()
				e.modify(&in)

				result := Evaluate(in, strategy)
				assert.Equal(t, Result{
					Eligible:       false,
					DiscountAmount: decimal.Zero,
					Reasons:        []Reason{e.reason},
				}, result)
			})
		}
	}
}

func newInputViolatingEverything() Input {
	in := newInput()
	in.Offer.Status = model.OfferStatusInactive
	in.Offer.GlobalUsedCount = 100
	in.OrderAmount = newDecimal("10")
	in.CustomerPriorUsage = 3
	in.Condition = timecond.NewCondition(timecond.FlagWeekend, timecond.FlagAutumn)
	in.Date = newTime("2022-05-31T23:59:59+07:00").Add(time.Hour)
	return in
}

func TestEvaluate__Aggregate_Collects_All(t *testing.T) {
	result := Evaluate(newInputViolatingEverything(), StrategyAggregate)

	assert.Equal(t, false, result.Eligible)
	assert.Equal(t, []Reason{
		NewReason(ReasonInactive),
		NewReason(ReasonExpired),
		NewReason(ReasonGlobalQuotaExceeded),
		NewReason(ReasonMinOrderNotMet),
		NewReason(ReasonPerCustomerQuotaExceeded),
		TimeConditionUnmet(timecond.FlagWeekend),
		TimeConditionUnmet(timecond.FlagAutumn),
	}, result.Reasons)
	assert.True(t, result.DiscountAmount.IsZero())
}

func TestEvaluate__First_Failure_Stops(t *testing.T) {
	result := Evaluate(newInputViolatingEverything(), StrategyFirstFailure)
	assert.Equal(t, []Reason{NewReason(ReasonInactive)}, result.Reasons)

	in := newInputViolatingEverything()
	in.Offer.Status = model.OfferStatusActive
	in.Date = newTime("2022-05-11T10:00:00+07:00")
	in.Offer.GlobalUsedCount = 0
	in.OrderAmount = newDecimal("10000000")
	in.CustomerPriorUsage = 0

	// only the first unmet time flag is reported
	result = Evaluate(in, StrategyFirstFailure)
	assert.Equal(t, []Reason{TimeConditionUnmet(timecond.FlagWeekend)}, result.Reasons)
}

func TestEvaluate__Weekend_Text(t *testing.T) {
	in := newInput()
	in.Offer.Title = "Weekend stay"
	in.Condition = timecond.Parse(in.Offer.Title, in.Offer.Description)

	// Wednesday
	result := Evaluate(in, StrategyAggregate)
	assert.Equal(t, false, result.Eligible)
	assert.Equal(t, []Reason{TimeConditionUnmet(timecond.FlagWeekend)}, result.Reasons)

	// Saturday
	in.Date = newTime("2022-05-14T10:00:00+07:00")
	result = Evaluate(in, StrategyAggregate)
	assert.Equal(t, true, result.Eligible)
}

func TestEvaluate__Idempotent(t *testing.T) {
	in := newInput()
	first := Evaluate(in, StrategyAggregate)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(in, StrategyAggregate))
	}
	assert.Equal(t, newInput(), in)
}

func TestStrategyForKind(t *testing.T) {
	assert.Equal(t, StrategyAggregate, StrategyForKind(model.OfferKindVoucher))
	assert.Equal(t, StrategyFirstFailure, StrategyForKind(model.OfferKindPromotion))
}

func TestResult_Err__Matches_Sentinels(t *testing.T) {
	result := Evaluate(newInputViolatingEverything(), StrategyAggregate)
	err := result.Err()

	assert.True(t, errors.Is(err, ErrInactive))
	assert.True(t, errors.Is(err, ErrGlobalQuotaExceeded))
	assert.True(t, errors.Is(err, ErrTimeConditionUnmet))
	assert.True(t, errors.Is(err, NewError(TimeConditionUnmet(timecond.FlagAutumn))))
	assert.False(t, errors.Is(err, NewError(TimeConditionUnmet(timecond.FlagHoliday))))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrRaceLost))
}
