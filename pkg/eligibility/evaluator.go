package eligibility

import (
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/discount"
	"github.com/QuangTung97/promo-offer/pkg/timecond"
	"github.com/shopspring/decimal"
	"time"
)

// Strategy decides how many violated rules are reported
type Strategy int

const (
	// StrategyAggregate reports every violated rule, used for vouchers
	StrategyAggregate Strategy = 1

	// StrategyFirstFailure stops at the first violated rule, used for promotions
	StrategyFirstFailure Strategy = 2
)

// StrategyForKind ...
func StrategyForKind(kind model.OfferKind) Strategy {
	if kind == model.OfferKindPromotion {
		return StrategyFirstFailure
	}
	return StrategyAggregate
}

func (s Strategy) String() string {
	switch s {
	case StrategyAggregate:
		return "aggregate"
	case StrategyFirstFailure:
		return "first-failure"
	default:
		return "unknown"
	}
}

// Input ...
type Input struct {
	Offer     model.Offer
	Condition timecond.Condition

	Date               time.Time
	OrderAmount        decimal.Decimal
	CustomerID         string
	CustomerPriorUsage int64
}

// Result ...
type Result struct {
	Eligible       bool
	DiscountAmount decimal.Decimal
	Reasons        []Reason
}

// Err returns nil when eligible
func (r Result) Err() error {
	if r.Eligible {
		return nil
	}
	return NewError(r.Reasons...)
}

type evalState struct {
	strategy Strategy
	input    Input
	reasons  []Reason
}

func (s *evalState) stopped() bool {
	return s.strategy == StrategyFirstFailure && len(s.reasons) > 0
}

func (s *evalState) addReason(r Reason) {
	if s.stopped() {
		return
	}
	s.reasons = append(s.reasons, r)
}

func (s *evalState) doNext(fn func()) {
	if s.stopped() {
		return
	}
	fn()
}

func (s *evalState) checkStatus() {
	if s.input.Offer.Status != model.OfferStatusActive {
		s.addReason(NewReason(ReasonInactive))
	}
}

func (s *evalState) checkValidity() {
	offer := s.input.Offer
	if offer.IsNotStarted(s.input.Date) {
		s.addReason(NewReason(ReasonNotYetStarted))
		return
	}
	if offer.IsExpired(s.input.Date) {
		s.addReason(NewReason(ReasonExpired))
	}
}

func (s *evalState) checkGlobalQuota() {
	if s.input.Offer.IsQuotaExhausted() {
		s.addReason(NewReason(ReasonGlobalQuotaExceeded))
	}
}

func (s *evalState) checkMinOrder() {
	minOrder := s.input.Offer.MinOrderValue
	if minOrder.Valid && s.input.OrderAmount.LessThan(minOrder.Decimal) {
		s.addReason(NewReason(ReasonMinOrderNotMet))
	}
}

func (s *evalState) checkCustomerQuota() {
	quota := s.input.Offer.PerCustomerQuota
	if quota.Valid && s.input.CustomerPriorUsage >= quota.Int64 {
		s.addReason(NewReason(ReasonPerCustomerQuotaExceeded))
	}
}

func (s *evalState) checkTimeCondition() {
	for _, flag := range s.input.Condition.Unmet(s.input.Date) {
		s.addReason(TimeConditionUnmet(flag))
	}
}

// Evaluate answers whether the offer can apply to the order at the given date.
// It has no side effects and is safe to call concurrently.
func Evaluate(in Input, strategy Strategy) Result {
	s := &evalState{
		strategy: strategy,
		input:    in,
	}

	s.doNext(s.checkStatus)
	s.doNext(s.checkValidity)
	s.doNext(s.checkGlobalQuota)
	s.doNext(s.checkMinOrder)
	s.doNext(s.checkCustomerQuota)
	s.doNext(s.checkTimeCondition)

	if len(s.reasons) > 0 {
		return Result{
			Eligible:       false,
			DiscountAmount: decimal.Zero,
			Reasons:        s.reasons,
		}
	}

	return Result{
		Eligible:       true,
		DiscountAmount: discount.Calculate(in.Offer, in.OrderAmount),
	}
}
