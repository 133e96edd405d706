package offer

import (
	"context"
	"errors"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/eligibility"
	"github.com/QuangTung97/promo-offer/pkg/otellib"
	"github.com/QuangTung97/promo-offer/repository"
	"github.com/QuangTung97/promo-offer/service/catalog"
	"github.com/QuangTung97/promo-offer/service/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"strconv"
	"strings"
	"time"
)

//go:generate moq -out service_mocks_test.go . IService
//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	PreviewDiscount(ctx context.Context, input PreviewInput) (PreviewOutput, error)
	Redeem(ctx context.Context, input RedeemInput) (RedeemOutput, error)

	CreateOffer(ctx context.Context, input CreateOfferInput) (model.Offer, error)
	UpdateOffer(ctx context.Context, id int64, input OfferInput) (model.Offer, error)
	ActivateOffer(ctx context.Context, id int64) error
	DeactivateOffer(ctx context.Context, id int64) error
	GetOffer(ctx context.Context, id int64) (model.NullOffer, error)
	GetUsage(ctx context.Context, offerID int64, customerID string) (model.OfferUsage, error)
}

// Catalog ...
type Catalog interface {
	Get(ctx context.Context, id int64) (catalog.NullEntry, error)
	FindByCode(ctx context.Context, code string) (catalog.NullEntry, error)
	Invalidate(ctx context.Context, offer model.Offer) error
}

// PreviewInput ...
type PreviewInput struct {
	// OfferCodeOrID is looked up as a code first, then as a numeric id
	OfferCodeOrID string

	// Date defaults to now in the service timezone when zero
	Date        time.Time
	OrderAmount decimal.Decimal
	CustomerID  string
}

// PreviewOutput ...
type PreviewOutput struct {
	OfferID        int64
	Eligible       bool
	DiscountAmount decimal.Decimal
	Reasons        []eligibility.Reason
}

// RedeemInput ...
type RedeemInput struct {
	OfferID     int64
	CustomerID  string
	OrderAmount decimal.Decimal
}

// RedeemOutput ...
type RedeemOutput struct {
	Record      model.UsageRecord
	FinalAmount decimal.Decimal
}

// Service ...
type Service struct {
	provider repository.Provider
	repo     repository.Offer
	catalog  Catalog
	ledger   *ledger.Ledger
	metrics  *Metrics

	validate *validator.Validate
	now      func() time.Time
	location *time.Location
}

var _ IService = &Service{}

// Option ...
type Option func(s *Service)

// WithNow replaces the clock used by Redeem and by previews without a date
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation sets the timezone in which the current time is judged for time conditions
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.location = loc
	}
}

// NewService ...
func NewService(
	provider repository.Provider, repo repository.Offer,
	offerCatalog Catalog, offerLedger *ledger.Ledger, metrics *Metrics,
	options ...Option,
) *Service {
	s := &Service{
		provider: provider,
		repo:     repo,
		catalog:  offerCatalog,
		ledger:   offerLedger,
		metrics:  metrics,

		validate: newValidator(),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Service) resolve(ctx context.Context, codeOrID string) (catalog.NullEntry, error) {
	entry, err := s.catalog.FindByCode(ctx, codeOrID)
	if err != nil || entry.Valid {
		return entry, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(codeOrID), 10, 64)
	if err != nil || id <= 0 {
		return catalog.NullEntry{}, nil
	}
	return s.catalog.Get(ctx, id)
}

func (s *Service) currentTime() time.Time {
	return s.now().In(s.location)
}

func notFoundPreview() PreviewOutput {
	return PreviewOutput{
		Eligible:       false,
		DiscountAmount: decimal.Zero,
		Reasons:        []eligibility.Reason{eligibility.NewReason(eligibility.ReasonNotFound)},
	}
}

// PreviewDiscount evaluates the offer against the order without mutating anything
func (s *Service) PreviewDiscount(ctx context.Context, input PreviewInput) (PreviewOutput, error) {
	entry, err := s.resolve(ctx, input.OfferCodeOrID)
	if err != nil {
		return PreviewOutput{}, err
	}
	if !entry.Valid {
		s.metrics.observePreview(false)
		return notFoundPreview(), nil
	}

	offer := entry.Entry.Offer

	usage, err := s.ledger.Usage(ctx, offer.ID, input.CustomerID)
	if err != nil {
		return PreviewOutput{}, err
	}
	offer.GlobalUsedCount = usage.GlobalUsed

	date := input.Date
	if date.IsZero() {
		date = s.currentTime()
	}

	result := eligibility.Evaluate(eligibility.Input{
		Offer:              offer,
		Condition:          entry.Entry.Condition,
		Date:               date,
		OrderAmount:        input.OrderAmount,
		CustomerID:         input.CustomerID,
		CustomerPriorUsage: usage.CustomerUsed,
	}, eligibility.StrategyForKind(offer.Kind))

	s.metrics.observePreview(result.Eligible)

	return PreviewOutput{
		OfferID:        offer.ID,
		Eligible:       result.Eligible,
		DiscountAmount: result.DiscountAmount,
		Reasons:        result.Reasons,
	}, nil
}

// Redeem evaluates with fresh counters at the current time then commits the usage atomically.
// When the commit rejects a redemption that passed evaluation the error is flagged RaceLost,
// the caller must discard any price computed before.
func (s *Service) Redeem(ctx context.Context, input RedeemInput) (RedeemOutput, error) {
	if err := validateRedeem(s.validate, input); err != nil {
		return RedeemOutput{}, err
	}

	nullOffer, err := s.repo.GetOffer(s.provider.Readonly(ctx), input.OfferID)
	if err != nil {
		s.metrics.observeRedeem(redeemResultError)
		return RedeemOutput{}, err
	}
	if !nullOffer.Valid {
		s.metrics.observeRedeem(redeemResultRejected)
		return RedeemOutput{}, eligibility.NewError(eligibility.NewReason(eligibility.ReasonNotFound))
	}
	offer := nullOffer.Offer

	usage, err := s.ledger.Usage(ctx, offer.ID, input.CustomerID)
	if err != nil {
		s.metrics.observeRedeem(redeemResultError)
		return RedeemOutput{}, err
	}
	offer.GlobalUsedCount = usage.GlobalUsed

	now := s.currentTime()
	result := eligibility.Evaluate(eligibility.Input{
		Offer:              offer,
		Condition:          catalog.NewEntry(offer).Condition,
		Date:               now,
		OrderAmount:        input.OrderAmount,
		CustomerID:         input.CustomerID,
		CustomerPriorUsage: usage.CustomerUsed,
	}, eligibility.StrategyForKind(offer.Kind))

	if !result.Eligible {
		s.metrics.observeRedeem(redeemResultRejected)
		return RedeemOutput{}, result.Err()
	}

	start := time.Now()
	record, err := s.ledger.Commit(ctx, ledger.CommitInput{
		OfferID:        offer.ID,
		CustomerID:     input.CustomerID,
		DiscountAmount: result.DiscountAmount,
		UsedAt:         now,
	})
	s.metrics.commitDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return RedeemOutput{}, s.commitFailed(ctx, err)
	}

	s.metrics.observeRedeem(redeemResultSuccess)
	otellib.Extract(ctx).Info("offer redeemed",
		zap.Int64("offer.id", record.OfferID),
		zap.String("customer.id", record.CustomerID),
		zap.String("discount", record.DiscountAmount.String()),
	)

	return RedeemOutput{
		Record:      record,
		FinalAmount: input.OrderAmount.Sub(record.DiscountAmount),
	}, nil
}

func (s *Service) commitFailed(ctx context.Context, err error) error {
	var offerErr *eligibility.Error
	if errors.As(err, &offerErr) {
		s.metrics.observeRedeem(redeemResultRaceLost)
		return &eligibility.Error{
			Reasons:  offerErr.Reasons,
			RaceLost: true,
		}
	}

	if ledger.IsTransient(err) {
		s.metrics.observeRedeem(redeemResultLockTimeout)
		otellib.Extract(ctx).Warn("offer redeem lock timeout", zap.Error(err))
		return err
	}

	s.metrics.observeRedeem(redeemResultError)
	otellib.WrapError(ctx, err)
	return err
}

// GetUsage ...
func (s *Service) GetUsage(ctx context.Context, offerID int64, customerID string) (model.OfferUsage, error) {
	return s.ledger.Usage(ctx, offerID, customerID)
}
