package ledger

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/eligibility"
	"github.com/QuangTung97/promo-offer/repository"
	"github.com/shopspring/decimal"
	"time"
)

// ErrLockTimeout is transient, the offer row lock could not be acquired in time
var ErrLockTimeout = errors.New("offer lock wait timeout")

// IsTransient reports errors that are safe to retry
func IsTransient(err error) bool {
	return errors.Is(err, ErrLockTimeout)
}

// CommitInput ...
type CommitInput struct {
	OfferID        int64
	CustomerID     string
	DiscountAmount decimal.Decimal
	UsedAt         time.Time
}

// Ledger is the only component that mutates usage counters.
// Commit rechecks both quotas atomically, a failed recheck never leaves a partial increment.
type Ledger struct {
	provider repository.Provider
	repo     repository.Offer

	lockWait time.Duration
}

// New ...
func New(provider repository.Provider, repo repository.Offer, lockWait time.Duration) *Ledger {
	return &Ledger{
		provider: provider,
		repo:     repo,
		lockWait: lockWait,
	}
}

func reasonOfIncrement(result model.IncrementResult) eligibility.Reason {
	switch result {
	case model.IncrementResultNotFound:
		return eligibility.NewReason(eligibility.ReasonNotFound)
	case model.IncrementResultGlobalQuotaExceeded:
		return eligibility.NewReason(eligibility.ReasonGlobalQuotaExceeded)
	default:
		return eligibility.NewReason(eligibility.ReasonPerCustomerQuotaExceeded)
	}
}

// Commit appends a usage record and increments the global counter in one transaction.
// A quota violated at commit time returns *eligibility.Error, lock wait timeouts return ErrLockTimeout.
func (l *Ledger) Commit(ctx context.Context, input CommitInput) (model.UsageRecord, error) {
	parentCtx := ctx
	if l.lockWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.lockWait)
		defer cancel()
	}

	record := model.UsageRecord{
		OfferID:        input.OfferID,
		CustomerID:     input.CustomerID,
		DiscountAmount: input.DiscountAmount,
		UsedAt:         input.UsedAt,
	}

	err := l.provider.Transact(ctx, func(ctx context.Context) error {
		result, err := l.repo.IncrementUsageAtomic(ctx, input.OfferID, input.CustomerID)
		if err != nil {
			return err
		}
		if result != model.IncrementResultOK {
			return eligibility.NewError(reasonOfIncrement(result))
		}

		id, err := l.repo.AppendUsageRecord(ctx, record)
		if err != nil {
			return err
		}
		record.ID = id
		return nil
	})
	if err != nil {
		return model.UsageRecord{}, l.classify(parentCtx, err)
	}
	return record, nil
}

func (l *Ledger) classify(parentCtx context.Context, err error) error {
	var offerErr *eligibility.Error
	if errors.As(err, &offerErr) {
		return err
	}
	if repository.IsLockTimeout(err) {
		return fmt.Errorf("%w: %v", ErrLockTimeout, err)
	}
	// only the deadline of the lock wait is transient, a cancelled caller is not
	if errors.Is(err, context.DeadlineExceeded) && parentCtx.Err() == nil {
		return fmt.Errorf("%w: %v", ErrLockTimeout, err)
	}
	return err
}

// Usage returns the committed counters used by previews
func (l *Ledger) Usage(ctx context.Context, offerID int64, customerID string) (model.OfferUsage, error) {
	return l.repo.GetOfferUsage(l.provider.Readonly(ctx), offerID, customerID)
}

// CustomerUsage ...
func (l *Ledger) CustomerUsage(ctx context.Context, offerID int64, customerID string) (int64, error) {
	return l.repo.CountCustomerUsage(l.provider.Readonly(ctx), offerID, customerID)
}
