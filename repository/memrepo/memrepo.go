package memrepo

import (
	"context"
	"fmt"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/util"
	"github.com/QuangTung97/promo-offer/repository"
	"golang.org/x/sync/semaphore"
	"sync"
	"sync/atomic"
	"time"
)

// offerCell is the in-memory equivalent of an offer row.
// sem is the row lock held until the end of a transaction, mu only guards visibility for readers.
type offerCell struct {
	sem *semaphore.Weighted

	mu            sync.RWMutex
	offer         model.Offer
	customerUsage map[string]int64
	records       []model.UsageRecord
}

// Repository implements repository.Offer in process memory.
// Writes are applied when the enclosing transaction commits, readers never block on row locks.
type Repository struct {
	mu     sync.RWMutex
	offers map[int64]*offerCell
	codes  map[string]int64

	lastOfferID int64
	lastUsageID int64

	now func() time.Time
}

var _ repository.Offer = &Repository{}

// New ...
func New() *Repository {
	return &Repository{
		offers: map[int64]*offerCell{},
		codes:  map[string]int64{},
		now:    time.Now,
	}
}

type txKeyType struct{}

var txKey = txKeyType{}

type memTx struct {
	locked     map[*offerCell]struct{}
	onCommit   []func()
	onRollback []func()
}

func (tx *memTx) lock(ctx context.Context, c *offerCell) error {
	if _, ok := tx.locked[c]; ok {
		return nil
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	tx.locked[c] = struct{}{}
	return nil
}

func (tx *memTx) finish(commit bool) {
	if commit {
		for _, fn := range tx.onCommit {
			fn()
		}
	} else {
		for i := len(tx.onRollback) - 1; i >= 0; i-- {
			tx.onRollback[i]()
		}
	}
	for c := range tx.locked {
		c.sem.Release(1)
	}
}

func getTx(ctx context.Context) *memTx {
	tx, ok := ctx.Value(txKey).(*memTx)
	if !ok {
		panic("Not found transaction")
	}
	return tx
}

// Transact ...
func (r *Repository) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey).(*memTx); ok {
		return fn(ctx)
	}

	tx := &memTx{
		locked: map[*offerCell]struct{}{},
	}
	committed := false
	defer func() {
		tx.finish(committed)
	}()

	err = fn(context.WithValue(ctx, txKey, tx))
	if err != nil {
		return err
	}
	committed = true
	return nil
}

// Readonly ...
func (r *Repository) Readonly(ctx context.Context) context.Context {
	return ctx
}

// Provider returns the transaction provider sharing this repository's row locks
func (r *Repository) Provider() repository.Provider {
	return r
}

func (r *Repository) getCell(id int64) *offerCell {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.offers[id]
}

func (r *Repository) lockCell(ctx context.Context, id int64) (*offerCell, error) {
	c := r.getCell(id)
	if c == nil {
		return nil, nil
	}
	if err := getTx(ctx).lock(ctx, c); err != nil {
		return nil, fmt.Errorf("memrepo: lock offer %d: %w", id, err)
	}
	return c, nil
}

func (c *offerCell) snapshot() model.NullOffer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.NullOffer{Valid: true, Offer: c.offer}
}

// GetOffer ...
func (r *Repository) GetOffer(_ context.Context, id int64) (model.NullOffer, error) {
	c := r.getCell(id)
	if c == nil {
		return model.NullOffer{}, nil
	}
	return c.snapshot(), nil
}

// FindOfferByCode ...
func (r *Repository) FindOfferByCode(ctx context.Context, code string) (model.NullOffer, error) {
	r.mu.RLock()
	id, ok := r.codes[code]
	r.mu.RUnlock()

	if !ok {
		return model.NullOffer{}, nil
	}
	return r.GetOffer(ctx, id)
}

// GetOfferForUpdate ...
func (r *Repository) GetOfferForUpdate(ctx context.Context, id int64) (model.NullOffer, error) {
	c, err := r.lockCell(ctx, id)
	if err != nil || c == nil {
		return model.NullOffer{}, err
	}
	return c.snapshot(), nil
}

// InsertOffer is visible immediately and removed again if the transaction rolls back
func (r *Repository) InsertOffer(ctx context.Context, offer model.Offer) (int64, error) {
	tx := getTx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, existed := r.codes[offer.Code]; existed {
		return 0, repository.ErrDuplicateCode
	}

	r.lastOfferID++
	id := r.lastOfferID

	now := r.now()
	offer.ID = id
	offer.CodeHash = util.HashFunc(offer.Code)
	offer.GlobalUsedCount = 0
	offer.CreatedAt = now
	offer.UpdatedAt = now

	r.offers[id] = &offerCell{
		sem:           semaphore.NewWeighted(1),
		offer:         offer,
		customerUsage: map[string]int64{},
	}
	r.codes[offer.Code] = id

	tx.onRollback = append(tx.onRollback, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.offers, id)
		delete(r.codes, offer.Code)
	})
	return id, nil
}

// UpdateOffer ...
func (r *Repository) UpdateOffer(ctx context.Context, offer model.Offer) error {
	c, err := r.lockCell(ctx, offer.ID)
	if err != nil || c == nil {
		return err
	}

	tx := getTx(ctx)
	tx.onCommit = append(tx.onCommit, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		offer.Code = c.offer.Code
		offer.CodeHash = c.offer.CodeHash
		offer.GlobalUsedCount = c.offer.GlobalUsedCount
		offer.CreatedAt = c.offer.CreatedAt
		offer.UpdatedAt = r.now()
		c.offer = offer
	})
	return nil
}

// UpdateOfferStatus ...
func (r *Repository) UpdateOfferStatus(ctx context.Context, id int64, status model.OfferStatus) error {
	c, err := r.lockCell(ctx, id)
	if err != nil || c == nil {
		return err
	}

	tx := getTx(ctx)
	tx.onCommit = append(tx.onCommit, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.offer.Status = status
		c.offer.UpdatedAt = r.now()
	})
	return nil
}

// GetOfferUsage ...
func (r *Repository) GetOfferUsage(_ context.Context, offerID int64, customerID string) (model.OfferUsage, error) {
	c := r.getCell(offerID)
	if c == nil {
		return model.OfferUsage{}, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.OfferUsage{
		GlobalUsed:   c.offer.GlobalUsedCount,
		CustomerUsed: c.customerUsage[customerID],
	}, nil
}

// IncrementUsageAtomic checks both quotas against committed state while holding the row lock.
// Writes pending in the same transaction are not visible to the check.
func (r *Repository) IncrementUsageAtomic(
	ctx context.Context, offerID int64, customerID string,
) (model.IncrementResult, error) {
	c, err := r.lockCell(ctx, offerID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return model.IncrementResultNotFound, nil
	}

	c.mu.RLock()
	offer := c.offer
	customerUsed := c.customerUsage[customerID]
	c.mu.RUnlock()

	if offer.IsQuotaExhausted() {
		return model.IncrementResultGlobalQuotaExceeded, nil
	}
	if offer.PerCustomerQuota.Valid && customerUsed >= offer.PerCustomerQuota.Int64 {
		return model.IncrementResultPerCustomerQuotaExceeded, nil
	}

	tx := getTx(ctx)
	tx.onCommit = append(tx.onCommit, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.offer.GlobalUsedCount++
	})
	return model.IncrementResultOK, nil
}

// AppendUsageRecord ...
func (r *Repository) AppendUsageRecord(ctx context.Context, record model.UsageRecord) (int64, error) {
	c, err := r.lockCell(ctx, record.OfferID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, fmt.Errorf("memrepo: offer %d not found", record.OfferID)
	}

	record.ID = atomic.AddInt64(&r.lastUsageID, 1)

	tx := getTx(ctx)
	tx.onCommit = append(tx.onCommit, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.records = append(c.records, record)
		c.customerUsage[record.CustomerID]++
	})
	return record.ID, nil
}

// CountCustomerUsage ...
func (r *Repository) CountCustomerUsage(_ context.Context, offerID int64, customerID string) (int64, error) {
	c := r.getCell(offerID)
	if c == nil {
		return 0, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.customerUsage[customerID], nil
}

// UsageRecords returns the committed usage records of an offer in commit order
func (r *Repository) UsageRecords(offerID int64) []model.UsageRecord {
	c := r.getCell(offerID)
	if c == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]model.UsageRecord, len(c.records))
	copy(result, c.records)
	return result
}
