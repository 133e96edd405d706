package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/util"
	"github.com/go-sql-driver/mysql"
)

//go:generate moq -out offer_mocks.go . Offer
//go:generate otelwrap --out offer_wrappers.go . Offer

// Offer ...
type Offer interface {
	GetOffer(ctx context.Context, id int64) (model.NullOffer, error)
	FindOfferByCode(ctx context.Context, code string) (model.NullOffer, error)

	// GetOfferForUpdate locks the offer row until the end of the transaction
	GetOfferForUpdate(ctx context.Context, id int64) (model.NullOffer, error)

	InsertOffer(ctx context.Context, offer model.Offer) (int64, error)
	// UpdateOffer updates the definition, code and usage counter are unchanged
	UpdateOffer(ctx context.Context, offer model.Offer) error
	UpdateOfferStatus(ctx context.Context, id int64, status model.OfferStatus) error

	GetOfferUsage(ctx context.Context, offerID int64, customerID string) (model.OfferUsage, error)

	// IncrementUsageAtomic must be called inside a transaction. It increments the global counter
	// only when the global quota allows, then rechecks the per-customer quota under the same row lock.
	// A non-OK result must abort the transaction.
	IncrementUsageAtomic(ctx context.Context, offerID int64, customerID string) (model.IncrementResult, error)
	AppendUsageRecord(ctx context.Context, record model.UsageRecord) (int64, error)
	CountCustomerUsage(ctx context.Context, offerID int64, customerID string) (int64, error)
}

type offerImpl struct {
}

// NewOffer ...
func NewOffer() Offer {
	return &offerImpl{}
}

const offerColumns = `
	id, code, code_hash, kind, status,
	discount_type, discount_value, max_discount_cap, min_order_value,
	valid_from, valid_to,
	global_quota, per_customer_quota, global_used_count,
	title, description, created_at, updated_at
`

func nullOfferFromResult(offer model.Offer, err error) (model.NullOffer, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullOffer{}, nil
	}
	if err != nil {
		return model.NullOffer{}, err
	}
	return model.NullOffer{Valid: true, Offer: offer}, nil
}

// GetOffer ...
func (r *offerImpl) GetOffer(ctx context.Context, id int64) (model.NullOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM offer WHERE id = ?`

	var offer model.Offer
	err := GetReadonly(ctx).GetContext(ctx, &offer, query, id)
	return nullOfferFromResult(offer, err)
}

// FindOfferByCode ...
func (r *offerImpl) FindOfferByCode(ctx context.Context, code string) (model.NullOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM offer WHERE code_hash = ? AND code = ?`

	var offer model.Offer
	err := GetReadonly(ctx).GetContext(ctx, &offer, query, util.HashFunc(code), code)
	return nullOfferFromResult(offer, err)
}

// GetOfferForUpdate ...
func (r *offerImpl) GetOfferForUpdate(ctx context.Context, id int64) (model.NullOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM offer WHERE id = ? FOR UPDATE`

	var offer model.Offer
	err := GetTx(ctx).GetContext(ctx, &offer, query, id)
	return nullOfferFromResult(offer, err)
}

// InsertOffer ...
func (r *offerImpl) InsertOffer(ctx context.Context, offer model.Offer) (int64, error) {
	query := `
INSERT INTO offer (
	code, code_hash, kind, status,
	discount_type, discount_value, max_discount_cap, min_order_value,
	valid_from, valid_to,
	global_quota, per_customer_quota, global_used_count,
	title, description
) VALUES (
	:code, :code_hash, :kind, :status,
	:discount_type, :discount_value, :max_discount_cap, :min_order_value,
	:valid_from, :valid_to,
	:global_quota, :per_customer_quota, 0,
	:title, :description
)
`
	offer.CodeHash = util.HashFunc(offer.Code)
	result, err := GetTx(ctx).NamedExecContext(ctx, query, offer)
	if isMySQLError(err, errCodeDuplicateEntry) {
		return 0, ErrDuplicateCode
	}
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateOffer ...
func (r *offerImpl) UpdateOffer(ctx context.Context, offer model.Offer) error {
	query := `
UPDATE offer SET
	kind = :kind,
	status = :status,

	discount_type = :discount_type,
	discount_value = :discount_value,
	max_discount_cap = :max_discount_cap,
	min_order_value = :min_order_value,

	valid_from = :valid_from,
	valid_to = :valid_to,

	global_quota = :global_quota,
	per_customer_quota = :per_customer_quota,

	title = :title,
	description = :description
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, offer)
	return err
}

// UpdateOfferStatus ...
func (r *offerImpl) UpdateOfferStatus(ctx context.Context, id int64, status model.OfferStatus) error {
	query := `UPDATE offer SET status = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, id)
	return err
}

// GetOfferUsage ...
func (r *offerImpl) GetOfferUsage(ctx context.Context, offerID int64, customerID string) (model.OfferUsage, error) {
	query := `
SELECT o.global_used_count,
	(SELECT COUNT(*) FROM offer_usage u WHERE u.offer_id = o.id AND u.customer_id = ?) AS customer_used
FROM offer o
WHERE o.id = ?
`
	var usage model.OfferUsage
	err := GetReadonly(ctx).GetContext(ctx, &usage, query, customerID, offerID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.OfferUsage{}, nil
	}
	return usage, err
}

// IncrementUsageAtomic ...
func (r *offerImpl) IncrementUsageAtomic(
	ctx context.Context, offerID int64, customerID string,
) (model.IncrementResult, error) {
	tx := GetTx(ctx)

	query := `
UPDATE offer SET global_used_count = global_used_count + 1
WHERE id = ? AND (global_quota IS NULL OR global_used_count < global_quota)
`
	result, err := tx.ExecContext(ctx, query, offerID)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		var id int64
		err := tx.GetContext(ctx, &id, `SELECT id FROM offer WHERE id = ?`, offerID)
		if errors.Is(err, sql.ErrNoRows) {
			return model.IncrementResultNotFound, nil
		}
		if err != nil {
			return 0, err
		}
		return model.IncrementResultGlobalQuotaExceeded, nil
	}

	// the offer row is now locked by this transaction
	var quota sql.NullInt64
	err = tx.GetContext(ctx, &quota, `SELECT per_customer_quota FROM offer WHERE id = ?`, offerID)
	if err != nil {
		return 0, err
	}
	if !quota.Valid {
		return model.IncrementResultOK, nil
	}

	var count int64
	countQuery := `
SELECT COUNT(*) FROM offer_usage
WHERE offer_id = ? AND customer_id = ?
LOCK IN SHARE MODE
`
	err = tx.GetContext(ctx, &count, countQuery, offerID, customerID)
	if err != nil {
		return 0, err
	}
	if count >= quota.Int64 {
		return model.IncrementResultPerCustomerQuotaExceeded, nil
	}
	return model.IncrementResultOK, nil
}

// AppendUsageRecord ...
func (r *offerImpl) AppendUsageRecord(ctx context.Context, record model.UsageRecord) (int64, error) {
	query := `
INSERT INTO offer_usage (offer_id, customer_id, discount_amount, used_at)
VALUES (:offer_id, :customer_id, :discount_amount, :used_at)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, record)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CountCustomerUsage ...
func (r *offerImpl) CountCustomerUsage(ctx context.Context, offerID int64, customerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM offer_usage WHERE offer_id = ? AND customer_id = ?`

	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, offerID, customerID)
	return count, err
}

const (
	errCodeDuplicateEntry  = 1062
	errCodeLockWaitTimeout = 1205
	errCodeDeadlock        = 1213
)

// ErrDuplicateCode is returned by InsertOffer when the code is already taken
var ErrDuplicateCode = errors.New("offer code already exists")

func isMySQLError(err error, numbers ...uint16) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	for _, n := range numbers {
		if mysqlErr.Number == n {
			return true
		}
	}
	return false
}

// IsLockTimeout reports lock wait timeouts and deadlock victims, both are safe to retry
func IsLockTimeout(err error) bool {
	return isMySQLError(err, errCodeLockWaitTimeout, errCodeDeadlock)
}
