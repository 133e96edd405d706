package offer

import (
	"context"
	"errors"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/otellib"
	"github.com/QuangTung97/promo-offer/pkg/util"
	"github.com/QuangTung97/promo-offer/repository"
	"go.uber.org/zap"
)

func offerFromInput(input OfferInput) model.Offer {
	return model.Offer{
		Code:         input.Code,
		Kind:         input.Kind,
		DiscountType: input.DiscountType,

		DiscountValue:  input.DiscountValue,
		MaxDiscountCap: input.MaxDiscountCap,
		MinOrderValue:  input.MinOrderValue,

		ValidFrom: input.ValidFrom,
		ValidTo:   input.ValidTo,

		GlobalQuota:      input.GlobalQuota,
		PerCustomerQuota: input.PerCustomerQuota,

		Title:       input.Title,
		Description: input.Description,
	}
}

func (s *Service) mustGetOffer(ctx context.Context, id int64) (model.Offer, error) {
	nullOffer, err := s.repo.GetOffer(s.provider.Readonly(ctx), id)
	if err != nil {
		return model.Offer{}, err
	}
	if !nullOffer.Valid {
		return model.Offer{}, ErrOfferNotFound
	}
	return nullOffer.Offer, nil
}

// CreateOffer validates and inserts a new offer, inactive unless input.Active is set
func (s *Service) CreateOffer(ctx context.Context, input CreateOfferInput) (model.Offer, error) {
	input.Code = util.NormalizeCode(input.Code)
	if err := validateOffer(s.validate, input.OfferInput); err != nil {
		return model.Offer{}, err
	}

	offer := offerFromInput(input.OfferInput)
	offer.Status = model.OfferStatusInactive
	if input.Active {
		offer.Status = model.OfferStatusActive
	}

	var id int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repo.InsertOffer(ctx, offer)
		return err
	})
	if errors.Is(err, repository.ErrDuplicateCode) {
		return model.Offer{}, invalidOffer("code %s already exists", offer.Code)
	}
	if err != nil {
		return model.Offer{}, err
	}

	otellib.Extract(ctx).Info("offer created", zap.Int64("offer.id", id), zap.String("offer.code", offer.Code))
	return s.mustGetOffer(ctx, id)
}

// UpdateOffer replaces the definition of an offer under its row lock.
// The code can not be changed and the global quota can not drop below the used count.
func (s *Service) UpdateOffer(ctx context.Context, id int64, input OfferInput) (model.Offer, error) {
	input.Code = util.NormalizeCode(input.Code)
	if err := validateOffer(s.validate, input); err != nil {
		return model.Offer{}, err
	}

	var updated model.Offer
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullOffer, err := s.repo.GetOfferForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !nullOffer.Valid {
			return ErrOfferNotFound
		}
		current := nullOffer.Offer

		if current.Code != input.Code {
			return invalidOffer("code can not be changed from %s to %s", current.Code, input.Code)
		}
		if input.GlobalQuota.Valid && input.GlobalQuota.Int64 < current.GlobalUsedCount {
			return invalidOffer("global quota %d is less than used count %d",
				input.GlobalQuota.Int64, current.GlobalUsedCount)
		}

		updated = offerFromInput(input)
		updated.ID = current.ID
		updated.CodeHash = current.CodeHash
		updated.Status = current.Status
		updated.GlobalUsedCount = current.GlobalUsedCount
		updated.CreatedAt = current.CreatedAt

		return s.repo.UpdateOffer(ctx, updated)
	})
	if err != nil {
		return model.Offer{}, err
	}

	if err := s.catalog.Invalidate(ctx, updated); err != nil {
		otellib.WrapError(ctx, err)
		return model.Offer{}, err
	}
	return s.mustGetOffer(ctx, id)
}

func (s *Service) setStatus(ctx context.Context, id int64, status model.OfferStatus) error {
	var offer model.Offer
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullOffer, err := s.repo.GetOfferForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !nullOffer.Valid {
			return ErrOfferNotFound
		}
		offer = nullOffer.Offer

		if offer.Status == status {
			return nil
		}
		return s.repo.UpdateOfferStatus(ctx, id, status)
	})
	if err != nil {
		return err
	}

	otellib.Extract(ctx).Info("offer status changed",
		zap.Int64("offer.id", id), zap.Int("offer.status", int(status)))

	if err := s.catalog.Invalidate(ctx, offer); err != nil {
		otellib.WrapError(ctx, err)
		return err
	}
	return nil
}

// ActivateOffer ...
func (s *Service) ActivateOffer(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.OfferStatusActive)
}

// DeactivateOffer is a logical delete, usage records are kept
func (s *Service) DeactivateOffer(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.OfferStatusInactive)
}

// GetOffer reads the offer with its current used count, bypassing the catalog caches
func (s *Service) GetOffer(ctx context.Context, id int64) (model.NullOffer, error) {
	return s.repo.GetOffer(s.provider.Readonly(ctx), id)
}
