// internal/service/ofertas/service.go
package ofertas

import (
	"context"
	"database/sql"
	"fmt"

	"suscripciones-service/internal/domain/offer"
	xerrors "suscripciones-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type OfferStore interface {
	Create(ctx context.Context, o *offer.Offer) error
	FindByID(ctx context.Context, id string) (*offer.Offer, error)
	List(ctx context.Context) ([]offer.Offer, error)
	Update(ctx context.Context, id string, o *offer.Offer) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type OfferService struct {
	offerRepo OfferStore
	logger    *zap.Logger
}

func NewOfferService(offerRepo OfferStore, logger *zap.Logger) *OfferService {
	return &OfferService{offerRepo: offerRepo, logger: logger}
}

// CreateOffer validates the discount XOR extra-duration choice in strict
// mode and persists the offer. The repository re-checks the same invariant,
// so it holds even for callers that skip this service.
func (s *OfferService) CreateOffer(ctx context.Context, req *offer.CreateOfferRequest) (*offer.Offer, error) {
	if err := offer.ValidatePayload(req.Discount, req.ExtraDurationPlan, offer.ChoiceStrict); err != nil {
		return nil, err
	}

	o := &offer.Offer{
		OfferName:         req.OfferName,
		Discount:          req.Discount,
		ExtraDurationPlan: req.ExtraDurationPlan,
		Status:            req.Status,
	}
	if req.Description != "" {
		o.Description = sql.NullString{String: req.Description, Valid: true}
	}

	if err := s.offerRepo.Create(ctx, o); err != nil {
		s.logger.Error("failed to create offer", zap.Error(err))
		return nil, err
	}

	s.logger.Info("offer created",
		zap.String("offer_id", o.ID),
		zap.String("offer_name", o.OfferName),
		zap.Bool("has_discount", o.Discount != nil),
		zap.Bool("has_extra_duration", o.ExtraDurationPlan != nil),
	)
	return o, nil
}

// GetOffer retrieves an offer by id.
func (s *OfferService) GetOffer(ctx context.Context, id string) (*offer.Offer, error) {
	return s.offerRepo.FindByID(ctx, id)
}

// ListOffers lists every offer.
func (s *OfferService) ListOffers(ctx context.Context) ([]offer.Offer, error) {
	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("%w: no offers found", xerrors.ErrNotFound)
	}
	return offers, nil
}

// UpdateOffer patches an offer. The choice invariant runs in lenient mode: a
// partial update may leave both sides untouched, but can never end up with
// both populated.
func (s *OfferService) UpdateOffer(ctx context.Context, id string, req *offer.UpdateOfferRequest) (*offer.Offer, error) {
	if err := offer.ValidatePayload(req.Discount, req.ExtraDurationPlan, offer.ChoiceLenient); err != nil {
		return nil, err
	}

	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OfferName != nil {
		o.OfferName = *req.OfferName
	}
	if req.Description != nil {
		o.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	// Switching sides replaces the previous choice entirely.
	if req.Discount != nil {
		o.Discount = req.Discount
		o.ExtraDurationPlan = nil
	}
	if req.ExtraDurationPlan != nil {
		o.ExtraDurationPlan = req.ExtraDurationPlan
		o.Discount = nil
	}

	if err := s.offerRepo.Update(ctx, id, o); err != nil {
		return nil, err
	}

	s.logger.Info("offer updated", zap.String("offer_id", id))
	return s.offerRepo.FindByID(ctx, id)
}

// RemoveOffer deletes one offer.
func (s *OfferService) RemoveOffer(ctx context.Context, id string) error {
	if err := s.offerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("offer deleted", zap.String("offer_id", id))
	return nil
}

// RemoveAllOffers deletes every offer.
func (s *OfferService) RemoveAllOffers(ctx context.Context) (*offer.DeleteResult, error) {
	deleted, err := s.offerRepo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: no offers to delete", xerrors.ErrNotFound)
	}

	s.logger.Info("all offers deleted", zap.Int64("count", deleted))
	return &offer.DeleteResult{DeletedCount: deleted}, nil
}
