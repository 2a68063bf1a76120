// internal/service/suscripciones/service.go
package suscripciones

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/domain/plan"
	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"suscripciones-service/internal/domain/offer"
)

// Collaborators consumed by the subscribe flow. The postgres repositories
// satisfy these; tests substitute fakes.
type PlanStore interface {
	FindByID(ctx context.Context, id string) (*plan.Plan, error)
}

type OfferStore interface {
	FindByID(ctx context.Context, id string) (*offer.Offer, error)
}

type SuscripcionStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, s *suscripcion.Suscripcion) error
	FindByID(ctx context.Context, id string) (*suscripcion.Suscripcion, error)
	List(ctx context.Context, filters *suscripcion.ListFilters) ([]suscripcion.Suscripcion, error)
	Update(ctx context.Context, id string, s *suscripcion.Suscripcion) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, filters *suscripcion.ListFilters) (int64, error)
}

type PagoStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, p *pago.Pago) error
}

type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type SuscripcionService struct {
	suscripcionRepo SuscripcionStore
	planRepo        PlanStore
	offerRepo       OfferStore
	pagoRepo        PagoStore
	db              TxStarter
	logger          *zap.Logger
}

func NewSuscripcionService(
	suscripcionRepo SuscripcionStore,
	planRepo PlanStore,
	offerRepo OfferStore,
	pagoRepo PagoStore,
	db TxStarter,
	logger *zap.Logger,
) *SuscripcionService {
	return &SuscripcionService{
		suscripcionRepo: suscripcionRepo,
		planRepo:        planRepo,
		offerRepo:       offerRepo,
		pagoRepo:        pagoRepo,
		db:              db,
		logger:          logger,
	}
}

// SubscribeToPlan creates a subscription and its companion pending payment.
//
// The renewal date is always recomputed server-side from the plan's cadence,
// then extended by the offer's bonus time when one is referenced. A missing
// plan or offer aborts before any write. The subscription and payment inserts
// share one transaction, so an orphan subscription without its payment can
// never be persisted.
func (s *SuscripcionService) SubscribeToPlan(ctx context.Context, req *suscripcion.SubscribeToPlanRequest) (*suscripcion.Suscripcion, error) {
	p, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", req.PlanID, err)
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	renovateDate := ComputeRenewalDate(startDate, p.Duration)

	var offerID sql.NullString
	if req.OfferID != "" {
		o, err := s.offerRepo.FindByID(ctx, req.OfferID)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", req.OfferID, err)
		}
		offerID = sql.NullString{String: o.ID, Valid: true}

		// A discount offer changes price, not duration; only the
		// extra-duration side extends the renewal date.
		if extra := o.ExtraDurationPlan; extra != nil && extra.ExtraDuration > 0 {
			renovateDate = ApplyExtraDuration(renovateDate, extra.ExtraDuration, extra.DurationType)
		}
	}

	sub := &suscripcion.Suscripcion{
		BrandID:      req.BrandID,
		PlanID:       p.ID,
		OfferID:      offerID,
		StartDate:    startDate,
		RenovateDate: renovateDate,
		TipoPago:     req.TipoPago,
		Provider:     req.Provider,
		Status:       req.Status,
	}

	derivedPago := derivePago(req, startDate)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.suscripcionRepo.CreateTx(ctx, tx, sub); err != nil {
		return nil, err
	}

	derivedPago.SuscriptionID = sub.ID
	if err := s.pagoRepo.CreateTx(ctx, tx, derivedPago); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("suscripcion created",
		zap.String("suscripcion_id", sub.ID),
		zap.String("brand_id", sub.BrandID),
		zap.String("plan_id", sub.PlanID),
		zap.String("offer_id", offerID.String),
		zap.Time("renovate_date", sub.RenovateDate),
		zap.String("pago_id", derivedPago.ID),
	)

	return sub, nil
}

// derivePago builds the automatic pending payment that accompanies every new
// subscription. Exactly one channel field is populated from the request's
// provider label, matching tipo_pago.
func derivePago(req *suscripcion.SubscribeToPlanRequest, startDate time.Time) *pago.Pago {
	p := &pago.Pago{
		BrandID:   req.BrandID,
		TipoPago:  req.TipoPago,
		Status:    pago.StatusPendiente,
		FechaPago: startDate,
		Notas:     []string{},
	}

	provider := sql.NullString{String: req.Provider, Valid: true}
	switch req.TipoPago {
	case suscripcion.TipoTransferencia:
		p.Transferencia = provider
	case suscripcion.TipoBilleteraDigital:
		p.BilleteraDigital = provider
	case suscripcion.TipoPagoLink:
		p.PagoLink = provider
	}

	return p
}

// GetSuscripcion retrieves a subscription by id.
func (s *SuscripcionService) GetSuscripcion(ctx context.Context, id string) (*suscripcion.Suscripcion, error) {
	return s.suscripcionRepo.FindByID(ctx, id)
}

// ListSuscripciones lists subscriptions, optionally filtered by plan or
// brand. Supplying both filters is a bad request.
func (s *SuscripcionService) ListSuscripciones(ctx context.Context, filters *suscripcion.ListFilters) ([]suscripcion.Suscripcion, error) {
	if filters != nil && filters.PlanID != "" && filters.BrandID != "" {
		return nil, fmt.Errorf("%w: use only one search criterion: planId or brandId", xerrors.ErrBadRequest)
	}

	subs, err := s.suscripcionRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: no suscripciones found", xerrors.ErrNotFound)
	}
	return subs, nil
}

// UpdateSuscripcion patches the mutable fields of a subscription. Brand and
// plan references are immutable and not part of the request type.
func (s *SuscripcionService) UpdateSuscripcion(ctx context.Context, id string, req *suscripcion.UpdateSuscripcionRequest) (*suscripcion.Suscripcion, error) {
	sub, err := s.suscripcionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		sub.StartDate = *req.StartDate
	}
	if req.RenovateDate != nil {
		sub.RenovateDate = *req.RenovateDate
	}
	if req.TipoPago != nil {
		sub.TipoPago = *req.TipoPago
	}
	if req.Provider != nil {
		sub.Provider = *req.Provider
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}

	if err := s.suscripcionRepo.Update(ctx, id, sub); err != nil {
		return nil, err
	}

	s.logger.Info("suscripcion updated", zap.String("suscripcion_id", id))
	return s.suscripcionRepo.FindByID(ctx, id)
}

// RemoveSuscripcion deletes one subscription.
func (s *SuscripcionService) RemoveSuscripcion(ctx context.Context, id string) error {
	if err := s.suscripcionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("suscripcion deleted", zap.String("suscripcion_id", id))
	return nil
}

// RemoveAllSuscripciones deletes subscriptions matching the optional
// plan/brand filter.
func (s *SuscripcionService) RemoveAllSuscripciones(ctx context.Context, filters *suscripcion.ListFilters) (*suscripcion.DeleteResult, error) {
	deleted, err := s.suscripcionRepo.DeleteAll(ctx, filters)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: no suscripciones to delete", xerrors.ErrNotFound)
	}

	s.logger.Info("suscripciones deleted", zap.Int64("count", deleted))
	return &suscripcion.DeleteResult{DeletedCount: deleted}, nil
}
