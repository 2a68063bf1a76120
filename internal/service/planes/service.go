// internal/service/planes/service.go
package planes

import (
	"context"
	"database/sql"
	"fmt"

	"suscripciones-service/internal/domain/plan"
	xerrors "suscripciones-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type PlanStore interface {
	Create(ctx context.Context, p *plan.Plan) error
	FindByID(ctx context.Context, id string) (*plan.Plan, error)
	List(ctx context.Context) ([]plan.Plan, error)
	Update(ctx context.Context, id string, p *plan.Plan) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type PlanService struct {
	planRepo PlanStore
	logger   *zap.Logger
}

func NewPlanService(planRepo PlanStore, logger *zap.Logger) *PlanService {
	return &PlanService{planRepo: planRepo, logger: logger}
}

// CreatePlan persists a new plan. When the unlimited_orders feature is set
// the order limit is coerced to the unbounded sentinel at write time, never
// at subscription time.
func (s *PlanService) CreatePlan(ctx context.Context, req *plan.CreatePlanRequest) (*plan.Plan, error) {
	status := req.Status
	if status == "" {
		status = plan.StatusActive
	}

	p := &plan.Plan{
		Name:         req.Name,
		Price:        req.Price,
		CurrencyType: req.CurrencyType,
		Duration:     req.Duration,
		OrderLimit:   req.OrderLimit,
		Features:     req.Features,
		Status:       status,
	}
	if req.Description != "" {
		p.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if p.Features.UnlimitedOrders {
		p.OrderLimit = plan.OrderLimitUnlimited
	}

	if err := s.planRepo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create plan", zap.Error(err))
		return nil, err
	}

	s.logger.Info("plan created",
		zap.String("plan_id", p.ID),
		zap.String("name", p.Name),
		zap.String("duration", string(p.Duration)),
	)
	return p, nil
}

// GetPlan retrieves a plan by id.
func (s *PlanService) GetPlan(ctx context.Context, id string) (*plan.Plan, error) {
	return s.planRepo.FindByID(ctx, id)
}

// ListPlans lists every plan.
func (s *PlanService) ListPlans(ctx context.Context) ([]plan.Plan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("%w: no plans found", xerrors.ErrNotFound)
	}
	return plans, nil
}

// UpdatePlan patches a plan. The unlimited_orders coercion also applies on
// update, so turning the feature on always sets the sentinel.
func (s *PlanService) UpdatePlan(ctx context.Context, id string, req *plan.UpdatePlanRequest) (*plan.Plan, error) {
	p, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CurrencyType != nil {
		p.CurrencyType = *req.CurrencyType
	}
	if req.Duration != nil {
		p.Duration = *req.Duration
	}
	if req.OrderLimit != nil {
		p.OrderLimit = *req.OrderLimit
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Description != nil {
		p.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if p.Features.UnlimitedOrders {
		p.OrderLimit = plan.OrderLimitUnlimited
	}

	if err := s.planRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("plan updated", zap.String("plan_id", id))
	return s.planRepo.FindByID(ctx, id)
}

// RemovePlan deletes one plan.
func (s *PlanService) RemovePlan(ctx context.Context, id string) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("plan deleted", zap.String("plan_id", id))
	return nil
}

// RemoveManyPlans deletes the given plan ids.
func (s *PlanService) RemoveManyPlans(ctx context.Context, ids []string) (*plan.DeleteResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one plan id is required", xerrors.ErrBadRequest)
	}

	deleted, err := s.planRepo.DeleteMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: no plans to delete", xerrors.ErrNotFound)
	}

	s.logger.Info("plans deleted", zap.Int64("count", deleted))
	return &plan.DeleteResult{DeletedCount: deleted}, nil
}

// RemoveAllPlans deletes every plan.
func (s *PlanService) RemoveAllPlans(ctx context.Context) (*plan.DeleteResult, error) {
	deleted, err := s.planRepo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: no plans to delete", xerrors.ErrNotFound)
	}

	s.logger.Info("all plans deleted", zap.Int64("count", deleted))
	return &plan.DeleteResult{DeletedCount: deleted}, nil
}
