// internal/repository/postgres/plan_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/plan"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, name, price, currency_type, duration, order_limit, features, status, description, created_at, updated_at`

func scanPlan(row pgx.Row) (*plan.Plan, error) {
	var p plan.Plan
	var featuresJSON []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.CurrencyType, &p.Duration, &p.OrderLimit,
		&featuresJSON, &p.Status, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}

	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &p.Features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	return &p, nil
}

// Create inserts a new plan and fills in its generated fields.
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	query := `
		INSERT INTO planes (id, name, price, currency_type, duration, order_limit, features, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	featuresJSON, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	p.ID = newID()
	err = r.db.QueryRow(
		ctx, query,
		p.ID, p.Name, p.Price, p.CurrencyType, p.Duration, p.OrderLimit,
		featuresJSON, p.Status, p.Description,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	return nil
}

// FindByID retrieves a plan by id.
func (r *PlanRepository) FindByID(ctx context.Context, id string) (*plan.Plan, error) {
	if !wellFormedID(id) {
		return nil, xerrors.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM planes WHERE id = $1`, planColumns)
	return scanPlan(r.db.QueryRow(ctx, query, id))
}

// List retrieves all plans, newest first.
func (r *PlanRepository) List(ctx context.Context) ([]plan.Plan, error) {
	query := fmt.Sprintf(`SELECT %s FROM planes ORDER BY created_at DESC`, planColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []plan.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}

	return plans, rows.Err()
}

// Update replaces the mutable fields of a plan.
func (r *PlanRepository) Update(ctx context.Context, id string, p *plan.Plan) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	query := `
		UPDATE planes
		SET name = $1, price = $2, currency_type = $3, duration = $4,
		    order_limit = $5, features = $6, status = $7, description = $8,
		    updated_at = $9
		WHERE id = $10
	`

	featuresJSON, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	result, err := r.db.Exec(
		ctx, query,
		p.Name, p.Price, p.CurrencyType, p.Duration,
		p.OrderLimit, featuresJSON, p.Status, p.Description,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes a plan by id.
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM planes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// DeleteMany removes the given plan ids and reports how many rows went away.
func (r *PlanRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM planes WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete plans: %w", err)
	}
	return result.RowsAffected(), nil
}

// DeleteAll truncates the plan collection.
func (r *PlanRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM planes`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete plans: %w", err)
	}
	return result.RowsAffected(), nil
}
