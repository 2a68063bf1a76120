// internal/repository/postgres/suscripcion_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SuscripcionRepository struct {
	db *pgxpool.Pool
}

func NewSuscripcionRepository(db *pgxpool.Pool) *SuscripcionRepository {
	return &SuscripcionRepository{db: db}
}

const suscripcionColumns = `id, brand_id, plan_id, offer_id, start_date, renovate_date, tipo_pago, provider, status, created_at, updated_at`

func scanSuscripcion(row pgx.Row) (*suscripcion.Suscripcion, error) {
	var s suscripcion.Suscripcion

	err := row.Scan(
		&s.ID, &s.BrandID, &s.PlanID, &s.OfferID, &s.StartDate, &s.RenovateDate,
		&s.TipoPago, &s.Provider, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan suscripcion: %w", err)
	}

	return &s, nil
}

// CreateTx inserts a subscription inside the caller's transaction. Used by
// the subscribe flow so the derived payment lands atomically with it.
func (r *SuscripcionRepository) CreateTx(ctx context.Context, tx pgx.Tx, s *suscripcion.Suscripcion) error {
	query := `
		INSERT INTO suscripciones (id, brand_id, plan_id, offer_id, start_date, renovate_date, tipo_pago, provider, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	s.ID = newID()
	err := tx.QueryRow(
		ctx, query,
		s.ID, s.BrandID, s.PlanID, s.OfferID, s.StartDate, s.RenovateDate,
		s.TipoPago, s.Provider, s.Status,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create suscripcion: %w", err)
	}

	return nil
}

// FindByID retrieves a subscription by id.
func (r *SuscripcionRepository) FindByID(ctx context.Context, id string) (*suscripcion.Suscripcion, error) {
	if !wellFormedID(id) {
		return nil, xerrors.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM suscripciones WHERE id = $1`, suscripcionColumns)
	return scanSuscripcion(r.db.QueryRow(ctx, query, id))
}

// List retrieves subscriptions, optionally narrowed by plan or brand.
// Filter exclusivity is the service's concern; the repository applies
// whatever it is given.
func (r *SuscripcionRepository) List(ctx context.Context, filters *suscripcion.ListFilters) ([]suscripcion.Suscripcion, error) {
	query := fmt.Sprintf(`SELECT %s FROM suscripciones`, suscripcionColumns)
	args := []interface{}{}

	switch {
	case filters != nil && filters.PlanID != "":
		if !wellFormedID(filters.PlanID) {
			return nil, xerrors.ErrNotFound
		}
		query += ` WHERE plan_id = $1`
		args = append(args, filters.PlanID)
	case filters != nil && filters.BrandID != "":
		if !wellFormedID(filters.BrandID) {
			return nil, xerrors.ErrNotFound
		}
		query += ` WHERE brand_id = $1`
		args = append(args, filters.BrandID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list suscripciones: %w", err)
	}
	defer rows.Close()

	subs := []suscripcion.Suscripcion{}
	for rows.Next() {
		s, err := scanSuscripcion(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}

	return subs, rows.Err()
}

// Update replaces the mutable fields of a subscription. Brand and plan
// references are never touched.
func (r *SuscripcionRepository) Update(ctx context.Context, id string, s *suscripcion.Suscripcion) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	query := `
		UPDATE suscripciones
		SET start_date = $1, renovate_date = $2, tipo_pago = $3,
		    provider = $4, status = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(
		ctx, query,
		s.StartDate, s.RenovateDate, s.TipoPago, s.Provider, s.Status,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update suscripcion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes a subscription by id.
func (r *SuscripcionRepository) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM suscripciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete suscripcion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// DeleteAll removes subscriptions matching the optional plan/brand filter
// and reports the count.
func (r *SuscripcionRepository) DeleteAll(ctx context.Context, filters *suscripcion.ListFilters) (int64, error) {
	query := `DELETE FROM suscripciones`
	args := []interface{}{}

	switch {
	case filters != nil && filters.PlanID != "":
		if !wellFormedID(filters.PlanID) {
			return 0, xerrors.ErrNotFound
		}
		query += ` WHERE plan_id = $1`
		args = append(args, filters.PlanID)
	case filters != nil && filters.BrandID != "":
		if !wellFormedID(filters.BrandID) {
			return 0, xerrors.ErrNotFound
		}
		query += ` WHERE brand_id = $1`
		args = append(args, filters.BrandID)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete suscripciones: %w", err)
	}
	return result.RowsAffected(), nil
}
