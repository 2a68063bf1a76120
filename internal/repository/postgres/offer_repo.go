// internal/repository/postgres/offer_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/offer"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `id, offer_name, description, discount, extra_duration_plan, status, created_at, updated_at`

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var o offer.Offer
	var discountJSON, extraJSON []byte

	err := row.Scan(
		&o.ID, &o.OfferName, &o.Description, &discountJSON, &extraJSON,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan offer: %w", err)
	}

	if len(discountJSON) > 0 {
		o.Discount = &offer.Discount{}
		if err := json.Unmarshal(discountJSON, o.Discount); err != nil {
			return nil, fmt.Errorf("failed to unmarshal discount: %w", err)
		}
	}
	if len(extraJSON) > 0 {
		o.ExtraDurationPlan = &offer.ExtraDurationPlan{}
		if err := json.Unmarshal(extraJSON, o.ExtraDurationPlan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extra_duration_plan: %w", err)
		}
	}

	return &o, nil
}

func marshalChoice(o *offer.Offer) (discountJSON, extraJSON []byte, err error) {
	if o.Discount != nil {
		discountJSON, err = json.Marshal(o.Discount)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal discount: %w", err)
		}
	}
	if o.ExtraDurationPlan != nil {
		extraJSON, err = json.Marshal(o.ExtraDurationPlan)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal extra_duration_plan: %w", err)
		}
	}
	return discountJSON, extraJSON, nil
}

// Create inserts a new offer. The choice invariant is re-checked here so it
// holds even when the service layer is bypassed.
func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	if err := offer.ValidatePayload(o.Discount, o.ExtraDurationPlan, offer.ChoiceStrict); err != nil {
		return err
	}

	discountJSON, extraJSON, err := marshalChoice(o)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ofertas (id, offer_name, description, discount, extra_duration_plan, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	o.ID = newID()
	err = r.db.QueryRow(
		ctx, query,
		o.ID, o.OfferName, o.Description, discountJSON, extraJSON, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

// FindByID retrieves an offer by id.
func (r *OfferRepository) FindByID(ctx context.Context, id string) (*offer.Offer, error) {
	if !wellFormedID(id) {
		return nil, xerrors.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM ofertas WHERE id = $1`, offerColumns)
	return scanOffer(r.db.QueryRow(ctx, query, id))
}

// List retrieves all offers, newest first.
func (r *OfferRepository) List(ctx context.Context) ([]offer.Offer, error) {
	query := fmt.Sprintf(`SELECT %s FROM ofertas ORDER BY created_at DESC`, offerColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	offers := []offer.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}

	return offers, rows.Err()
}

// Update replaces the offer's fields. The resulting row must still satisfy
// the choice invariant, so the merged entity is validated in lenient mode
// before writing.
func (r *OfferRepository) Update(ctx context.Context, id string, o *offer.Offer) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}
	if err := offer.ValidatePayload(o.Discount, o.ExtraDurationPlan, offer.ChoiceLenient); err != nil {
		return err
	}

	discountJSON, extraJSON, err := marshalChoice(o)
	if err != nil {
		return err
	}

	query := `
		UPDATE ofertas
		SET offer_name = $1, description = $2, discount = $3,
		    extra_duration_plan = $4, status = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.Exec(
		ctx, query,
		o.OfferName, o.Description, discountJSON, extraJSON, o.Status,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes an offer by id.
func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM ofertas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// DeleteAll truncates the offer collection.
func (r *OfferRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM ofertas`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete offers: %w", err)
	}
	return result.RowsAffected(), nil
}
