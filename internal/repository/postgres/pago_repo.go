// internal/repository/postgres/pago_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/pago"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type PagoRepository struct {
	db *pgxpool.Pool
}

func NewPagoRepository(db *pgxpool.Pool) *PagoRepository {
	return &PagoRepository{db: db}
}

const pagoColumns = `id, brand_id, suscription_id, tipo_pago, transferencia, billetera_digital, pago_link, voucher_pago, notas, status, fecha_pago, created_at, updated_at`

func scanPago(row pgx.Row) (*pago.Pago, error) {
	var p pago.Pago

	err := row.Scan(
		&p.ID, &p.BrandID, &p.SuscriptionID, &p.TipoPago,
		&p.Transferencia, &p.BilleteraDigital, &p.PagoLink,
		&p.VoucherPago, pq.Array(&p.Notas), &p.Status, &p.FechaPago,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan pago: %w", err)
	}

	if p.Notas == nil {
		p.Notas = []string{}
	}
	return &p, nil
}

const insertPagoQuery = `
	INSERT INTO pagos (id, brand_id, suscription_id, tipo_pago, transferencia, billetera_digital, pago_link, voucher_pago, notas, status, fecha_pago)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at, updated_at
`

// Create inserts a standalone payment record.
func (r *PagoRepository) Create(ctx context.Context, p *pago.Pago) error {
	p.ID = newID()
	err := r.db.QueryRow(
		ctx, insertPagoQuery,
		p.ID, p.BrandID, p.SuscriptionID, p.TipoPago,
		p.Transferencia, p.BilleteraDigital, p.PagoLink,
		p.VoucherPago, pq.Array(p.Notas), p.Status, p.FechaPago,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pago: %w", err)
	}
	return nil
}

// CreateTx inserts a payment inside the caller's transaction, used by the
// subscribe flow.
func (r *PagoRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *pago.Pago) error {
	p.ID = newID()
	err := tx.QueryRow(
		ctx, insertPagoQuery,
		p.ID, p.BrandID, p.SuscriptionID, p.TipoPago,
		p.Transferencia, p.BilleteraDigital, p.PagoLink,
		p.VoucherPago, pq.Array(p.Notas), p.Status, p.FechaPago,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pago: %w", err)
	}
	return nil
}

// FindByID retrieves a payment by id.
func (r *PagoRepository) FindByID(ctx context.Context, id string) (*pago.Pago, error) {
	if !wellFormedID(id) {
		return nil, xerrors.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM pagos WHERE id = $1`, pagoColumns)
	return scanPago(r.db.QueryRow(ctx, query, id))
}

// List retrieves all payments, newest first.
func (r *PagoRepository) List(ctx context.Context) ([]pago.Pago, error) {
	query := fmt.Sprintf(`SELECT %s FROM pagos ORDER BY created_at DESC`, pagoColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pagos: %w", err)
	}
	defer rows.Close()

	pagos := []pago.Pago{}
	for rows.Next() {
		p, err := scanPago(rows)
		if err != nil {
			return nil, err
		}
		pagos = append(pagos, *p)
	}

	return pagos, rows.Err()
}

// Update replaces the mutable fields of a payment.
func (r *PagoRepository) Update(ctx context.Context, id string, p *pago.Pago) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	query := `
		UPDATE pagos
		SET transferencia = $1, billetera_digital = $2, pago_link = $3,
		    voucher_pago = $4, notas = $5, status = $6, fecha_pago = $7,
		    updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.Exec(
		ctx, query,
		p.Transferencia, p.BilleteraDigital, p.PagoLink,
		p.VoucherPago, pq.Array(p.Notas), p.Status, p.FechaPago,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update pago: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes a payment by id.
func (r *PagoRepository) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return xerrors.ErrNotFound
	}

	result, err := r.db.Exec(ctx, `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pago: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// DeleteAll truncates the payment collection.
func (r *PagoRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM pagos`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pagos: %w", err)
	}
	return result.RowsAffected(), nil
}
