// internal/domain/pago/entity.go
package pago

import (
	"database/sql"
	"time"

	"suscripciones-service/internal/domain/suscripcion"
)

type Status string

const (
	StatusCompletado Status = "completado"
	StatusCancelado  Status = "cancelado"
	StatusPendiente  Status = "pendiente"
)

// Channel enums for the kind-specific provider columns.
const (
	BancoBCP       = "bcp"
	BancoInterbank = "interbank"
	WalletYape     = "yape"
	WalletPlin     = "plin"
)

// Pago is a manually-tracked payment record for a subscription period.
// Exactly one of Transferencia / BilleteraDigital / PagoLink is set,
// matching TipoPago.
type Pago struct {
	ID            string               `json:"id" db:"id"`
	BrandID       string               `json:"brandId" db:"brand_id"`
	SuscriptionID string               `json:"suscriptionId" db:"suscription_id"`
	TipoPago      suscripcion.TipoPago `json:"tipo_pago" db:"tipo_pago"`

	Transferencia    sql.NullString `json:"transferencia,omitempty" db:"transferencia"`
	BilleteraDigital sql.NullString `json:"billetera_digital,omitempty" db:"billetera_digital"`
	PagoLink         sql.NullString `json:"pago_link,omitempty" db:"pago_link"`

	VoucherPago sql.NullString `json:"voucher_pago,omitempty" db:"voucher_pago"`
	Notas       []string       `json:"notas" db:"notas"`
	Status      Status         `json:"status" db:"status"`
	FechaPago   time.Time      `json:"fecha_pago" db:"fecha_pago"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
