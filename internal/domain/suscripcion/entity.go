// internal/domain/suscripcion/entity.go
package suscripcion

import (
	"database/sql"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
	StatusCanceled Status = "canceled"
)

type TipoPago string

const (
	TipoTransferencia    TipoPago = "transferencia"
	TipoBilleteraDigital TipoPago = "billetera_digital"
	TipoPagoLink         TipoPago = "pago_link"
)

// Suscripcion is a brand's enrollment in a plan for one billing period.
// BrandID and PlanID are immutable after creation; RenovateDate is always
// computed by the backend, never taken from the client.
type Suscripcion struct {
	ID           string         `json:"id" db:"id"`
	BrandID      string         `json:"brandId" db:"brand_id"`
	PlanID       string         `json:"planId" db:"plan_id"`
	OfferID      sql.NullString `json:"offerId,omitempty" db:"offer_id"`
	StartDate    time.Time      `json:"start_date" db:"start_date"`
	RenovateDate time.Time      `json:"renovate_date" db:"renovate_date"`
	TipoPago     TipoPago       `json:"tipo_pago" db:"tipo_pago"`
	Provider     string         `json:"provider" db:"provider"`
	Status       Status         `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
