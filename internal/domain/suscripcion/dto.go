// internal/domain/suscripcion/dto.go
package suscripcion

import "time"

type SubscribeToPlanRequest struct {
	BrandID   string     `json:"brandId" binding:"required"`
	PlanID    string     `json:"planId" binding:"required"`
	OfferID   string     `json:"offerId"`
	StartDate *time.Time `json:"start_date" time_format:"2006-01-02T15:04:05Z07:00"`
	TipoPago  TipoPago   `json:"tipo_pago" binding:"required,oneof=transferencia billetera_digital pago_link"`
	Provider  string     `json:"provider" binding:"required"`
	Status    Status     `json:"status" binding:"required,oneof=active inactive expired canceled"`
}

// UpdateSuscripcionRequest deliberately has no brandId/planId/offerId fields:
// references are immutable after creation.
type UpdateSuscripcionRequest struct {
	StartDate    *time.Time `json:"start_date"`
	RenovateDate *time.Time `json:"renovate_date"`
	TipoPago     *TipoPago  `json:"tipo_pago" binding:"omitempty,oneof=transferencia billetera_digital pago_link"`
	Provider     *string    `json:"provider"`
	Status       *Status    `json:"status" binding:"omitempty,oneof=active inactive expired canceled"`
}

// ListFilters narrows a subscription listing. At most one of PlanID/BrandID
// may be supplied.
type ListFilters struct {
	PlanID  string `form:"planId"`
	BrandID string `form:"brandId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
