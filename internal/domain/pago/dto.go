// internal/domain/pago/dto.go
package pago

import (
	"fmt"
	"time"

	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"
)

type RegisterPagoRequest struct {
	BrandID       string               `json:"brandId" binding:"required"`
	SuscriptionID string               `json:"suscriptionId" binding:"required"`
	TipoPago      suscripcion.TipoPago `json:"tipo_pago" binding:"required,oneof=transferencia billetera_digital pago_link"`

	Transferencia    string `json:"transferencia" binding:"omitempty,oneof=bcp interbank"`
	BilleteraDigital string `json:"billetera_digital" binding:"omitempty,oneof=yape plin"`
	PagoLink         string `json:"pago_link"`

	VoucherPago string     `json:"voucher_pago"`
	Notas       []string   `json:"notas"`
	Status      Status     `json:"status" binding:"required,oneof=completado cancelado pendiente"`
	FechaPago   *time.Time `json:"fecha_pago"`
}

// ValidateChannel enforces the cross-field rule tying the kind-specific
// channel field to tipo_pago: the matching field must be set, the others
// must not.
func (r *RegisterPagoRequest) ValidateChannel() error {
	switch r.TipoPago {
	case suscripcion.TipoTransferencia:
		if r.Transferencia == "" {
			return fmt.Errorf("%w: transferencia is required when tipo_pago is 'transferencia'", xerrors.ErrBadRequest)
		}
		if r.BilleteraDigital != "" || r.PagoLink != "" {
			return fmt.Errorf("%w: only the transferencia channel may be set for tipo_pago 'transferencia'", xerrors.ErrBadRequest)
		}
	case suscripcion.TipoBilleteraDigital:
		if r.BilleteraDigital == "" {
			return fmt.Errorf("%w: billetera_digital is required when tipo_pago is 'billetera_digital'", xerrors.ErrBadRequest)
		}
		if r.Transferencia != "" || r.PagoLink != "" {
			return fmt.Errorf("%w: only the billetera_digital channel may be set for tipo_pago 'billetera_digital'", xerrors.ErrBadRequest)
		}
	case suscripcion.TipoPagoLink:
		if r.PagoLink == "" {
			return fmt.Errorf("%w: pago_link is required when tipo_pago is 'pago_link'", xerrors.ErrBadRequest)
		}
		if r.Transferencia != "" || r.BilleteraDigital != "" {
			return fmt.Errorf("%w: only the pago_link channel may be set for tipo_pago 'pago_link'", xerrors.ErrBadRequest)
		}
	default:
		return fmt.Errorf("%w: tipo_pago must be 'transferencia', 'billetera_digital' or 'pago_link'", xerrors.ErrBadRequest)
	}
	return nil
}

type UpdatePagoRequest struct {
	Transferencia    *string    `json:"transferencia" binding:"omitempty,oneof=bcp interbank"`
	BilleteraDigital *string    `json:"billetera_digital" binding:"omitempty,oneof=yape plin"`
	PagoLink         *string    `json:"pago_link"`
	VoucherPago      *string    `json:"voucher_pago"`
	Notas            *[]string  `json:"notas"`
	Status           *Status    `json:"status" binding:"omitempty,oneof=completado cancelado pendiente"`
	FechaPago        *time.Time `json:"fecha_pago"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type DeleteVoucherResult struct {
	DeleteVoucher bool   `json:"deleteVoucher"`
	VoucherURL    string `json:"voucherUrl"`
}
