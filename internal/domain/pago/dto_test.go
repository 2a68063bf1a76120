package pago

import (
	"testing"

	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateChannel(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterPagoRequest
		wantErr bool
	}{
		{
			"transferencia with bank",
			RegisterPagoRequest{TipoPago: suscripcion.TipoTransferencia, Transferencia: BancoBCP},
			false,
		},
		{
			"transferencia missing bank",
			RegisterPagoRequest{TipoPago: suscripcion.TipoTransferencia},
			true,
		},
		{
			"transferencia with stray wallet",
			RegisterPagoRequest{TipoPago: suscripcion.TipoTransferencia, Transferencia: BancoInterbank, BilleteraDigital: WalletYape},
			true,
		},
		{
			"wallet with yape",
			RegisterPagoRequest{TipoPago: suscripcion.TipoBilleteraDigital, BilleteraDigital: WalletPlin},
			false,
		},
		{
			"wallet missing provider",
			RegisterPagoRequest{TipoPago: suscripcion.TipoBilleteraDigital},
			true,
		},
		{
			"pago_link with url",
			RegisterPagoRequest{TipoPago: suscripcion.TipoPagoLink, PagoLink: "https://pay.example/x"},
			false,
		},
		{
			"pago_link with stray bank",
			RegisterPagoRequest{TipoPago: suscripcion.TipoPagoLink, PagoLink: "https://pay.example/x", Transferencia: BancoBCP},
			true,
		},
		{
			"unknown tipo_pago",
			RegisterPagoRequest{TipoPago: "efectivo"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateChannel()
			if tt.wantErr {
				assert.ErrorIs(t, err, xerrors.ErrBadRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
