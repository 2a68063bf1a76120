// internal/service/pagos/service.go
package pagos

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"time"

	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"
	"suscripciones-service/internal/pkg/uploader"

	"go.uber.org/zap"
)

type PagoStore interface {
	Create(ctx context.Context, p *pago.Pago) error
	FindByID(ctx context.Context, id string) (*pago.Pago, error)
	List(ctx context.Context) ([]pago.Pago, error)
	Update(ctx context.Context, id string, p *pago.Pago) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type SuscripcionStore interface {
	FindByID(ctx context.Context, id string) (*suscripcion.Suscripcion, error)
}

type PagoService struct {
	pagoRepo PagoStore
	susRepo  SuscripcionStore
	uploader uploader.ImageUploader
	logger   *zap.Logger
}

func NewPagoService(pagoRepo PagoStore, susRepo SuscripcionStore, up uploader.ImageUploader, logger *zap.Logger) *PagoService {
	return &PagoService{pagoRepo: pagoRepo, susRepo: susRepo, uploader: up, logger: logger}
}

// RegisterPago records a manual payment for an existing subscription. The
// kind-specific channel field must match tipo_pago; the subscription must
// exist.
func (s *PagoService) RegisterPago(ctx context.Context, req *pago.RegisterPagoRequest) (*pago.Pago, error) {
	if err := req.ValidateChannel(); err != nil {
		return nil, err
	}

	if _, err := s.susRepo.FindByID(ctx, req.SuscriptionID); err != nil {
		return nil, err
	}

	fechaPago := time.Now().UTC()
	if req.FechaPago != nil {
		fechaPago = *req.FechaPago
	}

	p := &pago.Pago{
		BrandID:       req.BrandID,
		SuscriptionID: req.SuscriptionID,
		TipoPago:      req.TipoPago,
		Notas:         req.Notas,
		Status:        req.Status,
		FechaPago:     fechaPago,
	}
	if req.Transferencia != "" {
		p.Transferencia = sql.NullString{String: req.Transferencia, Valid: true}
	}
	if req.BilleteraDigital != "" {
		p.BilleteraDigital = sql.NullString{String: req.BilleteraDigital, Valid: true}
	}
	if req.PagoLink != "" {
		p.PagoLink = sql.NullString{String: req.PagoLink, Valid: true}
	}
	if req.VoucherPago != "" {
		p.VoucherPago = sql.NullString{String: req.VoucherPago, Valid: true}
	}

	if err := s.pagoRepo.Create(ctx, p); err != nil {
		s.logger.Error("failed to register payment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payment registered",
		zap.String("payment_id", p.ID),
		zap.String("suscription_id", p.SuscriptionID),
		zap.String("tipo_pago", string(p.TipoPago)),
		zap.String("status", string(p.Status)),
	)
	return p, nil
}

// GetPago retrieves one payment by id.
func (s *PagoService) GetPago(ctx context.Context, id string) (*pago.Pago, error) {
	return s.pagoRepo.FindByID(ctx, id)
}

// ListPagos lists every payment.
func (s *PagoService) ListPagos(ctx context.Context) ([]pago.Pago, error) {
	pagos, err := s.pagoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(pagos) == 0 {
		return nil, fmt.Errorf("%w: no payments found", xerrors.ErrNotFound)
	}
	return pagos, nil
}

// UpdatePago patches the mutable payment fields. brandId, suscriptionId and
// tipo_pago are fixed at registration time.
func (s *PagoService) UpdatePago(ctx context.Context, id string, req *pago.UpdatePagoRequest) (*pago.Pago, error) {
	p, err := s.pagoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Transferencia != nil {
		p.Transferencia = sql.NullString{String: *req.Transferencia, Valid: *req.Transferencia != ""}
	}
	if req.BilleteraDigital != nil {
		p.BilleteraDigital = sql.NullString{String: *req.BilleteraDigital, Valid: *req.BilleteraDigital != ""}
	}
	if req.PagoLink != nil {
		p.PagoLink = sql.NullString{String: *req.PagoLink, Valid: *req.PagoLink != ""}
	}
	if req.VoucherPago != nil {
		p.VoucherPago = sql.NullString{String: *req.VoucherPago, Valid: *req.VoucherPago != ""}
	}
	if req.Notas != nil {
		p.Notas = *req.Notas
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.FechaPago != nil {
		p.FechaPago = *req.FechaPago
	}

	if err := s.pagoRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("payment updated", zap.String("payment_id", id))
	return s.pagoRepo.FindByID(ctx, id)
}

// UploadVoucher stores the voucher image and attaches its URL to the payment.
// A previous voucher, if any, is replaced; the old image is removed from the
// image host on a best-effort basis.
func (s *PagoService) UploadVoucher(ctx context.Context, id string, file *multipart.FileHeader) (*pago.Pago, error) {
	p, err := s.pagoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, file)
	if err != nil {
		s.logger.Error("voucher upload failed", zap.String("payment_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", xerrors.ErrBadRequest, err.Error())
	}

	if p.VoucherPago.Valid {
		if delErr := s.uploader.Delete(ctx, p.VoucherPago.String); delErr != nil {
			s.logger.Warn("failed to remove previous voucher image",
				zap.String("payment_id", id), zap.Error(delErr))
		}
	}

	p.VoucherPago = sql.NullString{String: url, Valid: true}
	if err := s.pagoRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("voucher uploaded", zap.String("payment_id", id), zap.String("voucher_url", url))
	return s.pagoRepo.FindByID(ctx, id)
}

// DeleteVoucher detaches the voucher from the payment and removes the image.
func (s *PagoService) DeleteVoucher(ctx context.Context, id string) (*pago.DeleteVoucherResult, error) {
	p, err := s.pagoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.VoucherPago.Valid || p.VoucherPago.String == "" {
		return nil, fmt.Errorf("%w: payment %s has no voucher", xerrors.ErrNotFound, id)
	}

	url := p.VoucherPago.String
	if err := s.uploader.Delete(ctx, url); err != nil {
		s.logger.Warn("failed to remove voucher image", zap.String("payment_id", id), zap.Error(err))
	}

	p.VoucherPago = sql.NullString{}
	if err := s.pagoRepo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("voucher deleted", zap.String("payment_id", id))
	return &pago.DeleteVoucherResult{DeleteVoucher: true, VoucherURL: url}, nil
}

// RemovePago deletes one payment.
func (s *PagoService) RemovePago(ctx context.Context, id string) error {
	if err := s.pagoRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("payment deleted", zap.String("payment_id", id))
	return nil
}

// RemoveAllPagos deletes every payment.
func (s *PagoService) RemoveAllPagos(ctx context.Context) (*pago.DeleteResult, error) {
	deleted, err := s.pagoRepo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%w: no payments to delete", xerrors.ErrNotFound)
	}

	s.logger.Info("all payments deleted", zap.Int64("count", deleted))
	return &pago.DeleteResult{DeletedCount: deleted}, nil
}
