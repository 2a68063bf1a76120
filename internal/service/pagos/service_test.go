package pagos

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePagoStore struct {
	stored  map[string]*pago.Pago
	created []*pago.Pago
	deleted int64
}

func newFakePagoStore() *fakePagoStore {
	return &fakePagoStore{stored: map[string]*pago.Pago{}}
}

func (f *fakePagoStore) Create(_ context.Context, p *pago.Pago) error {
	p.ID = fmt.Sprintf("pag-%d", len(f.created)+1)
	f.created = append(f.created, p)
	f.stored[p.ID] = p
	return nil
}

func (f *fakePagoStore) FindByID(_ context.Context, id string) (*pago.Pago, error) {
	p, ok := f.stored[id]
	if !ok {
		return nil, fmt.Errorf("%w: pago", xerrors.ErrNotFound)
	}
	return p, nil
}

func (f *fakePagoStore) List(_ context.Context) ([]pago.Pago, error) {
	out := make([]pago.Pago, 0, len(f.stored))
	for _, p := range f.stored {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePagoStore) Update(_ context.Context, id string, p *pago.Pago) error {
	f.stored[id] = p
	return nil
}

func (f *fakePagoStore) Delete(_ context.Context, id string) error {
	delete(f.stored, id)
	return nil
}

func (f *fakePagoStore) DeleteAll(_ context.Context) (int64, error) {
	return f.deleted, nil
}

type fakeSusStore struct {
	existing map[string]bool
}

func (f *fakeSusStore) FindByID(_ context.Context, id string) (*suscripcion.Suscripcion, error) {
	if !f.existing[id] {
		return nil, fmt.Errorf("%w: suscripcion", xerrors.ErrNotFound)
	}
	return &suscripcion.Suscripcion{ID: id}, nil
}

type fakeUploader struct {
	uploaded []string
	deleted  []string
	url      string
	failNext bool
}

func (f *fakeUploader) Upload(_ context.Context, file *multipart.FileHeader) (string, error) {
	if f.failNext {
		return "", fmt.Errorf("upload rejected")
	}
	f.uploaded = append(f.uploaded, file.Filename)
	return f.url, nil
}

func (f *fakeUploader) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func newTestService(store *fakePagoStore, subs *fakeSusStore, up *fakeUploader) *PagoService {
	return NewPagoService(store, subs, up, zap.NewNop())
}

func registerReq() *pago.RegisterPagoRequest {
	return &pago.RegisterPagoRequest{
		BrandID:          "brand-1",
		SuscriptionID:    "sus-1",
		TipoPago:         suscripcion.TipoBilleteraDigital,
		BilleteraDigital: pago.WalletYape,
		Status:           pago.StatusPendiente,
	}
}

func TestRegisterPago(t *testing.T) {
	store := newFakePagoStore()
	svc := newTestService(store, &fakeSusStore{existing: map[string]bool{"sus-1": true}}, &fakeUploader{})

	p, err := svc.RegisterPago(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, "yape", p.BilleteraDigital.String)
	assert.False(t, p.Transferencia.Valid)
	assert.False(t, p.FechaPago.IsZero(), "fecha_pago defaults to now")
}

func TestRegisterPagoChannelMismatch(t *testing.T) {
	svc := newTestService(newFakePagoStore(), &fakeSusStore{existing: map[string]bool{"sus-1": true}}, &fakeUploader{})

	req := registerReq()
	req.Transferencia = pago.BancoBCP // wrong channel for billetera_digital

	_, err := svc.RegisterPago(context.Background(), req)
	assert.ErrorIs(t, err, xerrors.ErrBadRequest)
}

func TestRegisterPagoUnknownSubscription(t *testing.T) {
	store := newFakePagoStore()
	svc := newTestService(store, &fakeSusStore{}, &fakeUploader{})

	_, err := svc.RegisterPago(context.Background(), registerReq())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, store.created)
}

func TestRegisterPagoHonorsExplicitFechaPago(t *testing.T) {
	store := newFakePagoStore()
	svc := newTestService(store, &fakeSusStore{existing: map[string]bool{"sus-1": true}}, &fakeUploader{})

	when := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	req := registerReq()
	req.FechaPago = &when

	p, err := svc.RegisterPago(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, when, p.FechaPago)
}

func TestUploadVoucherReplacesPrevious(t *testing.T) {
	store := newFakePagoStore()
	store.stored["pag-1"] = &pago.Pago{
		ID:          "pag-1",
		VoucherPago: sql.NullString{String: "https://img.example/old.png", Valid: true},
	}
	up := &fakeUploader{url: "https://img.example/new.png"}
	svc := newTestService(store, &fakeSusStore{}, up)

	got, err := svc.UploadVoucher(context.Background(), "pag-1", &multipart.FileHeader{Filename: "voucher.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/new.png", got.VoucherPago.String)
	assert.Equal(t, []string{"https://img.example/old.png"}, up.deleted)
}

func TestUploadVoucherFailureKeepsPayment(t *testing.T) {
	store := newFakePagoStore()
	store.stored["pag-1"] = &pago.Pago{ID: "pag-1"}
	up := &fakeUploader{failNext: true}
	svc := newTestService(store, &fakeSusStore{}, up)

	_, err := svc.UploadVoucher(context.Background(), "pag-1", &multipart.FileHeader{Filename: "voucher.png"})
	assert.ErrorIs(t, err, xerrors.ErrBadRequest)
	assert.False(t, store.stored["pag-1"].VoucherPago.Valid)
}

func TestDeleteVoucher(t *testing.T) {
	store := newFakePagoStore()
	store.stored["pag-1"] = &pago.Pago{
		ID:          "pag-1",
		VoucherPago: sql.NullString{String: "https://img.example/v.png", Valid: true},
	}
	up := &fakeUploader{}
	svc := newTestService(store, &fakeSusStore{}, up)

	res, err := svc.DeleteVoucher(context.Background(), "pag-1")
	require.NoError(t, err)
	assert.True(t, res.DeleteVoucher)
	assert.Equal(t, "https://img.example/v.png", res.VoucherURL)
	assert.False(t, store.stored["pag-1"].VoucherPago.Valid)
	assert.Equal(t, []string{"https://img.example/v.png"}, up.deleted)
}

func TestDeleteVoucherWithoutVoucherIsNotFound(t *testing.T) {
	store := newFakePagoStore()
	store.stored["pag-1"] = &pago.Pago{ID: "pag-1"}
	svc := newTestService(store, &fakeSusStore{}, &fakeUploader{})

	_, err := svc.DeleteVoucher(context.Background(), "pag-1")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestListPagosEmptyIsNotFound(t *testing.T) {
	svc := newTestService(newFakePagoStore(), &fakeSusStore{}, &fakeUploader{})

	_, err := svc.ListPagos(context.Background())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestUpdatePagoPatchesFields(t *testing.T) {
	store := newFakePagoStore()
	store.stored["pag-1"] = &pago.Pago{ID: "pag-1", Status: pago.StatusPendiente}
	svc := newTestService(store, &fakeSusStore{}, &fakeUploader{})

	done := pago.StatusCompletado
	notas := []string{"paid in full"}
	got, err := svc.UpdatePago(context.Background(), "pag-1", &pago.UpdatePagoRequest{
		Status: &done,
		Notas:  &notas,
	})
	require.NoError(t, err)
	assert.Equal(t, pago.StatusCompletado, got.Status)
	assert.Equal(t, []string{"paid in full"}, got.Notas)
}
