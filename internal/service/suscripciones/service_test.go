package suscripciones

import (
	"context"
	"fmt"
	"testing"
	"time"

	"suscripciones-service/internal/domain/offer"
	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/domain/plan"
	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ----- fakes -----

type fakePlanStore struct {
	plans map[string]*plan.Plan
}

func (f *fakePlanStore) FindByID(_ context.Context, id string) (*plan.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, fmt.Errorf("%w: plan", xerrors.ErrNotFound)
	}
	return p, nil
}

type fakeOfferStore struct {
	offers map[string]*offer.Offer
}

func (f *fakeOfferStore) FindByID(_ context.Context, id string) (*offer.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, fmt.Errorf("%w: offer", xerrors.ErrNotFound)
	}
	return o, nil
}

type fakeSusStore struct {
	created []*suscripcion.Suscripcion
	stored  map[string]*suscripcion.Suscripcion
	listed  []suscripcion.Suscripcion
	deleted int64
}

func (f *fakeSusStore) CreateTx(_ context.Context, _ pgx.Tx, s *suscripcion.Suscripcion) error {
	s.ID = fmt.Sprintf("sus-%d", len(f.created)+1)
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSusStore) FindByID(_ context.Context, id string) (*suscripcion.Suscripcion, error) {
	s, ok := f.stored[id]
	if !ok {
		return nil, fmt.Errorf("%w: suscripcion", xerrors.ErrNotFound)
	}
	return s, nil
}

func (f *fakeSusStore) List(_ context.Context, _ *suscripcion.ListFilters) ([]suscripcion.Suscripcion, error) {
	return f.listed, nil
}

func (f *fakeSusStore) Update(_ context.Context, id string, s *suscripcion.Suscripcion) error {
	f.stored[id] = s
	return nil
}

func (f *fakeSusStore) Delete(_ context.Context, id string) error {
	delete(f.stored, id)
	return nil
}

func (f *fakeSusStore) DeleteAll(_ context.Context, _ *suscripcion.ListFilters) (int64, error) {
	return f.deleted, nil
}

type fakePagoStore struct {
	created []*pago.Pago
}

func (f *fakePagoStore) CreateTx(_ context.Context, _ pgx.Tx, p *pago.Pago) error {
	p.ID = fmt.Sprintf("pag-%d", len(f.created)+1)
	f.created = append(f.created, p)
	return nil
}

// fakeTx satisfies pgx.Tx through embedding; only the methods the subscribe
// flow touches are overridden.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeTxStarter struct {
	tx *fakeTx
}

func (f *fakeTxStarter) Begin(context.Context) (pgx.Tx, error) {
	f.tx = &fakeTx{}
	return f.tx, nil
}

// ----- fixtures -----

func newTestService(plans *fakePlanStore, offers *fakeOfferStore, subs *fakeSusStore, pagos *fakePagoStore, db *fakeTxStarter) *SuscripcionService {
	return NewSuscripcionService(subs, plans, offers, pagos, db, zap.NewNop())
}

func monthlyPlan() *plan.Plan {
	return &plan.Plan{ID: "plan-1", Name: "Pro", Duration: plan.DurationMonthly, Status: plan.StatusActive}
}

func subscribeRequest() *suscripcion.SubscribeToPlanRequest {
	start := date(2026, time.January, 26)
	return &suscripcion.SubscribeToPlanRequest{
		BrandID:   "brand-1",
		PlanID:    "plan-1",
		StartDate: &start,
		TipoPago:  suscripcion.TipoBilleteraDigital,
		Provider:  "yape",
		Status:    suscripcion.StatusActive,
	}
}

// ----- subscribe flow -----

func TestSubscribeToPlanWithoutOffer(t *testing.T) {
	plans := &fakePlanStore{plans: map[string]*plan.Plan{"plan-1": monthlyPlan()}}
	subs := &fakeSusStore{}
	pagos := &fakePagoStore{}
	db := &fakeTxStarter{}
	svc := newTestService(plans, &fakeOfferStore{}, subs, pagos, db)

	sub, err := svc.SubscribeToPlan(context.Background(), subscribeRequest())
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.February, 26), sub.RenovateDate)
	assert.False(t, sub.OfferID.Valid)
	assert.True(t, db.tx.committed)
	require.Len(t, pagos.created, 1)

	p := pagos.created[0]
	assert.Equal(t, sub.ID, p.SuscriptionID)
	assert.Equal(t, pago.StatusPendiente, p.Status)
	assert.Equal(t, sub.StartDate, p.FechaPago)
	assert.Empty(t, p.Notas)
	assert.False(t, p.VoucherPago.Valid)
}

func TestSubscribeToPlanWithExtraDurationOffer(t *testing.T) {
	plans := &fakePlanStore{plans: map[string]*plan.Plan{"plan-1": monthlyPlan()}}
	offers := &fakeOfferStore{offers: map[string]*offer.Offer{
		"offer-1": {
			ID: "offer-1",
			ExtraDurationPlan: &offer.ExtraDurationPlan{
				ExtraDuration: 10,
				DurationType:  offer.UnitDays,
			},
		},
	}}
	db := &fakeTxStarter{}
	svc := newTestService(plans, offers, &fakeSusStore{}, &fakePagoStore{}, db)

	req := subscribeRequest()
	req.OfferID = "offer-1"

	sub, err := svc.SubscribeToPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 8), sub.RenovateDate)
	assert.Equal(t, "offer-1", sub.OfferID.String)
}

func TestSubscribeToPlanDiscountOfferDoesNotExtend(t *testing.T) {
	pct := 20.0
	plans := &fakePlanStore{plans: map[string]*plan.Plan{"plan-1": monthlyPlan()}}
	offers := &fakeOfferStore{offers: map[string]*offer.Offer{
		"offer-1": {ID: "offer-1", Discount: &offer.Discount{Percentage: &pct}},
	}}
	svc := newTestService(plans, offers, &fakeSusStore{}, &fakePagoStore{}, &fakeTxStarter{})

	req := subscribeRequest()
	req.OfferID = "offer-1"

	sub, err := svc.SubscribeToPlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 26), sub.RenovateDate)
}

func TestSubscribeToPlanMissingPlanWritesNothing(t *testing.T) {
	subs := &fakeSusStore{}
	pagos := &fakePagoStore{}
	db := &fakeTxStarter{}
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, subs, pagos, db)

	_, err := svc.SubscribeToPlan(context.Background(), subscribeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, subs.created)
	assert.Empty(t, pagos.created)
	assert.Nil(t, db.tx, "transaction must not be opened")
}

func TestSubscribeToPlanMissingOfferWritesNothing(t *testing.T) {
	plans := &fakePlanStore{plans: map[string]*plan.Plan{"plan-1": monthlyPlan()}}
	subs := &fakeSusStore{}
	db := &fakeTxStarter{}
	svc := newTestService(plans, &fakeOfferStore{}, subs, &fakePagoStore{}, db)

	req := subscribeRequest()
	req.OfferID = "offer-missing"

	_, err := svc.SubscribeToPlan(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, subs.created)
	assert.Nil(t, db.tx)
}

func TestSubscribeToPlanChannelDerivation(t *testing.T) {
	tests := []struct {
		tipo     suscripcion.TipoPago
		provider string
		check    func(t *testing.T, p *pago.Pago)
	}{
		{suscripcion.TipoTransferencia, "bcp", func(t *testing.T, p *pago.Pago) {
			assert.Equal(t, "bcp", p.Transferencia.String)
			assert.False(t, p.BilleteraDigital.Valid)
			assert.False(t, p.PagoLink.Valid)
		}},
		{suscripcion.TipoBilleteraDigital, "plin", func(t *testing.T, p *pago.Pago) {
			assert.Equal(t, "plin", p.BilleteraDigital.String)
			assert.False(t, p.Transferencia.Valid)
			assert.False(t, p.PagoLink.Valid)
		}},
		{suscripcion.TipoPagoLink, "https://pay.example/abc", func(t *testing.T, p *pago.Pago) {
			assert.Equal(t, "https://pay.example/abc", p.PagoLink.String)
			assert.False(t, p.Transferencia.Valid)
			assert.False(t, p.BilleteraDigital.Valid)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tipo), func(t *testing.T) {
			plans := &fakePlanStore{plans: map[string]*plan.Plan{"plan-1": monthlyPlan()}}
			pagos := &fakePagoStore{}
			svc := newTestService(plans, &fakeOfferStore{}, &fakeSusStore{}, pagos, &fakeTxStarter{})

			req := subscribeRequest()
			req.TipoPago = tt.tipo
			req.Provider = tt.provider

			_, err := svc.SubscribeToPlan(context.Background(), req)
			require.NoError(t, err)
			require.Len(t, pagos.created, 1)
			tt.check(t, pagos.created[0])
		})
	}
}

// ----- list / update / delete -----

func TestListSuscripcionesRejectsBothFilters(t *testing.T) {
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, &fakeSusStore{}, &fakePagoStore{}, &fakeTxStarter{})

	_, err := svc.ListSuscripciones(context.Background(), &suscripcion.ListFilters{
		PlanID:  "plan-1",
		BrandID: "brand-1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrBadRequest)
}

func TestListSuscripcionesEmptyIsNotFound(t *testing.T) {
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, &fakeSusStore{}, &fakePagoStore{}, &fakeTxStarter{})

	_, err := svc.ListSuscripciones(context.Background(), &suscripcion.ListFilters{})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestUpdateSuscripcionPatchesMutableFields(t *testing.T) {
	subs := &fakeSusStore{stored: map[string]*suscripcion.Suscripcion{
		"sus-1": {
			ID:       "sus-1",
			BrandID:  "brand-1",
			PlanID:   "plan-1",
			Status:   suscripcion.StatusActive,
			Provider: "yape",
		},
	}}
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, subs, &fakePagoStore{}, &fakeTxStarter{})

	newStatus := suscripcion.StatusCanceled
	got, err := svc.UpdateSuscripcion(context.Background(), "sus-1", &suscripcion.UpdateSuscripcionRequest{
		Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, suscripcion.StatusCanceled, got.Status)
	assert.Equal(t, "brand-1", got.BrandID)
	assert.Equal(t, "yape", got.Provider)
}

func TestRemoveAllSuscripcionesZeroIsNotFound(t *testing.T) {
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, &fakeSusStore{deleted: 0}, &fakePagoStore{}, &fakeTxStarter{})

	_, err := svc.RemoveAllSuscripciones(context.Background(), &suscripcion.ListFilters{})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestRemoveAllSuscripcionesReportsCount(t *testing.T) {
	svc := newTestService(&fakePlanStore{}, &fakeOfferStore{}, &fakeSusStore{deleted: 4}, &fakePagoStore{}, &fakeTxStarter{})

	res, err := svc.RemoveAllSuscripciones(context.Background(), &suscripcion.ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.DeletedCount)
}
