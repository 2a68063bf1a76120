package suscripciones

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"suscripciones-service/internal/domain/offer"
	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/domain/plan"
	"suscripciones-service/internal/domain/suscripcion"
	xerrors "suscripciones-service/internal/pkg/errors"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/suscripciones"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPlanStore struct{ p *plan.Plan }

func (s *stubPlanStore) FindByID(context.Context, string) (*plan.Plan, error) {
	if s.p == nil {
		return nil, fmt.Errorf("%w: plan", xerrors.ErrNotFound)
	}
	return s.p, nil
}

type stubOfferStore struct{}

func (stubOfferStore) FindByID(context.Context, string) (*offer.Offer, error) {
	return nil, fmt.Errorf("%w: offer", xerrors.ErrNotFound)
}

type stubSusStore struct{ listed []suscripcion.Suscripcion }

func (s *stubSusStore) CreateTx(_ context.Context, _ pgx.Tx, sub *suscripcion.Suscripcion) error {
	sub.ID = "sus-1"
	return nil
}
func (s *stubSusStore) FindByID(context.Context, string) (*suscripcion.Suscripcion, error) {
	return nil, fmt.Errorf("%w: suscripcion", xerrors.ErrNotFound)
}
func (s *stubSusStore) List(context.Context, *suscripcion.ListFilters) ([]suscripcion.Suscripcion, error) {
	return s.listed, nil
}
func (s *stubSusStore) Update(context.Context, string, *suscripcion.Suscripcion) error { return nil }
func (s *stubSusStore) Delete(context.Context, string) error                           { return nil }
func (s *stubSusStore) DeleteAll(context.Context, *suscripcion.ListFilters) (int64, error) {
	return 0, nil
}

type stubPagoStore struct{}

func (stubPagoStore) CreateTx(_ context.Context, _ pgx.Tx, p *pago.Pago) error {
	p.ID = "pag-1"
	return nil
}

type stubTx struct{ pgx.Tx }

func (stubTx) Commit(context.Context) error   { return nil }
func (stubTx) Rollback(context.Context) error { return nil }

type stubTxStarter struct{}

func (stubTxStarter) Begin(context.Context) (pgx.Tx, error) { return stubTx{}, nil }

func newTestRouter(plans *stubPlanStore, subs *stubSusStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewSuscripcionService(subs, plans, stubOfferStore{}, stubPagoStore{}, stubTxStarter{}, zap.NewNop())
	h := NewSuscripcionHandler(svc)

	r := gin.New()
	r.POST("/suscripciones/suscribe-to-plan", h.SubscribeToPlan)
	r.GET("/suscripciones", h.ListSuscripciones)
	return r
}

func TestSubscribeToPlanEndpoint(t *testing.T) {
	plans := &stubPlanStore{p: &plan.Plan{ID: "plan-1", Duration: plan.DurationMonthly}}
	r := newTestRouter(plans, &stubSusStore{})

	body, _ := json.Marshal(map[string]interface{}{
		"brandId":    "brand-1",
		"planId":     "plan-1",
		"start_date": time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC),
		"tipo_pago":  "billetera_digital",
		"provider":   "yape",
		"status":     "active",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/suscripciones/suscribe-to-plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, response.TypeSuccess, env.Type)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.NotNil(t, env.Data)
}

func TestSubscribeToPlanEndpointRejectsBadBody(t *testing.T) {
	r := newTestRouter(&stubPlanStore{}, &stubSusStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/suscripciones/suscribe-to-plan", bytes.NewReader([]byte(`{"brandId":"b"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, response.TypeError, env.Type)
	assert.Nil(t, env.Data)
}

func TestListSuscripcionesEndpointRejectsBothFilters(t *testing.T) {
	r := newTestRouter(&stubPlanStore{}, &stubSusStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/suscripciones?planId=p1&brandId=b1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, response.TypeError, env.Type)
	assert.Contains(t, env.Message, "planId or brandId")
}
