// internal/handlers/suscripciones/suscripcion_handler.go
package suscripciones

import (
	"net/http"

	"suscripciones-service/internal/domain/suscripcion"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/suscripciones"

	"github.com/gin-gonic/gin"
)

type SuscripcionHandler struct {
	susService *service.SuscripcionService
}

func NewSuscripcionHandler(susService *service.SuscripcionService) *SuscripcionHandler {
	return &SuscripcionHandler{
		susService: susService,
	}
}

// SubscribeToPlan creates a subscription plus its initial pending payment
func (h *SuscripcionHandler) SubscribeToPlan(c *gin.Context) {
	var req suscripcion.SubscribeToPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.susService.SubscribeToPlan(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to create subscription")
		return
	}

	response.Success(c, http.StatusCreated, "subscription created successfully", result)
}

// GetSuscripcion retrieves a subscription by ID
func (h *SuscripcionHandler) GetSuscripcion(c *gin.Context) {
	result, err := h.susService.GetSuscripcion(c.Request.Context(), c.Param("suscriptionId"))
	if err != nil {
		response.FromError(c, err, "subscription not found")
		return
	}

	response.Success(c, http.StatusOK, "subscription retrieved", result)
}

// ListSuscripciones retrieves subscriptions, optionally filtered by planId or
// brandId. The two filters are mutually exclusive.
func (h *SuscripcionHandler) ListSuscripciones(c *gin.Context) {
	var filters suscripcion.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.susService.ListSuscripciones(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "failed to list subscriptions")
		return
	}

	response.Success(c, http.StatusOK, "subscriptions retrieved", result)
}

// UpdateSuscripcion patches the mutable subscription fields
func (h *SuscripcionHandler) UpdateSuscripcion(c *gin.Context) {
	var req suscripcion.UpdateSuscripcionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.susService.UpdateSuscripcion(c.Request.Context(), c.Param("suscriptionId"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update subscription")
		return
	}

	response.Success(c, http.StatusOK, "subscription updated successfully", result)
}

// DeleteSuscripcion removes one subscription
func (h *SuscripcionHandler) DeleteSuscripcion(c *gin.Context) {
	if err := h.susService.RemoveSuscripcion(c.Request.Context(), c.Param("suscriptionId")); err != nil {
		response.FromError(c, err, "failed to delete subscription")
		return
	}

	response.Success(c, http.StatusOK, "subscription deleted successfully", nil)
}

// DeleteAllSuscripciones removes subscriptions, optionally filtered the same
// way as ListSuscripciones
func (h *SuscripcionHandler) DeleteAllSuscripciones(c *gin.Context) {
	var filters suscripcion.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.susService.RemoveAllSuscripciones(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "failed to delete subscriptions")
		return
	}

	response.Success(c, http.StatusOK, "subscriptions deleted successfully", result)
}
