// internal/handlers/planes/plan_handler.go
package planes

import (
	"net/http"

	"suscripciones-service/internal/domain/plan"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/planes"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// CreatePlan creates a new subscription plan
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req plan.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.planService.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to create plan")
		return
	}

	response.Success(c, http.StatusCreated, "plan created successfully", result)
}

// GetPlan retrieves a plan by ID
func (h *PlanHandler) GetPlan(c *gin.Context) {
	result, err := h.planService.GetPlan(c.Request.Context(), c.Param("planId"))
	if err != nil {
		response.FromError(c, err, "plan not found")
		return
	}

	response.Success(c, http.StatusOK, "plan retrieved", result)
}

// ListPlans retrieves every plan
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to list plans")
		return
	}

	response.Success(c, http.StatusOK, "plans retrieved", result)
}

// UpdatePlan patches a plan
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req plan.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.planService.UpdatePlan(c.Request.Context(), c.Param("planId"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update plan")
		return
	}

	response.Success(c, http.StatusOK, "plan updated successfully", result)
}

// DeletePlan removes one plan
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planService.RemovePlan(c.Request.Context(), c.Param("planId")); err != nil {
		response.FromError(c, err, "failed to delete plan")
		return
	}

	response.Success(c, http.StatusOK, "plan deleted successfully", nil)
}

// DeleteManyPlans removes the plans named in the request body
func (h *PlanHandler) DeleteManyPlans(c *gin.Context) {
	var req plan.DeleteManyPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.planService.RemoveManyPlans(c.Request.Context(), req.PlanIDs)
	if err != nil {
		response.FromError(c, err, "failed to delete plans")
		return
	}

	response.Success(c, http.StatusOK, "plans deleted successfully", result)
}

// DeleteAllPlans removes every plan
func (h *PlanHandler) DeleteAllPlans(c *gin.Context) {
	result, err := h.planService.RemoveAllPlans(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to delete plans")
		return
	}

	response.Success(c, http.StatusOK, "all plans deleted successfully", result)
}
