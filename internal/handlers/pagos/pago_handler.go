// internal/handlers/pagos/pago_handler.go
package pagos

import (
	"net/http"

	"suscripciones-service/internal/domain/pago"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/pagos"

	"github.com/gin-gonic/gin"
)

type PagoHandler struct {
	pagoService *service.PagoService
}

func NewPagoHandler(pagoService *service.PagoService) *PagoHandler {
	return &PagoHandler{
		pagoService: pagoService,
	}
}

// RegisterPago records a manual payment for a subscription
func (h *PagoHandler) RegisterPago(c *gin.Context) {
	var req pago.RegisterPagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.pagoService.RegisterPago(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to register payment")
		return
	}

	response.Success(c, http.StatusCreated, "payment registered successfully", result)
}

// GetPago retrieves a payment by ID
func (h *PagoHandler) GetPago(c *gin.Context) {
	result, err := h.pagoService.GetPago(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		response.FromError(c, err, "payment not found")
		return
	}

	response.Success(c, http.StatusOK, "payment retrieved", result)
}

// ListPagos retrieves every payment
func (h *PagoHandler) ListPagos(c *gin.Context) {
	result, err := h.pagoService.ListPagos(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, "payments retrieved", result)
}

// UpdatePago patches the mutable payment fields
func (h *PagoHandler) UpdatePago(c *gin.Context) {
	var req pago.UpdatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.pagoService.UpdatePago(c.Request.Context(), c.Param("paymentId"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update payment")
		return
	}

	response.Success(c, http.StatusOK, "payment updated successfully", result)
}

// UploadVoucher attaches a voucher image to a payment. Expects a multipart
// form with the image under the "voucher" field.
func (h *PagoHandler) UploadVoucher(c *gin.Context) {
	file, err := c.FormFile("voucher")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "voucher file is required", err)
		return
	}

	result, err := h.pagoService.UploadVoucher(c.Request.Context(), c.Param("paymentId"), file)
	if err != nil {
		response.FromError(c, err, "failed to upload voucher")
		return
	}

	response.Success(c, http.StatusOK, "voucher uploaded successfully", result)
}

// DeleteVoucher detaches the voucher image from a payment
func (h *PagoHandler) DeleteVoucher(c *gin.Context) {
	result, err := h.pagoService.DeleteVoucher(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		response.FromError(c, err, "failed to delete voucher")
		return
	}

	response.Success(c, http.StatusOK, "voucher deleted successfully", result)
}

// DeletePago removes one payment
func (h *PagoHandler) DeletePago(c *gin.Context) {
	if err := h.pagoService.RemovePago(c.Request.Context(), c.Param("paymentId")); err != nil {
		response.FromError(c, err, "failed to delete payment")
		return
	}

	response.Success(c, http.StatusOK, "payment deleted successfully", nil)
}

// DeleteAllPagos removes every payment
func (h *PagoHandler) DeleteAllPagos(c *gin.Context) {
	result, err := h.pagoService.RemoveAllPagos(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to delete payments")
		return
	}

	response.Success(c, http.StatusOK, "all payments deleted successfully", result)
}
