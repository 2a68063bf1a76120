// internal/handlers/ofertas/offer_handler.go
package ofertas

import (
	"net/http"

	"suscripciones-service/internal/domain/offer"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/ofertas"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerService *service.OfferService
}

func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// CreateOffer creates a new promotional offer
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req offer.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.offerService.CreateOffer(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "failed to create offer")
		return
	}

	response.Success(c, http.StatusCreated, "offer created successfully", result)
}

// GetOffer retrieves an offer by ID
func (h *OfferHandler) GetOffer(c *gin.Context) {
	result, err := h.offerService.GetOffer(c.Request.Context(), c.Param("offerId"))
	if err != nil {
		response.FromError(c, err, "offer not found")
		return
	}

	response.Success(c, http.StatusOK, "offer retrieved", result)
}

// ListOffers retrieves every offer
func (h *OfferHandler) ListOffers(c *gin.Context) {
	result, err := h.offerService.ListOffers(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to list offers")
		return
	}

	response.Success(c, http.StatusOK, "offers retrieved", result)
}

// UpdateOffer patches an offer
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var req offer.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.offerService.UpdateOffer(c.Request.Context(), c.Param("offerId"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update offer")
		return
	}

	response.Success(c, http.StatusOK, "offer updated successfully", result)
}

// DeleteOffer removes one offer
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.offerService.RemoveOffer(c.Request.Context(), c.Param("offerId")); err != nil {
		response.FromError(c, err, "failed to delete offer")
		return
	}

	response.Success(c, http.StatusOK, "offer deleted successfully", nil)
}

// DeleteAllOffers removes every offer
func (h *OfferHandler) DeleteAllOffers(c *gin.Context) {
	result, err := h.offerService.RemoveAllOffers(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to delete offers")
		return
	}

	response.Success(c, http.StatusOK, "all offers deleted successfully", result)
}
