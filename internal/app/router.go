// internal/app/router.go
package app

import (
	"time"

	authHandler "suscripciones-service/internal/handlers/authn"
	ofertasHandler "suscripciones-service/internal/handlers/ofertas"
	pagosHandler "suscripciones-service/internal/handlers/pagos"
	planesHandler "suscripciones-service/internal/handlers/planes"
	susHandler "suscripciones-service/internal/handlers/suscripciones"
	"suscripciones-service/internal/middleware"
	"suscripciones-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler        *authHandler.AuthHandler
	PlanHandler        *planesHandler.PlanHandler
	OfferHandler       *ofertasHandler.OfferHandler
	SuscripcionHandler *susHandler.SuscripcionHandler
	PagoHandler        *pagosHandler.PagoHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *session.RateLimiter
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Auth ====================
	auth := r.Group("/auth")
	{
		login := auth.Group("")
		login.Use(middleware.RateLimitMiddleware(h.RateLimiter, 30, time.Minute))
		{
			login.POST("/login", h.AuthHandler.Login)
		}

		authProtected := auth.Group("")
		authProtected.Use(h.AuthMiddleware.Auth())
		{
			authProtected.POST("/logout", h.AuthHandler.Logout)
		}
	}

	// ==================== Subscription Plans ====================
	planes := r.Group("/planes")
	planes.Use(h.AuthMiddleware.Auth())
	{
		planes.POST("/create-plan", h.PlanHandler.CreatePlan)
		planes.GET("", h.PlanHandler.ListPlans)
		planes.GET("/:planId", h.PlanHandler.GetPlan)
		planes.PATCH("/:planId/update-plan", h.PlanHandler.UpdatePlan)
		planes.DELETE("/delete-all-plans", h.PlanHandler.DeleteAllPlans)
		planes.DELETE("/delete-many-plans", h.PlanHandler.DeleteManyPlans)
		planes.DELETE("/:planId/delete-plan", h.PlanHandler.DeletePlan)
	}

	// ==================== Promotional Offers ====================
	offers := r.Group("/offers")
	offers.Use(h.AuthMiddleware.Auth())
	{
		offers.POST("", h.OfferHandler.CreateOffer)
		offers.GET("", h.OfferHandler.ListOffers)
		offers.GET("/:offerId", h.OfferHandler.GetOffer)
		offers.PATCH("/:offerId", h.OfferHandler.UpdateOffer)
		offers.DELETE("/delete-all-offers", h.OfferHandler.DeleteAllOffers)
		offers.DELETE("/:offerId", h.OfferHandler.DeleteOffer)
	}

	// ==================== Subscriptions ====================
	suscripciones := r.Group("/suscripciones")
	suscripciones.Use(h.AuthMiddleware.Auth())
	{
		suscripciones.POST("/suscribe-to-plan", h.SuscripcionHandler.SubscribeToPlan)
		suscripciones.GET("", h.SuscripcionHandler.ListSuscripciones)
		suscripciones.GET("/:suscriptionId", h.SuscripcionHandler.GetSuscripcion)
		suscripciones.PATCH("/:suscriptionId/update-suscription", h.SuscripcionHandler.UpdateSuscripcion)
		suscripciones.DELETE("/delete-all-suscriptions", h.SuscripcionHandler.DeleteAllSuscripciones)
		suscripciones.DELETE("/:suscriptionId/delete-suscription", h.SuscripcionHandler.DeleteSuscripcion)
	}

	// ==================== Payments ====================
	pagos := r.Group("/pagos")
	pagos.Use(h.AuthMiddleware.Auth())
	{
		pagos.POST("/register-payment", h.PagoHandler.RegisterPago)
		pagos.GET("", h.PagoHandler.ListPagos)
		pagos.GET("/:paymentId", h.PagoHandler.GetPago)
		pagos.PATCH("/:paymentId/update-payment", h.PagoHandler.UpdatePago)
		pagos.PATCH("/:paymentId/upload-voucher", h.PagoHandler.UploadVoucher)
		pagos.DELETE("/delete-all-payments", h.PagoHandler.DeleteAllPagos)
		pagos.DELETE("/:paymentId/delete-voucher", h.PagoHandler.DeleteVoucher)
		pagos.DELETE("/:paymentId/delete-payment", h.PagoHandler.DeletePago)
	}
}
