// internal/handlers/authn/auth_handler.go
package authn

import (
	"net/http"

	"suscripciones-service/internal/domain/auth"
	"suscripciones-service/internal/middleware"
	"suscripciones-service/internal/pkg/response"
	service "suscripciones-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates the back-office admin and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		response.FromError(c, err, "login failed")
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout revokes the token used for this request
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.MustGetClaims(c)

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		response.FromError(c, err, "logout failed")
		return
	}

	response.Success(c, http.StatusOK, "logout successful", nil)
}
