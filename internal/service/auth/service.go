// internal/service/auth/service.go
package auth

import (
	"context"
	"fmt"
	"time"

	"suscripciones-service/internal/domain/auth"
	xerrors "suscripciones-service/internal/pkg/errors"
	"suscripciones-service/internal/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginLimiter is the slice of the redis rate limiter the auth flow needs.
type LoginLimiter interface {
	CheckLoginAttempt(ctx context.Context, ip, username string) (bool, int64, error)
	ResetLoginAttempts(ctx context.Context, ip, username string) error
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService authenticates the back-office admin account and issues access
// tokens. Credentials live in configuration, not in the database: this service
// fronts internal tooling with a single operator account.
type AuthService struct {
	adminUser string
	adminHash []byte
	generator *jwt.Generator
	limiter   LoginLimiter
	logger    *zap.Logger
}

func NewAuthService(adminUser, adminPasswordHash string, generator *jwt.Generator, limiter LoginLimiter, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminUser: adminUser,
		adminHash: []byte(adminPasswordHash),
		generator: generator,
		limiter:   limiter,
		logger:    logger,
	}
}

// Login checks the admin credentials and returns a signed access token. Failed
// attempts count against a per-IP rate limit.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, ip string) (*auth.LoginResponse, error) {
	allowed, remaining, err := s.limiter.CheckLoginAttempt(ctx, ip, req.Username)
	if err != nil {
		s.logger.Warn("login rate limit check failed", zap.Error(err))
		// Redis being down should not lock the admin out.
		allowed = true
	}
	if !allowed {
		s.logger.Warn("login rate limited", zap.String("ip", ip), zap.String("username", req.Username))
		return nil, fmt.Errorf("%w: too many login attempts, try again later", xerrors.ErrRateLimited)
	}

	if req.Username != s.adminUser {
		return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(req.Password)); err != nil {
		s.logger.Info("failed login attempt",
			zap.String("ip", ip),
			zap.String("username", req.Username),
			zap.Int64("attempts_remaining", remaining),
		)
		return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
	}

	token, jti, err := s.generator.GenerateAccessToken(req.Username)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return nil, fmt.Errorf("%w: could not issue token", xerrors.ErrInternal)
	}

	if err := s.limiter.ResetLoginAttempts(ctx, ip, req.Username); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	s.logger.Info("admin logged in", zap.String("username", req.Username), zap.String("jti", jti))
	return &auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(s.generator.Ttl),
		Username:    req.Username,
		Role:        "admin",
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.limiter.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%w: could not revoke token", xerrors.ErrInternal)
	}

	s.logger.Info("admin logged out", zap.String("username", claims.Username), zap.String("jti", claims.ID))
	return nil
}
