// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"suscripciones-service/internal/config"
	"suscripciones-service/internal/db"
	authHandler "suscripciones-service/internal/handlers/authn"
	ofertasHandler "suscripciones-service/internal/handlers/ofertas"
	pagosHandler "suscripciones-service/internal/handlers/pagos"
	planesHandler "suscripciones-service/internal/handlers/planes"
	susHandler "suscripciones-service/internal/handlers/suscripciones"
	"suscripciones-service/internal/middleware"
	"suscripciones-service/internal/pkg/jwt"
	"suscripciones-service/internal/pkg/session"
	"suscripciones-service/internal/pkg/uploader"
	"suscripciones-service/internal/repository/postgres"
	authService "suscripciones-service/internal/service/auth"
	ofertasService "suscripciones-service/internal/service/ofertas"
	pagosService "suscripciones-service/internal/service/pagos"
	planesService "suscripciones-service/internal/service/planes"
	susService "suscripciones-service/internal/service/suscripciones"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB()
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- JWT -----
	if s.cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	generator := jwt.NewGenerator([]byte(s.cfg.JWTSecret), s.cfg.JWTIssuer, s.cfg.JWTAudience, s.cfg.JWTTTL)
	verifier := jwt.NewVerifier([]byte(s.cfg.JWTSecret), s.cfg.JWTIssuer, s.cfg.JWTAudience)

	// ----- Rate Limiter -----
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Uploader -----
	voucherUploader, err := uploader.NewCloudinaryUploader(
		s.cfg.CloudinaryCloudName,
		s.cfg.CloudinaryAPIKey,
		s.cfg.CloudinaryAPISecret,
		s.cfg.CloudinaryFolder,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize voucher uploader: %w", err)
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	planRepo := postgres.NewPlanRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	susRepo := postgres.NewSuscripcionRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)

	// ----- Services -----
	if s.cfg.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is not set")
	}
	authSvc := authService.NewAuthService(s.cfg.AdminUser, s.cfg.AdminPasswordHash, generator, rateLimiter, logger)
	planSvc := planesService.NewPlanService(planRepo, logger)
	offerSvc := ofertasService.NewOfferService(offerRepo, logger)
	susSvc := susService.NewSuscripcionService(susRepo, planRepo, offerRepo, pagoRepo, dbWrapper, logger)
	pagoSvc := pagosService.NewPagoService(pagoRepo, susRepo, voucherUploader, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authSvc)
	planHandlerInst := planesHandler.NewPlanHandler(planSvc)
	offerHandlerInst := ofertasHandler.NewOfferHandler(offerSvc)
	susHandlerInst := susHandler.NewSuscripcionHandler(susSvc)
	pagoHandlerInst := pagosHandler.NewPagoHandler(pagoSvc)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(verifier, rateLimiter)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:        authHandlerInst,
		PlanHandler:        planHandlerInst,
		OfferHandler:       offerHandlerInst,
		SuscripcionHandler: susHandlerInst,
		PagoHandler:        pagoHandlerInst,
		AuthMiddleware:     authMiddleware,
		RateLimiter:        rateLimiter,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
