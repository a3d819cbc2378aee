package server

import (
	"fmt"
	"net/http"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	custommiddleware "catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"
	"catalog-api/internal/storage"
	"catalog-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	dbsvc  *database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, dbsvc *database.Service) *Server {
	router := chi.NewRouter()

	// Basic middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := dbsvc.Health(r.Context())
		status := http.StatusOK
		if health["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		custommiddleware.RespondWithJSON(w, status, health)
	})

	// Uploaded images are served straight from the public directory
	fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.Storage.PublicDir+"/images")))
	router.Get("/images/*", fileServer.ServeHTTP)

	db := dbsvc.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	productCategoryRepo := repository.NewProductCategoryRepository(db)

	// Services
	imageStorage := storage.NewDiskImageStorage(cfg.Storage.PublicDir, logger)
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo, productCategoryRepo, imageStorage)

	// Handlers
	authHandler := transport.NewAuthHandler(userService, logger)
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	productHandler := transport.NewProductHandler(productService, logger)

	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	rateLimit := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: 30,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:auth",
	}, logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/hello", func(w http.ResponseWriter, req *http.Request) {
			custommiddleware.RespondWithJSON(w, http.StatusOK, "hello!")
		})

		// Token issuance is public but rate limited
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			authHandler.RegisterRoutes(r)
		})

		// The catalog requires a bearer token with the admin role
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(custommiddleware.RequireAdmin(logger))
			categoryHandler.RegisterRoutes(r)
			productHandler.RegisterRoutes(r)
		})
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		dbsvc:  dbsvc,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	if s.dbsvc != nil {
		if err := s.dbsvc.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
