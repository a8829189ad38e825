package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jxchen21/tastebuds-backend/config"
	"github.com/jxchen21/tastebuds-backend/internal/api"
	"github.com/jxchen21/tastebuds-backend/internal/database"
	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
	"github.com/jxchen21/tastebuds-backend/internal/middleware"
	"github.com/jxchen21/tastebuds-backend/internal/router"
	"github.com/jxchen21/tastebuds-backend/internal/service"
)

// Server wires services, handlers and the HTTP listener together.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds the full application: database, recipe source, services,
// handlers, routes. Redis is optional; without it rating submissions
// are simply not rate limited.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	var ratingLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rating rate limiting disabled: %v", err)
	} else {
		ratingLimiter = middleware.NewRatingSubmitRateLimiter(redisClient)
	}

	source := mealdb.NewClient(cfg.MealDBBaseURL, cfg.MealDBTimeout)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	searchService := service.NewSearchService(source)
	ratingService := service.NewRatingService(db)
	savedService := service.NewSavedRecipeService(db, source)
	plannerService := service.NewPlannerService(db)
	shoppingService := service.NewShoppingService(db, source)
	adminService := service.NewAdminService(db)

	handlers := router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Recipe:   api.NewRecipeHandler(searchService, ratingService, savedService, source),
		Planner:  api.NewPlannerHandler(plannerService),
		Shopping: api.NewShoppingHandler(shoppingService),
		Admin:    api.NewAdminHandler(adminService),
	}

	engine := router.SetupRouter(handlers, authService, ratingLimiter)

	return &Server{
		cfg:    cfg,
		engine: engine,
		db:     db,
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
