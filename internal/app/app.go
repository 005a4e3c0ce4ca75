// Package app assembles the HTTP server: database, middleware chain, static
// image serving and module routes.
package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/widyalab/landing-api/internal/config"
	"github.com/widyalab/landing-api/internal/database"
	"github.com/widyalab/landing-api/internal/middleware"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"github.com/widyalab/landing-api/internal/pkg/jwt"
	"github.com/widyalab/landing-api/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the assembled server and its shared dependencies.
type App struct {
	cfg    *config.AppConfig
	log    *zap.Logger
	db     *gorm.DB
	rdb    *redis.Client
	engine *gin.Engine
}

// New connects the database, runs migrations and seeds, and builds the gin
// engine with all module routes mounted.
func New(log *zap.Logger, cfg *config.AppConfig) (*App, error) {
	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		rdb = redis.NewClient(opts)
	}

	images, err := imagestore.New(cfg.ImageDir, nil, log)
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(corsMiddleware(cfg))

	engine.Static(imagestore.PublicPrefix, cfg.ImageDir)
	engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	a := &App{cfg: cfg, log: log, db: db, rdb: rdb, engine: engine}

	signer := jwt.NewSigner(cfg.JWTSecret, cfg.TokenTTL())
	rec := audit.NewRecorder(db)
	a.registerRoutes(signer, images, rec)

	return a, nil
}

func corsMiddleware(cfg *config.AppConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		cc.AllowOrigins = cfg.AllowedOrigins
	} else {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	}
	return cors.New(cc)
}

// Addr returns the listen address.
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.cfg.Port)
}

// Router returns the assembled handler for the HTTP server.
func (a *App) Router() http.Handler {
	return a.engine
}

// Shutdown releases resources held outside the HTTP server.
func (a *App) Shutdown() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("redis close failed", zap.Error(err))
		}
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Warn("database close failed", zap.Error(err))
		}
	}
}
