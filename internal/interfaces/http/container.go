package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"raffle/internal/infrastructure/auth"
	"raffle/internal/infrastructure/config"
	"raffle/internal/infrastructure/metrics"
	"raffle/internal/infrastructure/scheduler"
	"raffle/internal/interfaces/http/middleware"
	"raffle/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and shuts them down in order.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter

	jwtSvc           *auth.JWTService
	metrics          *metrics.Recorder
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every component. Redis is optional: without it the
// rate limits and the notification dedup key are disabled.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure(ctx)
	c.repos = newRepositories(db)
	c.svcs = c.newServices()
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

// Engine returns the gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground starts the scheduled jobs.
func (c *Container) StartBackground() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and closes redis. The database is owned by
// the caller.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if c.schedulerManager != nil {
		if err := c.schedulerManager.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
