package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"raffle/internal/interfaces/http/middleware"
	"raffle/internal/interfaces/http/routes"
)

// SetupRoutes registers middlewares and every route on the engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	if c.cfg.Metrics.Enabled {
		c.engine.Use(middleware.Metrics(c.metrics))
		c.engine.GET(c.cfg.Metrics.Path, gin.WrapH(c.metrics.Handler()))
	}

	c.engine.GET("/health", c.health)

	routes.SetupRaffleRoutes(c.engine, &routes.RaffleRouteConfig{
		RaffleHandler:  c.hdlrs.raffleHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupDepositRoutes(c.engine, &routes.DepositRouteConfig{
		DepositHandler: c.hdlrs.depositHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})
	routes.SetupSponsorRoutes(c.engine, &routes.SponsorRouteConfig{
		SponsorHandler: c.hdlrs.sponsorHandler,
	})
}

// health reports liveness plus the state of the database and redis.
func (c *Container) health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "disabled"}

	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(pingCtx) != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if c.redis != nil {
		checks["redis"] = "ok"
		if err := c.redis.Ping(pingCtx).Err(); err != nil {
			checks["redis"] = "unavailable"
		}
	}

	ctx.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
