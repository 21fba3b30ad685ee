package routes

import (
	"github.com/gin-gonic/gin"

	deposithandlers "raffle/internal/interfaces/http/handlers/deposit"
	"raffle/internal/interfaces/http/middleware"
	"raffle/internal/shared/authorization"
)

type DepositRouteConfig struct {
	DepositHandler *deposithandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables the per-IP limit on submissions.
	RateLimiter *middleware.RateLimiter
}

func SetupDepositRoutes(engine *gin.Engine, config *DepositRouteConfig) {
	submit := []gin.HandlerFunc{config.AuthMiddleware.RequireAuth()}
	if config.RateLimiter != nil {
		submit = append(submit, config.RateLimiter.Limit())
	}
	submit = append(submit, config.DepositHandler.SubmitDeposit)

	deposits := engine.Group("/deposits")
	{
		deposits.POST("", submit...)

		deposits.GET("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.DepositHandler.ListDeposits)
		deposits.POST("/:id/approve",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.DepositHandler.ApproveDeposit)
		deposits.POST("/:id/reject",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.DepositHandler.RejectDeposit)
		deposits.GET("/:id",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.DepositHandler.GetDeposit)
	}

	me := engine.Group("/me")
	me.Use(config.AuthMiddleware.RequireAuth())
	{
		me.GET("/deposits",
			config.DepositHandler.ListMyDeposits)
	}
}
