package routes

import (
	"github.com/gin-gonic/gin"

	rafflehandlers "raffle/internal/interfaces/http/handlers/raffle"
	"raffle/internal/interfaces/http/middleware"
	"raffle/internal/shared/authorization"
)

type RaffleRouteConfig struct {
	RaffleHandler  *rafflehandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRaffleRoutes(engine *gin.Engine, config *RaffleRouteConfig) {
	raffles := engine.Group("/raffles")
	{
		// Public reads
		raffles.GET("",
			config.RaffleHandler.ListRaffles)
		raffles.GET("/:id",
			config.RaffleHandler.GetRaffle)
		raffles.GET("/:id/entries",
			config.RaffleHandler.ListEntries)

		// Admin
		raffles.POST("",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.RaffleHandler.CreateRaffle)
		raffles.POST("/:id/cancel",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.RaffleHandler.CancelRaffle)
		raffles.POST("/:id/draw",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.RaffleHandler.DrawRaffle)
	}
}
