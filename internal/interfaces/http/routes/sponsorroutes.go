package routes

import (
	"github.com/gin-gonic/gin"

	sponsorhandlers "raffle/internal/interfaces/http/handlers/sponsor"
)

type SponsorRouteConfig struct {
	SponsorHandler *sponsorhandlers.Handler
}

func SetupSponsorRoutes(engine *gin.Engine, config *SponsorRouteConfig) {
	sponsors := engine.Group("/sponsors")
	{
		sponsors.GET("",
			config.SponsorHandler.ListActiveSponsors)
		sponsors.GET("/by-slug/:slug",
			config.SponsorHandler.GetSponsorBySlug)
	}
}
