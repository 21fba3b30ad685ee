package http

import (
	depositHandlers "raffle/internal/interfaces/http/handlers/deposit"
	raffleHandlers "raffle/internal/interfaces/http/handlers/raffle"
	sponsorHandlers "raffle/internal/interfaces/http/handlers/sponsor"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	raffleHandler  *raffleHandlers.Handler
	depositHandler *depositHandlers.Handler
	sponsorHandler *sponsorHandlers.Handler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	return &allHandlers{
		raffleHandler: raffleHandlers.NewHandler(
			u.createRaffleUC, u.getRaffleUC, u.listRafflesUC, u.listEntriesUC, u.cancelRaffleUC, u.drawRaffleUC,
			c.log.Named("raffle-handler")),
		depositHandler: depositHandlers.NewHandler(
			u.submitDepositUC, u.getDepositUC, u.listDepositsUC, u.approveDepositUC, u.rejectDepositUC,
			c.log.Named("deposit-handler")),
		sponsorHandler: sponsorHandlers.NewHandler(
			u.listActiveSponsorsUC, u.getSponsorBySlugUC,
			c.log.Named("sponsor-handler")),
	}
}
