// Package sponsor serves the public sponsor directory.
package sponsor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle/internal/application/sponsor/usecases"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/utils"
)

type Handler struct {
	listActiveUC usecases.ListActiveSponsorsExecutor
	getBySlugUC  usecases.GetSponsorBySlugExecutor
	logger       logger.Interface
}

func NewHandler(
	listActiveUC usecases.ListActiveSponsorsExecutor,
	getBySlugUC usecases.GetSponsorBySlugExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listActiveUC: listActiveUC,
		getBySlugUC:  getBySlugUC,
		logger:       logger,
	}
}

// ListActiveSponsors handles GET /sponsors
func (h *Handler) ListActiveSponsors(c *gin.Context) {
	result, err := h.listActiveUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSponsorBySlug handles GET /sponsors/by-slug/:slug
func (h *Handler) GetSponsorBySlug(c *gin.Context) {
	result, err := h.getBySlugUC.Execute(c.Request.Context(), usecases.GetSponsorBySlugQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
