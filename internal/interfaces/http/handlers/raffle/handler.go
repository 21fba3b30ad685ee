package raffle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"raffle/internal/application/raffle/usecases"
	"raffle/internal/shared/authorization"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/utils"
)

type Handler struct {
	createRaffleUC usecases.CreateRaffleExecutor
	getRaffleUC    usecases.GetRaffleExecutor
	listRafflesUC  usecases.ListRafflesExecutor
	listEntriesUC  usecases.ListEntriesExecutor
	cancelRaffleUC usecases.CancelRaffleExecutor
	drawRaffleUC   usecases.DrawRaffleExecutor
	logger         logger.Interface
}

func NewHandler(
	createRaffleUC usecases.CreateRaffleExecutor,
	getRaffleUC usecases.GetRaffleExecutor,
	listRafflesUC usecases.ListRafflesExecutor,
	listEntriesUC usecases.ListEntriesExecutor,
	cancelRaffleUC usecases.CancelRaffleExecutor,
	drawRaffleUC usecases.DrawRaffleExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createRaffleUC: createRaffleUC,
		getRaffleUC:    getRaffleUC,
		listRafflesUC:  listRafflesUC,
		listEntriesUC:  listEntriesUC,
		cancelRaffleUC: cancelRaffleUC,
		drawRaffleUC:   drawRaffleUC,
		logger:         logger,
	}
}

// CreateRaffle handles POST /raffles
func (h *Handler) CreateRaffle(c *gin.Context) {
	var req CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create raffle", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRaffleUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Raffle created successfully")
}

// GetRaffle handles GET /raffles/:id
func (h *Handler) GetRaffle(c *gin.Context) {
	raffleID, err := parseRaffleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRaffleUC.Execute(c.Request.Context(), usecases.GetRaffleQuery{RaffleID: raffleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRaffles handles GET /raffles
func (h *Handler) ListRaffles(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listRafflesUC.Execute(c.Request.Context(), usecases.ListRafflesQuery{
		Status:   strings.ToLower(c.Query("status")),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Raffles, result.TotalCount, result.Page, result.PageSize)
}

// ListEntries handles GET /raffles/:id/entries
func (h *Handler) ListEntries(c *gin.Context) {
	raffleID, err := parseRaffleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listEntriesUC.Execute(c.Request.Context(), usecases.ListEntriesQuery{
		RaffleID:      raffleID,
		ParticipantID: c.Query("participant_id"),
		Page:          p.Page,
		PageSize:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.TotalCount, result.Page, result.PageSize)
}

// CancelRaffle handles POST /raffles/:id/cancel
func (h *Handler) CancelRaffle(c *gin.Context) {
	raffleID, err := parseRaffleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelRaffleUC.Execute(c.Request.Context(), usecases.CancelRaffleCommand{RaffleID: raffleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Raffle cancelled", result)
}

// DrawRaffle handles POST /raffles/:id/draw
func (h *Handler) DrawRaffle(c *gin.Context) {
	raffleID, err := parseRaffleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.drawRaffleUC.Execute(c.Request.Context(), usecases.DrawRaffleCommand{RaffleID: raffleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("raffle drawn via api",
		"raffle_id", raffleID,
		"drawn_by", authorization.CurrentUserID(c),
		"notification_status", result.NotificationStatus,
	)
	utils.SuccessResponse(c, http.StatusOK, "Raffle drawn", result)
}

func parseRaffleID(c *gin.Context) (string, error) {
	raffleID := strings.TrimSpace(c.Param("id"))
	if raffleID == "" {
		return "", errors.NewValidationError("raffle id is required")
	}
	return raffleID, nil
}
