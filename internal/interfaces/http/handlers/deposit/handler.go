package deposit

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"raffle/internal/application/deposit/usecases"
	"raffle/internal/shared/authorization"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/utils"
)

type Handler struct {
	submitDepositUC  usecases.SubmitDepositExecutor
	getDepositUC     usecases.GetDepositExecutor
	listDepositsUC   usecases.ListDepositsExecutor
	approveDepositUC usecases.ApproveDepositExecutor
	rejectDepositUC  usecases.RejectDepositExecutor
	logger           logger.Interface
}

func NewHandler(
	submitDepositUC usecases.SubmitDepositExecutor,
	getDepositUC usecases.GetDepositExecutor,
	listDepositsUC usecases.ListDepositsExecutor,
	approveDepositUC usecases.ApproveDepositExecutor,
	rejectDepositUC usecases.RejectDepositExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitDepositUC:  submitDepositUC,
		getDepositUC:     getDepositUC,
		listDepositsUC:   listDepositsUC,
		approveDepositUC: approveDepositUC,
		rejectDepositUC:  rejectDepositUC,
		logger:           logger,
	}
}

// SubmitDeposit handles POST /deposits
func (h *Handler) SubmitDeposit(c *gin.Context) {
	var req SubmitDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit deposit", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitDepositUC.Execute(c.Request.Context(), req.ToCommand(authorization.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Deposit submitted for review")
}

// ListMyDeposits handles GET /me/deposits
func (h *Handler) ListMyDeposits(c *gin.Context) {
	query, err := parseListDepositsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.ParticipantID = authorization.CurrentUserID(c)

	h.list(c, query)
}

// ListDeposits handles GET /deposits
func (h *Handler) ListDeposits(c *gin.Context) {
	query, err := parseListDepositsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.list(c, query)
}

func (h *Handler) list(c *gin.Context, query usecases.ListDepositsQuery) {
	result, err := h.listDepositsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Deposits, result.TotalCount, result.Page, result.PageSize)
}

// GetDeposit handles GET /deposits/:id
func (h *Handler) GetDeposit(c *gin.Context) {
	depositID, err := parseDepositID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDepositUC.Execute(c.Request.Context(), usecases.GetDepositQuery{DepositID: depositID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApproveDeposit handles POST /deposits/:id/approve
func (h *Handler) ApproveDeposit(c *gin.Context) {
	depositID, err := parseDepositID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveDepositUC.Execute(c.Request.Context(), usecases.ApproveDepositCommand{
		DepositID:  depositID,
		ReviewerID: authorization.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Deposit approved", result)
}

// RejectDeposit handles POST /deposits/:id/reject. The body is optional.
func (h *Handler) RejectDeposit(c *gin.Context) {
	depositID, err := parseDepositID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectDepositRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
			return
		}
		if err := utils.ValidateStruct(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.rejectDepositUC.Execute(c.Request.Context(), usecases.RejectDepositCommand{
		DepositID:  depositID,
		ReviewerID: authorization.CurrentUserID(c),
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Deposit rejected", result)
}

func parseDepositID(c *gin.Context) (string, error) {
	depositID := strings.TrimSpace(c.Param("id"))
	if depositID == "" {
		return "", errors.NewValidationError("deposit id is required")
	}
	return depositID, nil
}
