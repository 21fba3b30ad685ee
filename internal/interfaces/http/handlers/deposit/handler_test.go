package deposit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle/internal/application/deposit/dto"
	"raffle/internal/application/deposit/usecases"
	"raffle/internal/interfaces/http/handlers/testutil"
	"raffle/internal/shared/authorization"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type mockSubmitDepositUC struct {
	fn func(ctx context.Context, cmd usecases.SubmitDepositCommand) (*dto.DepositDTO, error)
}

func (m *mockSubmitDepositUC) Execute(ctx context.Context, cmd usecases.SubmitDepositCommand) (*dto.DepositDTO, error) {
	return m.fn(ctx, cmd)
}

type mockGetDepositUC struct {
	fn func(ctx context.Context, query usecases.GetDepositQuery) (*dto.DepositDTO, error)
}

func (m *mockGetDepositUC) Execute(ctx context.Context, query usecases.GetDepositQuery) (*dto.DepositDTO, error) {
	return m.fn(ctx, query)
}

type mockListDepositsUC struct {
	fn func(ctx context.Context, query usecases.ListDepositsQuery) (*usecases.ListDepositsResult, error)
}

func (m *mockListDepositsUC) Execute(ctx context.Context, query usecases.ListDepositsQuery) (*usecases.ListDepositsResult, error) {
	return m.fn(ctx, query)
}

type mockApproveDepositUC struct {
	fn func(ctx context.Context, cmd usecases.ApproveDepositCommand) (*dto.ApproveResultDTO, error)
}

func (m *mockApproveDepositUC) Execute(ctx context.Context, cmd usecases.ApproveDepositCommand) (*dto.ApproveResultDTO, error) {
	return m.fn(ctx, cmd)
}

type mockRejectDepositUC struct {
	fn func(ctx context.Context, cmd usecases.RejectDepositCommand) (*dto.RejectResultDTO, error)
}

func (m *mockRejectDepositUC) Execute(ctx context.Context, cmd usecases.RejectDepositCommand) (*dto.RejectResultDTO, error) {
	return m.fn(ctx, cmd)
}

type handlerMocks struct {
	submit  mockSubmitDepositUC
	get     mockGetDepositUC
	list    mockListDepositsUC
	approve mockApproveDepositUC
	reject  mockRejectDepositUC
}

func newTestHandler(m *handlerMocks) *Handler {
	return NewHandler(&m.submit, &m.get, &m.list, &m.approve, &m.reject, logger.NewNop())
}

func TestHandler_SubmitDeposit(t *testing.T) {
	t.Run("participant comes from the token", func(t *testing.T) {
		var got usecases.SubmitDepositCommand
		m := &handlerMocks{}
		m.submit.fn = func(_ context.Context, cmd usecases.SubmitDepositCommand) (*dto.DepositDTO, error) {
			got = cmd
			return &dto.DepositDTO{ID: "dep_1", QuotaCount: 3, Status: "pending"}, nil
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/deposits", map[string]any{
			"raffle_id":    "rfl_1",
			"sponsor_id":   "spn_1",
			"amount_cents": 4700,
			"proof_ref":    "pix-e2e-123",
		})
		testutil.SetAuthContext(c, "usr_ana", authorization.RoleUser)
		newTestHandler(m).SubmitDeposit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "usr_ana", got.ParticipantID)
		assert.Equal(t, int64(4700), got.AmountCents)
	})

	t.Run("below minimum", func(t *testing.T) {
		m := &handlerMocks{}
		m.submit.fn = func(context.Context, usecases.SubmitDepositCommand) (*dto.DepositDTO, error) {
			return nil, errors.NewValidationError("amount is below the value of one quota").WithReason("amount_below_minimum")
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/deposits", map[string]any{
			"raffle_id": "rfl_1", "sponsor_id": "spn_1", "amount_cents": 1499,
		})
		testutil.SetAuthContext(c, "usr_ana", authorization.RoleUser)
		newTestHandler(m).SubmitDeposit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "amount_below_minimum", resp.Error.Reason)
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		m := &handlerMocks{}
		c, w := testutil.NewTestContext(http.MethodPost, "/deposits", map[string]any{"amount_cents": 0})
		testutil.SetAuthContext(c, "usr_ana", authorization.RoleUser)
		newTestHandler(m).SubmitDeposit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListMyDeposits_ForcesParticipant(t *testing.T) {
	var got usecases.ListDepositsQuery
	m := &handlerMocks{}
	m.list.fn = func(_ context.Context, query usecases.ListDepositsQuery) (*usecases.ListDepositsResult, error) {
		got = query
		return &usecases.ListDepositsResult{Page: 1, PageSize: 20}, nil
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/me/deposits", nil)
	testutil.SetQueryParams(c, map[string]string{"participant_id": "usr_bob", "status": "approved"})
	testutil.SetAuthContext(c, "usr_ana", authorization.RoleUser)
	newTestHandler(m).ListMyDeposits(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "usr_ana", got.ParticipantID)
	assert.Equal(t, "approved", got.Status)
}

func TestHandler_ListDeposits_Filters(t *testing.T) {
	var got usecases.ListDepositsQuery
	m := &handlerMocks{}
	m.list.fn = func(_ context.Context, query usecases.ListDepositsQuery) (*usecases.ListDepositsResult, error) {
		got = query
		return &usecases.ListDepositsResult{Page: 1, PageSize: 20}, nil
	}
	h := newTestHandler(m)

	c, w := testutil.NewTestContext(http.MethodGet, "/deposits", nil)
	testutil.SetQueryParams(c, map[string]string{
		"raffle_id":    "rfl_1",
		"sponsor_id":   "spn_1",
		"created_from": "2026-03-01T00:00:00Z",
	})
	h.ListDeposits(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rfl_1", got.RaffleID)
	assert.Equal(t, "spn_1", got.SponsorID)
	require.NotNil(t, got.CreatedFrom)
	assert.True(t, got.CreatedFrom.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, got.CreatedTo)

	c, w = testutil.NewTestContext(http.MethodGet, "/deposits", nil)
	testutil.SetQueryParams(c, map[string]string{"created_to": "yesterday"})
	h.ListDeposits(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDeposit(t *testing.T) {
	m := &handlerMocks{}
	m.get.fn = func(context.Context, usecases.GetDepositQuery) (*dto.DepositDTO, error) {
		return nil, errors.NewNotFoundError("deposit not found").WithReason("deposit_not_found")
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/deposits/dep_x", nil)
	testutil.SetURLParam(c, "id", "dep_x")
	newTestHandler(m).GetDeposit(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveDeposit(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"approved", nil, http.StatusOK},
		{"already reviewed", errors.NewConflictError("deposit is not pending").WithReason("invalid_deposit_state"), http.StatusConflict},
		{"raffle cancelled", errors.NewConflictError("raffle is cancelled").WithReason("raffle_cancelled"), http.StatusConflict},
		{"allocation exhausted", errors.NewInternalError("ticket allocation exhausted").WithReason("ticket_allocation_exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got usecases.ApproveDepositCommand
			m := &handlerMocks{}
			m.approve.fn = func(_ context.Context, cmd usecases.ApproveDepositCommand) (*dto.ApproveResultDTO, error) {
				got = cmd
				if tt.err != nil {
					return nil, tt.err
				}
				return &dto.ApproveResultDTO{DepositID: cmd.DepositID, Status: "approved", QuotaCount: 3, TicketNumbers: []int64{11, 12, 13}}, nil
			}

			c, w := testutil.NewTestContext(http.MethodPost, "/deposits/dep_1/approve", nil)
			testutil.SetURLParam(c, "id", "dep_1")
			testutil.SetAuthContext(c, "usr_admin", authorization.RoleAdmin)
			newTestHandler(m).ApproveDeposit(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "dep_1", got.DepositID)
			assert.Equal(t, "usr_admin", got.ReviewerID)
		})
	}
}

func TestHandler_RejectDeposit(t *testing.T) {
	var got usecases.RejectDepositCommand
	m := &handlerMocks{}
	m.reject.fn = func(_ context.Context, cmd usecases.RejectDepositCommand) (*dto.RejectResultDTO, error) {
		got = cmd
		return &dto.RejectResultDTO{DepositID: cmd.DepositID, Status: "rejected", RemovedEntries: 3}, nil
	}
	h := newTestHandler(m)

	t.Run("with reason", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodPost, "/deposits/dep_1/reject", map[string]any{"reason": "comprovante ilegível"})
		testutil.SetURLParam(c, "id", "dep_1")
		testutil.SetAuthContext(c, "usr_admin", authorization.RoleAdmin)
		h.RejectDeposit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "comprovante ilegível", got.Reason)
	})

	t.Run("without body", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodPost, "/deposits/dep_2/reject", nil)
		testutil.SetURLParam(c, "id", "dep_2")
		testutil.SetAuthContext(c, "usr_admin", authorization.RoleAdmin)
		h.RejectDeposit(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dep_2", got.DepositID)
		assert.Empty(t, got.Reason)
	})
}
