package sponsor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle/internal/application/sponsor/dto"
	"raffle/internal/application/sponsor/usecases"
	"raffle/internal/interfaces/http/handlers/testutil"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type mockListActiveUC struct {
	fn func(ctx context.Context) ([]*dto.SponsorDTO, error)
}

func (m *mockListActiveUC) Execute(ctx context.Context) ([]*dto.SponsorDTO, error) {
	return m.fn(ctx)
}

type mockGetBySlugUC struct {
	fn func(ctx context.Context, query usecases.GetSponsorBySlugQuery) (*dto.SponsorDTO, error)
}

func (m *mockGetBySlugUC) Execute(ctx context.Context, query usecases.GetSponsorBySlugQuery) (*dto.SponsorDTO, error) {
	return m.fn(ctx, query)
}

func TestHandler_ListActiveSponsors(t *testing.T) {
	list := &mockListActiveUC{fn: func(context.Context) ([]*dto.SponsorDTO, error) {
		return []*dto.SponsorDTO{
			{ID: "spn_a", Name: "Barbearia", Slug: "barbearia", Active: true},
			{ID: "spn_b", Name: "Padaria", Slug: "padaria", Active: true},
		}, nil
	}}
	h := NewHandler(list, &mockGetBySlugUC{}, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/sponsors", nil)
	h.ListActiveSponsors(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var sponsors []dto.SponsorDTO
	require.NoError(t, json.Unmarshal(resp.Data, &sponsors))
	require.Len(t, sponsors, 2)
	assert.Equal(t, "barbearia", sponsors[0].Slug)
	assert.Equal(t, "padaria", sponsors[1].Slug)
}

func TestHandler_ListActiveSponsors_Error(t *testing.T) {
	list := &mockListActiveUC{fn: func(context.Context) ([]*dto.SponsorDTO, error) {
		return nil, errors.NewInternalError("failed to list sponsors")
	}}
	h := NewHandler(list, &mockGetBySlugUC{}, logger.NewNop())

	c, w := testutil.NewTestContext(http.MethodGet, "/sponsors", nil)
	h.ListActiveSponsors(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetSponsorBySlug(t *testing.T) {
	var got usecases.GetSponsorBySlugQuery
	get := &mockGetBySlugUC{fn: func(_ context.Context, query usecases.GetSponsorBySlugQuery) (*dto.SponsorDTO, error) {
		got = query
		if query.Slug != "padaria" {
			return nil, errors.NewNotFoundError("sponsor not found").WithReason("sponsor_not_found")
		}
		return &dto.SponsorDTO{ID: "spn_b", Name: "Padaria", Slug: "padaria", CouponCode: "PAO10", Active: true}, nil
	}}
	h := NewHandler(&mockListActiveUC{}, get, logger.NewNop())

	t.Run("found", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/sponsors/by-slug/padaria", nil)
		testutil.SetURLParam(c, "slug", "padaria")
		h.GetSponsorBySlug(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "padaria", got.Slug)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var s dto.SponsorDTO
		require.NoError(t, json.Unmarshal(resp.Data, &s))
		assert.Equal(t, "PAO10", s.CouponCode)
	})

	t.Run("not found", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/sponsors/by-slug/sumiu", nil)
		testutil.SetURLParam(c, "slug", "sumiu")
		h.GetSponsorBySlug(c)

		require.Equal(t, http.StatusNotFound, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "sponsor_not_found", resp.Error.Reason)
	})
}
