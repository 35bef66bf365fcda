package http

import (
	"net/http"

	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
)

type CatalogHandler struct {
	CatalogService *service.CatalogService
}

// HandleRoyalties godoc
//
//	@Summary		List royalties
//	@Description	Royalty earnings per track and platform with totals. "all" or an empty value disables a filter.
//	@Tags			Royalties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			period		query		string						false	"Period, YYYY-MM"
//	@Param			platform	query		string						false	"Platform name, case-insensitive"
//	@Success		200			{object}	portalsdk.RoyaltiesResponse	"records, totals"
//	@Failure		401			{object}	portalsdk.ErrorResponse		"Authentication required"
//	@Router			/api/royalties [get].
func (h *CatalogHandler) HandleRoyalties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report := h.CatalogService.Royalties(service.RoyaltyFilter{
		Period:   q.Get("period"),
		Platform: q.Get("platform"),
	})
	httpx.WriteJSON(w, http.StatusOK, toRoyaltiesResponse(report))
}

// HandlePayments godoc
//
//	@Summary		List payments
//	@Description	Royalty payout history, newest first.
//	@Tags			Royalties
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.PaymentsResponse	"payments"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"Authentication required"
//	@Router			/api/royalties/payments [get].
func (h *CatalogHandler) HandlePayments(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toPaymentsResponse(h.CatalogService.Payments()))
}

// HandleDashboard godoc
//
//	@Summary		Dashboard
//	@Description	Headline statistics and recent activity.
//	@Tags			Royalties
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.DashboardResponse	"stats, recentActivity"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"Authentication required"
//	@Router			/api/dashboard [get].
func (h *CatalogHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toDashboardResponse(h.CatalogService.Dashboard()))
}
