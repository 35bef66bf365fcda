package http

import (
	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
)

const (
	sqliteTimestamp = "2006-01-02 15:04:05"
	isoDate         = "2006-01-02"
)

func toUserResponse(u domain.User) portalsdk.UserResponse {
	resp := portalsdk.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Name:       u.Name,
		ArtistName: u.ArtistName,
		Avatar:     u.Avatar,
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.UTC().Format(sqliteTimestamp)
	}
	return resp
}

func toRoyaltiesResponse(r service.RoyaltyReport) portalsdk.RoyaltiesResponse {
	out := portalsdk.RoyaltiesResponse{
		Records: make([]portalsdk.RoyaltyRecordResponse, 0, len(r.Records)),
		Totals: portalsdk.RoyaltyTotalsResponse{
			Revenue:   r.Totals.Revenue,
			Streams:   r.Totals.Streams,
			Downloads: r.Totals.Downloads,
		},
	}
	for _, rec := range r.Records {
		out.Records = append(out.Records, portalsdk.RoyaltyRecordResponse{
			ID:        rec.ID,
			Track:     rec.Track,
			Platform:  rec.Platform,
			Streams:   rec.Streams,
			Downloads: rec.Downloads,
			Revenue:   rec.Revenue,
			Period:    rec.Period,
			Status:    string(rec.Status),
		})
	}
	return out
}

func toPaymentsResponse(payments []domain.Payment) portalsdk.PaymentsResponse {
	out := portalsdk.PaymentsResponse{Payments: make([]portalsdk.PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		out.Payments = append(out.Payments, portalsdk.PaymentResponse{
			ID:     p.ID,
			Period: p.Period,
			Amount: p.Amount,
			Date:   p.Date.Format(isoDate),
			Status: string(p.Status),
			Method: p.Method,
		})
	}
	return out
}

func toDashboardResponse(d domain.Dashboard) portalsdk.DashboardResponse {
	out := portalsdk.DashboardResponse{
		Stats:          make([]portalsdk.DashboardStatResponse, 0, len(d.Stats)),
		RecentActivity: make([]portalsdk.ActivityResponse, 0, len(d.Activity)),
	}
	for _, s := range d.Stats {
		out.Stats = append(out.Stats, portalsdk.DashboardStatResponse{
			Title:  s.Title,
			Value:  s.Value,
			Change: s.Change,
			Trend:  s.Trend,
		})
	}
	for _, a := range d.Activity {
		out.RecentActivity = append(out.RecentActivity, portalsdk.ActivityResponse{
			ID:          a.ID,
			Type:        a.Kind,
			Title:       a.Title,
			Description: a.Description,
			Date:        a.Date.Format(isoDate),
		})
	}
	return out
}
