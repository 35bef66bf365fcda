package service

import (
	"strings"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
)

// RoyaltyFilter narrows a royalty listing. Empty fields and "all" match
// everything; comparisons ignore case.
type RoyaltyFilter struct {
	Period   string
	Platform string
}

// RoyaltyReport is a filtered royalty listing with its totals.
type RoyaltyReport struct {
	Records []domain.RoyaltyRecord
	Totals  domain.RoyaltyTotals
}

// CatalogService serves the read-only earnings figures shown on the
// dashboard and royalty pages.
type CatalogService struct {
	royalties []domain.RoyaltyRecord
	payments  []domain.Payment
	dashboard domain.Dashboard
}

// NewCatalogService returns a catalog backed by the bundled demo figures.
func NewCatalogService() *CatalogService {
	return &CatalogService{
		royalties: demoRoyalties(),
		payments:  demoPayments(),
		dashboard: demoDashboard(),
	}
}

// Royalties lists the records matching f.
func (s *CatalogService) Royalties(f RoyaltyFilter) RoyaltyReport {
	report := RoyaltyReport{Records: []domain.RoyaltyRecord{}}

	for _, r := range s.royalties {
		if !matches(f.Period, r.Period) || !matches(f.Platform, r.Platform) {
			continue
		}
		report.Records = append(report.Records, r)
		report.Totals.Revenue += r.Revenue
		report.Totals.Streams += r.Streams
		report.Totals.Downloads += r.Downloads
	}

	return report
}

// Payments returns the payout history, newest first.
func (s *CatalogService) Payments() []domain.Payment {
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Dashboard returns the headline stats and recent activity.
func (s *CatalogService) Dashboard() domain.Dashboard {
	return domain.Dashboard{
		Stats:    append([]domain.DashboardStat(nil), s.dashboard.Stats...),
		Activity: append([]domain.Activity(nil), s.dashboard.Activity...),
	}
}

func matches(want, have string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(want, have)
}
