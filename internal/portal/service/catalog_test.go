package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogRoyalties(t *testing.T) {
	svc := NewCatalogService()

	tests := []struct {
		name          string
		filter        RoyaltyFilter
		wantRecords   int
		wantRevenue   float64
		wantStreams   int64
		wantDownloads int64
	}{
		{"no filter", RoyaltyFilter{}, 5, 8300.00, 3490000, 11500},
		{"all keyword", RoyaltyFilter{Period: "all", Platform: "ALL"}, 5, 8300.00, 3490000, 11500},
		{"platform", RoyaltyFilter{Platform: "spotify"}, 1, 2850.00, 1250000, 4500},
		{"period", RoyaltyFilter{Period: "2024-03"}, 5, 8300.00, 3490000, 11500},
		{"no match", RoyaltyFilter{Period: "2023-01"}, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := svc.Royalties(tt.filter)
			require.Len(t, r.Records, tt.wantRecords)
			require.InDelta(t, tt.wantRevenue, r.Totals.Revenue, 0.001)
			require.Equal(t, tt.wantStreams, r.Totals.Streams)
			require.Equal(t, tt.wantDownloads, r.Totals.Downloads)
		})
	}
}

func TestCatalogRoyalties_EmptyIsNotNil(t *testing.T) {
	r := NewCatalogService().Royalties(RoyaltyFilter{Platform: "Napster"})
	require.NotNil(t, r.Records)
	require.Empty(t, r.Records)
}

func TestCatalogPaymentsAreCopied(t *testing.T) {
	svc := NewCatalogService()

	p := svc.Payments()
	require.Len(t, p, 3)
	require.Equal(t, "March 2024", p[0].Period)
	require.InDelta(t, 8300.00, p[0].Amount, 0.001)

	p[0].Amount = 0
	require.InDelta(t, 8300.00, svc.Payments()[0].Amount, 0.001)
}

func TestCatalogDashboard(t *testing.T) {
	d := NewCatalogService().Dashboard()

	require.Len(t, d.Stats, 4)
	require.Equal(t, "Total Royalties", d.Stats[0].Title)
	require.Equal(t, "$12,450.00", d.Stats[0].Value)
	require.Len(t, d.Activity, 3)
	require.Equal(t, "release", d.Activity[1].Kind)
}
