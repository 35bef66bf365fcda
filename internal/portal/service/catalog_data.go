package service

import (
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
)

func demoRoyalties() []domain.RoyaltyRecord {
	return []domain.RoyaltyRecord{
		{ID: 1, Track: "Midnight Dreams", Platform: "Spotify", Streams: 1250000, Downloads: 4500, Revenue: 2850.00, Period: "2024-03", Status: domain.RoyaltyPaid},
		{ID: 2, Track: "Ocean Waves", Platform: "Apple Music", Streams: 890000, Downloads: 3200, Revenue: 2100.00, Period: "2024-03", Status: domain.RoyaltyPaid},
		{ID: 3, Track: "City Lights", Platform: "YouTube Music", Streams: 650000, Downloads: 1800, Revenue: 1650.00, Period: "2024-03", Status: domain.RoyaltyPaid},
		{ID: 4, Track: "Midnight Dreams", Platform: "Amazon Music", Streams: 420000, Downloads: 1200, Revenue: 980.00, Period: "2024-03", Status: domain.RoyaltyPaid},
		{ID: 5, Track: "Ocean Waves", Platform: "Tidal", Streams: 280000, Downloads: 800, Revenue: 720.00, Period: "2024-03", Status: domain.RoyaltyPaid},
	}
}

func demoPayments() []domain.Payment {
	return []domain.Payment{
		{ID: 1, Period: "March 2024", Amount: 8300.00, Date: day(2024, time.March, 15), Status: domain.RoyaltyPaid, Method: "Direct Deposit"},
		{ID: 2, Period: "February 2024", Amount: 7200.00, Date: day(2024, time.February, 15), Status: domain.RoyaltyPaid, Method: "Direct Deposit"},
		{ID: 3, Period: "January 2024", Amount: 6800.00, Date: day(2024, time.January, 15), Status: domain.RoyaltyPaid, Method: "Direct Deposit"},
	}
}

func demoDashboard() domain.Dashboard {
	return domain.Dashboard{
		Stats: []domain.DashboardStat{
			{Title: "Total Royalties", Value: "$12,450.00", Change: "+12.5%", Trend: "up"},
			{Title: "Monthly Streams", Value: "2.4M", Change: "+8.2%", Trend: "up"},
			{Title: "Active Tracks", Value: "24", Change: "+2", Trend: "up"},
			{Title: "Fan Reach", Value: "156K", Change: "+15.3%", Trend: "up"},
		},
		Activity: []domain.Activity{
			{ID: 1, Kind: "payment", Title: "Royalty Payment Processed", Description: "$2,450.00 for March 2024", Date: day(2024, time.March, 15)},
			{ID: 2, Kind: "release", Title: "New Track Released", Description: `"Midnight Dreams" is now live on all platforms`, Date: day(2024, time.March, 10)},
			{ID: 3, Kind: "payment", Title: "Royalty Payment Processed", Description: "$1,890.00 for February 2024", Date: day(2024, time.February, 15)},
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
