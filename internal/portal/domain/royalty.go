package domain

import "time"

type RoyaltyStatus string

const (
	RoyaltyPaid    RoyaltyStatus = "paid"
	RoyaltyPending RoyaltyStatus = "pending"
)

// RoyaltyRecord is one track's earnings on one platform for one period.
type RoyaltyRecord struct {
	ID        int64
	Track     string
	Platform  string
	Streams   int64
	Downloads int64
	Revenue   float64
	Period    string // YYYY-MM
	Status    RoyaltyStatus
}

// RoyaltyTotals sums a set of royalty records.
type RoyaltyTotals struct {
	Revenue   float64
	Streams   int64
	Downloads int64
}

// Payment is a royalty payout.
type Payment struct {
	ID     int64
	Period string // display label, e.g. "March 2024"
	Amount float64
	Date   time.Time
	Status RoyaltyStatus
	Method string
}

// DashboardStat is a headline figure on the dashboard.
type DashboardStat struct {
	Title  string
	Value  string
	Change string
	Trend  string // "up" or "down"
}

// Activity is an entry in the dashboard's recent activity feed.
type Activity struct {
	ID          int64
	Kind        string // "payment", "release"
	Title       string
	Description string
	Date        time.Time
}

// Dashboard groups everything shown on the dashboard page.
type Dashboard struct {
	Stats    []DashboardStat
	Activity []Activity
}
