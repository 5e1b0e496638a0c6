package entity

import "github.com/shopspring/decimal"

// DashboardStats - figures derived from a user's active subscriptions, never stored
type DashboardStats struct {
	TotalMonthlySpending     decimal.Decimal
	TotalActiveSubscriptions int
	UpcomingPayments         []*Subscription
	CategoryBreakdown        []CategorySpend
}

// CategorySpend - monthly-equivalent spend of one category group
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
	Color    string
}
