// Package stats computes dashboard figures from a set of subscriptions.
// Everything here is pure: the reference date is passed in, nothing is read
// from the clock or the database.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"subs_dashboard/internal/entity"
)

const (
	// UncategorizedLabel groups subscriptions without a category
	UncategorizedLabel = "Uncategorized"
	// UncategorizedColor is the display color of the Uncategorized group
	UncategorizedColor = "#6b7280"
	// UpcomingWindowDays is the inclusive look-ahead for upcoming payments
	UpcomingWindowDays = 7
)

var ErrUnknownBillingCycle = errors.New("unknown billing cycle")

var (
	weeksPerMonth   = decimal.RequireFromString("4.33")
	monthsInQuarter = decimal.NewFromInt(3)
	monthsInYear    = decimal.NewFromInt(12)
)

// MonthlyCost normalizes the cost of sub to a monthly-equivalent amount
func MonthlyCost(sub *entity.Subscription) (decimal.Decimal, error) {
	switch sub.BillingCycle {
	case entity.CycleWeekly:
		return sub.Cost.Mul(weeksPerMonth), nil
	case entity.CycleMonthly:
		return sub.Cost, nil
	case entity.CycleQuarterly:
		return sub.Cost.Div(monthsInQuarter), nil
	case entity.CycleYearly:
		return sub.Cost.Div(monthsInYear), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q (subscription %d)", ErrUnknownBillingCycle, sub.BillingCycle, sub.ID)
}

// Compute builds DashboardStats for subs, which must already be filtered to
// active subscriptions. Upcoming payments are those due within
// [ref, ref+7 days], compared by calendar day.
func Compute(subs []*entity.Subscription, ref time.Time) (entity.DashboardStats, error) {
	out := entity.DashboardStats{
		TotalMonthlySpending:     decimal.Zero,
		TotalActiveSubscriptions: len(subs),
		UpcomingPayments:         []*entity.Subscription{},
		CategoryBreakdown:        []entity.CategorySpend{},
	}

	from := Day(ref)
	to := from.AddDate(0, 0, UpcomingWindowDays)

	// index into CategoryBreakdown keyed by display name
	groups := make(map[string]int)

	for _, sub := range subs {
		monthly, err := MonthlyCost(sub)
		if err != nil {
			return entity.DashboardStats{}, err
		}
		out.TotalMonthlySpending = out.TotalMonthlySpending.Add(monthly)

		due := Day(sub.NextPaymentDate)
		if !due.Before(from) && !due.After(to) {
			out.UpcomingPayments = append(out.UpcomingPayments, sub)
		}

		name, color := UncategorizedLabel, UncategorizedColor
		if sub.Category != nil {
			if sub.Category.Name != "" {
				name = sub.Category.Name
			}
			if sub.Category.Color != "" {
				color = sub.Category.Color
			}
		}
		if i, ok := groups[name]; ok {
			out.CategoryBreakdown[i].Amount = out.CategoryBreakdown[i].Amount.Add(monthly)
			continue
		}
		groups[name] = len(out.CategoryBreakdown)
		out.CategoryBreakdown = append(out.CategoryBreakdown, entity.CategorySpend{
			Category: name,
			Amount:   monthly,
			Color:    color,
		})
	}

	sort.SliceStable(out.UpcomingPayments, func(i, j int) bool {
		return Day(out.UpcomingPayments[i].NextPaymentDate).Before(Day(out.UpcomingPayments[j].NextPaymentDate))
	})

	return out, nil
}

// Day truncates t to midnight UTC of its calendar date
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
