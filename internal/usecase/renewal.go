package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/stats"
)

// Renewal moves overdue next payment dates forward by whole billing cycles
type Renewal struct {
	Sr  SubscriptionRepository
	Now func() time.Time
}

func NewRenewal(sr SubscriptionRepository) *Renewal {
	return &Renewal{
		Sr:  sr,
		Now: time.Now,
	}
}

// RollOverdue advances every active subscription due before today and returns how many were moved.
// Records edited or deactivated since they were listed are skipped.
// Failures on single records do not stop the run; they are joined into the returned error.
func (r *Renewal) RollOverdue(ctx context.Context) (int, error) {
	today := stats.Day(r.Now())
	subs, err := r.Sr.ListOverdueSubs(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("roll overdue: %w", err)
	}

	var (
		moved int
		errs  []error
	)
	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		next, err := NextPaymentOnOrAfter(sub.NextPaymentDate, sub.BillingCycle, today)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		err = r.Sr.SetNextPaymentDate(ctx, sub.ID, sub.NextPaymentDate, next)
		if errors.Is(err, ErrSubscriptionChanged) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("roll sub id=%d: %w", sub.ID, err))
			continue
		}
		moved++
	}
	return moved, errors.Join(errs...)
}

// NextPaymentOnOrAfter adds whole billing cycles to due until it is not before day.
// Monthly steps are counted from the overdue date so that the 31st stays
// anchored to month ends where possible.
func NextPaymentOnOrAfter(due time.Time, cycle entity.BillingCycle, day time.Time) (time.Time, error) {
	due, day = stats.Day(due), stats.Day(day)
	if !due.Before(day) {
		return due, nil
	}

	var months int
	switch cycle {
	case entity.CycleWeekly:
		weeks := (int(day.Sub(due).Hours()/24) + 6) / 7
		return due.AddDate(0, 0, 7*weeks), nil
	case entity.CycleMonthly:
		months = 1
	case entity.CycleQuarterly:
		months = 3
	case entity.CycleYearly:
		months = 12
	default:
		return due, fmt.Errorf("%w: %q", stats.ErrUnknownBillingCycle, cycle)
	}

	for n := months; ; n += months {
		next := addMonthsClamped(due, n)
		if !next.Before(day) {
			return next, nil
		}
	}
}

// addMonthsClamped adds n months keeping the day of month, clamped to the month's last day
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	d := t.Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
