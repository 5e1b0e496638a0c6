package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/stats"
)

// Dashboard derives spending statistics from the stored subscriptions
type Dashboard struct {
	Sr  SubscriptionRepository
	Now func() time.Time
}

func NewDashboard(sr SubscriptionRepository) *Dashboard {
	return &Dashboard{
		Sr:  sr,
		Now: time.Now,
	}
}

// Stats computes fresh statistics for owner's active subscriptions.
// A zero ref means today.
func (d *Dashboard) Stats(ctx context.Context, owner strfmt.UUID, ref time.Time) (entity.DashboardStats, error) {
	if owner.String() == "" {
		return entity.DashboardStats{}, ErrUnauthorized
	}
	if ref.IsZero() {
		ref = d.Now()
	}
	subs, err := d.Sr.ListActiveSubs(ctx, owner)
	if err != nil {
		return entity.DashboardStats{}, err
	}
	out, err := stats.Compute(subs, stats.Day(ref))
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return out, nil
}
