package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/stats"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Subscription coordinates subscription use cases via the repositories
type Subscription struct {
	Sr  SubscriptionRepository
	Cr  CategoryRepository
	Now func() time.Time
}

// NewSubscription creates a use case service with the given repositories
func NewSubscription(sr SubscriptionRepository, cr CategoryRepository) *Subscription {
	return &Subscription{
		Sr:  sr,
		Cr:  cr,
		Now: time.Now,
	}
}

// RegisterSub validates/normalizes and saves a new subscription for owner
func (s *Subscription) RegisterSub(ctx context.Context, owner strfmt.UUID, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidSubscription)
	}
	sub.UserID = owner
	sub.Active = true
	if err := s.validateAndNormalize(ctx, sub); err != nil {
		return nil, err
	}
	if sub.NextPaymentDate.Before(stats.Day(s.Now())) {
		return nil, fmt.Errorf("%w: next_payment_date cannot be in the past", ErrInvalidSubscription)
	}
	created, err := s.Sr.SaveSub(ctx, sub)
	if err != nil {
		return nil, err
	}
	return s.Sr.GetSubByID(ctx, created.ID)
}

// UpdateSub validates/normalizes and updates an existing subscription of owner, returning the fresh copy.
// A nil active keeps the stored active flag.
func (s *Subscription) UpdateSub(ctx context.Context, owner strfmt.UUID, sub *entity.Subscription, active *bool) (*entity.Subscription, error) {
	if sub == nil || sub.ID <= 0 {
		return nil, ErrInvalidID
	}
	existing, err := s.GetSubByID(ctx, owner, sub.ID)
	if err != nil {
		return nil, err
	}
	sub.UserID = owner
	sub.Active = existing.Active
	if active != nil {
		sub.Active = *active
	}
	if err := s.validateAndNormalize(ctx, sub); err != nil {
		return nil, err
	}
	if err := s.Sr.UpdateSub(ctx, sub); err != nil {
		return nil, err
	}

	return s.Sr.GetSubByID(ctx, sub.ID)
}

// DeleteSub removes a subscription of owner by ID and returns the previously stored record
func (s *Subscription) DeleteSub(ctx context.Context, owner strfmt.UUID, ID int64) (*entity.Subscription, error) {
	existing, err := s.GetSubByID(ctx, owner, ID)
	if err != nil {
		return nil, err
	}
	if err := s.Sr.DeleteSub(ctx, ID, owner); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetSubByID fetches a subscription of owner by its ID. Records of other users are reported as not found.
func (s *Subscription) GetSubByID(ctx context.Context, owner strfmt.UUID, ID int64) (*entity.Subscription, error) {
	if ID <= 0 {
		return nil, ErrInvalidID
	}
	sub, err := s.Sr.GetSubByID(ctx, ID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.UserID != owner {
		return nil, ErrSubscriptionNotFound
	}
	return sub, nil
}

// ListSubsByFilter normalizes the filter and returns matching subscriptions of owner
func (s *Subscription) ListSubsByFilter(ctx context.Context, owner strfmt.UUID, filter SubFilter) ([]*entity.Subscription, error) {
	filter.UserID = owner
	nf, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.Sr.ListSubsByFilter(ctx, nf)
}

// validateAndNormalize enforces business rules and trims optional fields
func (s *Subscription) validateAndNormalize(ctx context.Context, sub *entity.Subscription) error {
	sub.Name = strings.TrimSpace(sub.Name)
	if sub.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSubscription)
	}
	if utf8.RuneCountInString(sub.Name) > maxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidSubscription, maxNameLength)
	}
	if !sub.Cost.IsPositive() {
		return fmt.Errorf("%w: cost must be > 0", ErrInvalidSubscription)
	}
	if !sub.BillingCycle.Valid() {
		return fmt.Errorf("%w: unknown billing_cycle %q", ErrInvalidSubscription, sub.BillingCycle)
	}
	if sub.UserID.String() == "" {
		return fmt.Errorf("%w: empty user_id", ErrInvalidSubscription)
	}
	if sub.NextPaymentDate.IsZero() {
		return fmt.Errorf("%w: empty next_payment_date", ErrInvalidSubscription)
	}
	sub.NextPaymentDate = stats.Day(sub.NextPaymentDate)

	sub.Description = trimOptional(sub.Description)
	if sub.Description != nil && utf8.RuneCountInString(*sub.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: description longer than %d characters", ErrInvalidSubscription, maxDescriptionLength)
	}

	sub.WebsiteURL = trimOptional(sub.WebsiteURL)
	if sub.WebsiteURL != nil && !isWebURL(*sub.WebsiteURL) {
		return fmt.Errorf("%w: invalid website_url", ErrInvalidSubscription)
	}

	sub.Category = nil
	if sub.CategoryID != nil {
		if *sub.CategoryID <= 0 {
			return fmt.Errorf("%w: invalid category_id", ErrInvalidSubscription)
		}
		if _, err := s.Cr.GetCategoryByID(ctx, *sub.CategoryID); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSubscription, err)
		}
	}
	return nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func isWebURL(raw string) bool {
	if !strfmt.Default.Validates("uri", raw) {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalizeFilter validates pagination
func normalizeFilter(f SubFilter) (SubFilter, error) {
	if f.Offset < 0 {
		return f, fmt.Errorf("%w: offset must be >= 0", ErrInvalidPagination)
	}
	if f.CategoryID != nil && *f.CategoryID <= 0 {
		return f, fmt.Errorf("%w: category_id must be > 0", ErrInvalidID)
	}
	limit := f.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	ff := f
	ff.Limit = limit
	return ff, nil
}
