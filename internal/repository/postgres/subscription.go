package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/repository/postgres/sqlc"
	"subs_dashboard/internal/usecase"
)

const (
	defaultListLimit = 50

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type SubRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}

	out, err := r.queries.CreateSubscription(ctx, sqlc.CreateSubscriptionParams{
		UserID:          sub.UserID.String(),
		Name:            sub.Name,
		Cost:            sub.Cost,
		BillingCycle:    string(sub.BillingCycle),
		NextPaymentDate: sub.NextPaymentDate,
		CategoryID:      sub.CategoryID,
		Description:     sub.Description,
		WebsiteUrl:      sub.WebsiteURL,
		IsActive:        sub.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("save sub: %w", translateFK(err))
	}
	return toEntity(out), nil
}

func (r *SubRepository) UpdateSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("update sub: %w", usecase.ErrInvalidSubscription)
	}

	rows, err := r.queries.UpdateSubscription(ctx, sqlc.UpdateSubscriptionParams{
		ID:              sub.ID,
		UserID:          sub.UserID.String(),
		Name:            sub.Name,
		Cost:            sub.Cost,
		BillingCycle:    string(sub.BillingCycle),
		NextPaymentDate: sub.NextPaymentDate,
		CategoryID:      sub.CategoryID,
		Description:     sub.Description,
		WebsiteUrl:      sub.WebsiteURL,
		IsActive:        sub.Active,
	})
	if err != nil {
		return fmt.Errorf("update sub: %w", translateFK(err))
	}
	if rows == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

// SetNextPaymentDate moves the date only while the subscription is still active and due on prev;
// otherwise it reports ErrSubscriptionChanged and leaves the row alone.
func (r *SubRepository) SetNextPaymentDate(ctx context.Context, id int64, prev, next time.Time) error {
	rows, err := r.queries.SetNextPaymentDate(ctx, sqlc.SetNextPaymentDateParams{
		ID:                id,
		NextPaymentDate:   next,
		NextPaymentDate_2: prev,
	})
	if err != nil {
		return fmt.Errorf("set next payment date id=%d: %w", id, err)
	}
	if rows == 0 {
		return usecase.ErrSubscriptionChanged
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id int64, userID strfmt.UUID) error {
	rows, err := r.queries.DeleteSubscription(ctx, sqlc.DeleteSubscriptionParams{
		ID:     id,
		UserID: userID.String(),
	})
	if err != nil {
		return fmt.Errorf("delete sub: %w", err)
	}
	if rows == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	sub, err := r.queries.GetSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%d: %w", id, err)
	}
	return joinedToEntity(sqlc.ListSubscriptionsRow(sub)), nil
}

func (r *SubRepository) ListSubsByFilter(ctx context.Context, f usecase.SubFilter) ([]*entity.Subscription, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	params := sqlc.ListSubscriptionsParams{
		Name:       f.Name,
		CategoryID: f.CategoryID,
		ActiveOnly: f.ActiveOnly,
		Limit:      int32(limit),
		Offset:     int32(offset),
	}
	if f.UserID.String() != "" {
		uid := f.UserID.String()
		params.UserID = &uid
	}

	rows, err := r.queries.ListSubscriptions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list subs by filter: %w", err)
	}
	out := make([]*entity.Subscription, 0, len(rows))
	for _, item := range rows {
		out = append(out, joinedToEntity(item))
	}
	return out, nil
}

func (r *SubRepository) ListActiveSubs(ctx context.Context, userID strfmt.UUID) ([]*entity.Subscription, error) {
	rows, err := r.queries.ListActiveSubscriptions(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list active subs: %w", err)
	}
	out := make([]*entity.Subscription, 0, len(rows))
	for _, item := range rows {
		out = append(out, joinedToEntity(sqlc.ListSubscriptionsRow(item)))
	}
	return out, nil
}

func (r *SubRepository) ListOverdueSubs(ctx context.Context, before time.Time) ([]*entity.Subscription, error) {
	rows, err := r.queries.ListOverdueSubscriptions(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("list overdue subs: %w", err)
	}
	out := make([]*entity.Subscription, 0, len(rows))
	for _, item := range rows {
		out = append(out, toEntity(item))
	}
	return out, nil
}

// translateFK maps a dangling category reference to ErrCategoryNotFound
func translateFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return usecase.ErrCategoryNotFound
	}
	return err
}

func toEntity(s sqlc.Subscription) *entity.Subscription {
	return &entity.Subscription{
		ID:              s.ID,
		UserID:          strfmt.UUID(s.UserID),
		Name:            s.Name,
		Cost:            s.Cost,
		BillingCycle:    entity.BillingCycle(s.BillingCycle),
		NextPaymentDate: utcDate(s.NextPaymentDate),
		CategoryID:      s.CategoryID,
		Description:     s.Description,
		WebsiteURL:      s.WebsiteUrl,
		Active:          s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func joinedToEntity(s sqlc.ListSubscriptionsRow) *entity.Subscription {
	out := toEntity(sqlc.Subscription{
		ID:              s.ID,
		UserID:          s.UserID,
		Name:            s.Name,
		Cost:            s.Cost,
		BillingCycle:    s.BillingCycle,
		NextPaymentDate: s.NextPaymentDate,
		CategoryID:      s.CategoryID,
		Description:     s.Description,
		WebsiteUrl:      s.WebsiteUrl,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	})
	if s.CategoryID != nil && s.CategoryName != nil {
		out.Category = &entity.Category{
			ID:    *s.CategoryID,
			Name:  *s.CategoryName,
			Color: deref(s.CategoryColor),
			Icon:  deref(s.CategoryIcon),
		}
	}
	return out
}

// utcDate drops whatever location the driver attached to a DATE value
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
