package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase subs_dashboard/internal/usecase SubscriptionRepository,CategoryRepository,UserRepository

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionChanged  = errors.New("subscription changed concurrently")
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidPagination    = errors.New("invalid pagination")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidSignup        = errors.New("invalid signup")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionNotFound      = errors.New("session not found")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// SubFilter - filter for subscription listings
type SubFilter struct {
	// UserID - owner to filter by
	UserID strfmt.UUID
	// Name - exact service name to filter by
	Name *string
	// CategoryID - category to filter by
	CategoryID *int64
	// ActiveOnly - skip inactive subscriptions
	ActiveOnly bool
	// Limit - maximum number of records in the response
	Limit int
	// Offset - result set offset
	Offset int
}

// SubscriptionRepository - CRUD for subscriptions plus the queries the dashboard and renewal job need
type SubscriptionRepository interface {
	// SaveSub - save a subscription
	SaveSub(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	// UpdateSub - update subscription data
	UpdateSub(ctx context.Context, s *entity.Subscription) error
	// DeleteSub - delete a subscription of the given user
	DeleteSub(ctx context.Context, id int64, userID strfmt.UUID) error
	// GetSubByID - get a subscription with its category by ID
	GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error)
	// ListSubsByFilter - list subscriptions ordered by next payment date
	ListSubsByFilter(ctx context.Context, f SubFilter) ([]*entity.Subscription, error)
	// ListActiveSubs - every active subscription of a user with its category, ordered by next payment date
	ListActiveSubs(ctx context.Context, userID strfmt.UUID) ([]*entity.Subscription, error)
	// ListOverdueSubs - active subscriptions whose next payment date is before the given day
	ListOverdueSubs(ctx context.Context, before time.Time) ([]*entity.Subscription, error)
	// SetNextPaymentDate - move the next payment date of an active subscription still due on prev,
	// ErrSubscriptionChanged when it was edited or deactivated meanwhile
	SetNextPaymentDate(ctx context.Context, id int64, prev, next time.Time) error
}

// CategoryRepository - category catalogue
type CategoryRepository interface {
	SaveCategory(ctx context.Context, c *entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// UserRepository - accounts and their sessions
type UserRepository interface {
	// SaveUser - returns ErrEmailTaken when the email is already registered
	SaveUser(ctx context.Context, u *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	SaveSession(ctx context.Context, s *entity.Session) error
	GetSession(ctx context.Context, token string) (*entity.Session, error)
	DeleteSession(ctx context.Context, token string) error
	// DeleteExpiredSessions - drop sessions that expired before now, returns how many
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
