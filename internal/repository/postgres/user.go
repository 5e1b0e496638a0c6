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

type UserRepository struct {
	queries *sqlc.Queries
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{queries: sqlc.New(pool)}
}

func (r *UserRepository) SaveUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u == nil {
		return nil, fmt.Errorf("save user: %w", usecase.ErrInvalidSignup)
	}
	out, err := r.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           u.ID.String(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, usecase.ErrEmailTaken
		}
		return nil, fmt.Errorf("save user: %w", err)
	}
	return userToEntity(out), nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return userToEntity(u), nil
}

func (r *UserRepository) SaveSession(ctx context.Context, s *entity.Session) error {
	if s == nil {
		return fmt.Errorf("save session: %w", usecase.ErrUnauthorized)
	}
	err := r.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		Token:     s.Token,
		UserID:    s.UserID.String(),
		ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *UserRepository) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	s, err := r.queries.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &entity.Session{
		Token:     s.Token,
		UserID:    strfmt.UUID(s.UserID),
		ExpiresAt: s.ExpiresAt.UTC(),
	}, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	rows, err := r.queries.DeleteSession(ctx, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if rows == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

func (r *UserRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}

func userToEntity(u sqlc.User) *entity.User {
	return &entity.User{
		ID:           strfmt.UUID(u.ID),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
