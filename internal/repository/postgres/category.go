package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/repository/postgres/sqlc"
	"subs_dashboard/internal/usecase"
)

type CategoryRepository struct {
	queries *sqlc.Queries
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{queries: sqlc.New(pool)}
}

func (r *CategoryRepository) SaveCategory(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if c == nil {
		return nil, fmt.Errorf("save category: %w", usecase.ErrInvalidCategory)
	}
	out, err := r.queries.CreateCategory(ctx, sqlc.CreateCategoryParams{
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	})
	if err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return categoryToEntity(out), nil
}

// DeleteCategory - subscriptions in the category become uncategorized
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	rows, err := r.queries.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := r.queries.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category by id=%d: %w", id, err)
	}
	return categoryToEntity(c), nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, categoryToEntity(c))
	}
	return out, nil
}

func categoryToEntity(c sqlc.Category) *entity.Category {
	return &entity.Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
	}
}
