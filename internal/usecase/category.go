package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"subs_dashboard/internal/entity"
)

const (
	DefaultCategoryColor = "#6b7280"
	DefaultCategoryIcon  = "folder"

	maxCategoryNameLength = 50
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category manages the shared category catalogue
type Category struct {
	Cr CategoryRepository
}

func NewCategory(cr CategoryRepository) *Category {
	return &Category{Cr: cr}
}

// ListCategories returns every category ordered by name
func (c *Category) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return c.Cr.ListCategories(ctx)
}

// RegisterCategory validates and saves a category, filling in display defaults
func (c *Category) RegisterCategory(ctx context.Context, cat *entity.Category) (*entity.Category, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidCategory)
	}
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidCategory)
	}
	if utf8.RuneCountInString(cat.Name) > maxCategoryNameLength {
		return nil, fmt.Errorf("%w: name longer than %d characters", ErrInvalidCategory, maxCategoryNameLength)
	}
	cat.Color = strings.ToLower(strings.TrimSpace(cat.Color))
	if cat.Color == "" {
		cat.Color = DefaultCategoryColor
	}
	if !hexColor.MatchString(cat.Color) {
		return nil, fmt.Errorf("%w: color must be #rrggbb", ErrInvalidCategory)
	}
	cat.Icon = strings.TrimSpace(cat.Icon)
	if cat.Icon == "" {
		cat.Icon = DefaultCategoryIcon
	}
	return c.Cr.SaveCategory(ctx, cat)
}

// DeleteCategory removes a category and returns it. Subscriptions referencing it become uncategorized.
func (c *Category) DeleteCategory(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	existing, err := c.Cr.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Cr.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
