package postgres

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/usecase"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	pool := newPool(t)
	cr := NewCategoryRepository(pool)

	t.Run("seeded catalogue", func(t *testing.T) {
		got, err := cr.ListCategories(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(got))
		for _, c := range got {
			names = append(names, c.Name)
		}
		assert.Subset(t, names, []string{"Streaming", "Music", "Software", "Cloud Storage", "News", "Fitness", "Gaming"})
	})

	t.Run("save and get", func(t *testing.T) {
		created, err := cr.SaveCategory(ctx, &entity.Category{Name: "Education", Color: "#123456", Icon: "book"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := cr.GetCategoryByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *created, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := cr.GetCategoryByID(ctx, 100500)
		assert.ErrorIs(t, err, usecase.ErrCategoryNotFound)
	})

	t.Run("delete uncategorizes subscriptions", func(t *testing.T) {
		created, err := cr.SaveCategory(ctx, &entity.Category{Name: "Temp", Color: "#000000", Icon: "folder"})
		require.NoError(t, err)

		sr := NewSubRepository(pool)
		sub, err := sr.SaveSub(ctx, &entity.Subscription{
			UserID: seedUser(t, pool), Name: "X", Cost: decimal.RequireFromString("1"),
			BillingCycle: entity.CycleMonthly, NextPaymentDate: today(), CategoryID: &created.ID, Active: true,
		})
		require.NoError(t, err)

		require.NoError(t, cr.DeleteCategory(ctx, created.ID))
		assert.ErrorIs(t, cr.DeleteCategory(ctx, created.ID), usecase.ErrCategoryNotFound)

		got, err := sr.GetSubByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Nil(t, got.Category)
	})
}
