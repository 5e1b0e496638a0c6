package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"subs_dashboard/internal/entity"
)

func Test_category_RegisterCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, invalid data", func(t *testing.T) {
		tcases := []struct {
			Name string
			Cat  *entity.Category
		}{
			{Name: "nil", Cat: nil},
			{Name: "empty name", Cat: &entity.Category{Name: " "}},
			{Name: "bad color", Cat: &entity.Category{Name: "Music", Color: "red"}},
			{Name: "short color", Cat: &entity.Category{Name: "Music", Color: "#fff"}},
		}
		for _, tc := range tcases {
			t.Run(tc.Name, func(t *testing.T) {
				repo := NewMockCategoryRepository(ctrl)
				repo.EXPECT().SaveCategory(gomock.Any(), gomock.Any()).Times(0)

				_, err := NewCategory(repo).RegisterCategory(context.Background(), tc.Cat)
				assert.ErrorIs(t, err, ErrInvalidCategory)
			})
		}
	})

	t.Run("ok, defaults applied", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockCategoryRepository(ctrl)
		repo.EXPECT().SaveCategory(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Category) (*entity.Category, error) {
				assert.Equal(t, "Music", c.Name)
				assert.Equal(t, DefaultCategoryColor, c.Color)
				assert.Equal(t, DefaultCategoryIcon, c.Icon)
				c.ID = 4
				return c, nil
			}).Times(1)

		got, err := NewCategory(repo).RegisterCategory(ctx, &entity.Category{Name: " Music "})
		assert.NoError(t, err)
		assert.Equal(t, int64(4), got.ID)
	})

	t.Run("ok, color lower-cased", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockCategoryRepository(ctrl)
		repo.EXPECT().SaveCategory(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Category) (*entity.Category, error) {
				assert.Equal(t, "#ef4444", c.Color)
				assert.Equal(t, "tv", c.Icon)
				return c, nil
			}).Times(1)

		_, err := NewCategory(repo).RegisterCategory(ctx, &entity.Category{Name: "Streaming", Color: "#EF4444", Icon: "tv"})
		assert.NoError(t, err)
	})
}

func Test_category_DeleteCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewCategory(NewMockCategoryRepository(ctrl)).DeleteCategory(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("not found", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockCategoryRepository(ctrl)
		repo.EXPECT().GetCategoryByID(ctx, int64(8)).Times(1).Return(nil, ErrCategoryNotFound)
		repo.EXPECT().DeleteCategory(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewCategory(repo).DeleteCategory(ctx, 8)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		existing := &entity.Category{ID: 8, Name: "Music"}
		repo := NewMockCategoryRepository(ctrl)
		repo.EXPECT().GetCategoryByID(ctx, int64(8)).Times(1).Return(existing, nil)
		repo.EXPECT().DeleteCategory(ctx, int64(8)).Times(1).Return(nil)

		got, err := NewCategory(repo).DeleteCategory(ctx, 8)
		assert.NoError(t, err)
		assert.Equal(t, existing, got)
	})
}
