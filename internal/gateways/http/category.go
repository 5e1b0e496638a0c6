package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/entity/generated"
	"subs_dashboard/internal/usecase"
)

func setupCategories(r *gin.RouterGroup, u UseCases) {
	r.GET("/categories", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		cats, err := u.Category.ListCategories(c)
		if respondUseCaseErr(c, err) {
			return
		}
		resp := make([]*generated.Category, 0, len(cats))
		for _, cat := range cats {
			resp = append(resp, toWireCategory(cat))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.POST("/categories", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		var input generated.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		created, err := u.Category.RegisterCategory(c, &entity.Category{
			Name:  *input.Name,
			Color: input.Color,
			Icon:  input.Icon,
		})
		if errors.Is(err, usecase.ErrInvalidCategory) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if respondUseCaseErr(c, err) {
			return
		}
		c.JSON(http.StatusCreated, toWireCategory(created))
	})

	r.DELETE("/categories/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := u.Category.DeleteCategory(c, id)
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if respondUseCaseErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toWireCategory(deleted))
	})
}

func toWireCategory(c *entity.Category) *generated.Category {
	if c == nil {
		return nil
	}
	return &generated.Category{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
	}
}
