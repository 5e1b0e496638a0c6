package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"subs_dashboard/internal/entity"
	"subs_dashboard/internal/entity/generated"
	"subs_dashboard/internal/gateways/http/mw"
	"subs_dashboard/internal/usecase"
)

func setupSubscriptions(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}

		f := usecase.SubFilter{ActiveOnly: true}

		if name := strings.TrimSpace(c.Query("name")); name != "" {
			f.Name = &name
		}
		if s := c.Query("category_id"); s != "" {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid category_id"})
				return
			}
			f.CategoryID = &id
		}
		if s := c.Query("active_only"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid active_only"})
				return
			}
			f.ActiveOnly = v
		}
		if s := c.Query("limit"); s != "" {
			limit, err := strconv.Atoi(s)
			if err != nil || limit < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit"})
				return
			}
			f.Limit = limit
		}
		if s := c.Query("offset"); s != "" {
			offset, err := strconv.Atoi(s)
			if err != nil || offset < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid offset"})
				return
			}
			f.Offset = offset
		}

		subs, err := u.Sub.ListSubsByFilter(c, mw.UserID(c), f)
		if respondUseCaseErr(c, err) {
			return
		}

		c.JSON(http.StatusOK, toWireSubs(subs))
	})

	r.POST("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		sub, _, ok := bindSubscription(c)
		if !ok {
			return
		}

		created, err := u.Sub.RegisterSub(c, mw.UserID(c), sub)
		if respondSubErr(c, err) {
			return
		}
		c.JSON(http.StatusCreated, toWireSub(created))
	})
}

func setupSubscriptionsID(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		sub, err := u.Sub.GetSubByID(c, mw.UserID(c), id)
		if respondSubErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toWireSub(sub))
	})

	r.PUT("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		sub, active, ok := bindSubscription(c)
		if !ok {
			return
		}
		sub.ID = id

		updated, err := u.Sub.UpdateSub(c, mw.UserID(c), sub, active)
		if respondSubErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toWireSub(updated))
	})

	r.DELETE("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := parseID(c)
		if !ok {
			return
		}

		deleted, err := u.Sub.DeleteSub(c, mw.UserID(c), id)
		if respondSubErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toWireSub(deleted))
	})
}

func respondSubErr(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscription):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return true
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "category not found"})
		return true
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return true
	}
	return respondUseCaseErr(c, err)
}

// bindSubscription decodes and validates the request body; it writes the error response itself.
// The returned is_active is nil when the body leaves it out.
func bindSubscription(c *gin.Context) (*entity.Subscription, *bool, bool) {
	var input generated.SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	if err := input.Validate(strfmt.Default); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	cost := decimal.NewFromFloat(*input.Cost)
	if !cost.Equal(cost.Round(2)) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cost must have at most two decimal places"})
		return nil, nil, false
	}

	sub := &entity.Subscription{
		Name:            *input.Name,
		Cost:            cost,
		BillingCycle:    entity.BillingCycle(*input.BillingCycle),
		NextPaymentDate: time.Time(*input.NextPaymentDate),
		CategoryID:      input.CategoryID,
		Active:          true,
	}
	if input.Description != "" {
		d := input.Description
		sub.Description = &d
	}
	if input.WebsiteURL != "" {
		w := input.WebsiteURL.String()
		sub.WebsiteURL = &w
	}
	if input.IsActive != nil {
		sub.Active = *input.IsActive
	}
	return sub, input.IsActive, true
}

func toWireSubs(subs []*entity.Subscription) []*generated.Subscription {
	resp := make([]*generated.Subscription, 0, len(subs))
	for _, s := range subs {
		resp = append(resp, toWireSub(s))
	}
	return resp
}

func toWireSub(s *entity.Subscription) *generated.Subscription {
	name := s.Name
	cost := s.Cost.InexactFloat64()
	cycle := string(s.BillingCycle)
	next := strfmt.Date(s.NextPaymentDate)
	active := s.Active

	out := &generated.Subscription{
		SubscriptionInput: generated.SubscriptionInput{
			Name:            &name,
			Cost:            &cost,
			BillingCycle:    &cycle,
			NextPaymentDate: &next,
			CategoryID:      s.CategoryID,
			IsActive:        &active,
		},
		SubscriptionID: generated.SubscriptionID{ID: s.ID},
		Category:       toWireCategory(s.Category),
	}
	if s.Description != nil {
		out.Description = *s.Description
	}
	if s.WebsiteURL != nil {
		out.WebsiteURL = strfmt.URI(*s.WebsiteURL)
	}
	if !s.CreatedAt.IsZero() {
		out.CreatedAt = strfmt.DateTime(s.CreatedAt)
	}
	if !s.UpdatedAt.IsZero() {
		out.UpdatedAt = strfmt.DateTime(s.UpdatedAt)
	}
	return out
}
