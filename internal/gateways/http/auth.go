package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/entity/generated"
	"subs_dashboard/internal/gateways/http/mw"
	"subs_dashboard/internal/usecase"
)

func setupAuth(r *gin.RouterGroup, u UseCases) {
	r.POST("/auth/signup", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		var input generated.SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		user, err := u.Auth.SignUp(c, *input.Email, *input.Password, *input.ConfirmPassword)
		switch {
		case errors.Is(err, usecase.ErrInvalidSignup):
			score, label := usecase.PasswordStrength(*input.Password)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             err.Error(),
				"password_strength": gin.H{"score": score, "label": label},
			})
			return
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
			return
		case err != nil:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusCreated, generated.User{ID: user.ID, Email: user.Email})
	})

	r.POST("/auth/login", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		var input generated.Credentials
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		session, err := u.Auth.LogIn(c, *input.Email, *input.Password)
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		case err != nil:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, generated.Session{
			Token:     session.Token,
			ExpiresAt: strfmt.DateTime(session.ExpiresAt),
		})
	})
}

func setupLogout(r *gin.RouterGroup, u UseCases) {
	r.POST("/auth/logout", func(c *gin.Context) {
		if err := u.Auth.LogOut(c, mw.SessionToken(c)); respondUseCaseErr(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	})
}
