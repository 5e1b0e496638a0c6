package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"subs_dashboard/internal/entity"
)

const (
	DefaultSessionTTL = 7 * 24 * time.Hour

	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

var (
	hasLetter  = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[^a-zA-Z0-9]`)

	strengthLabels = [...]string{"", "Weak", "Fair", "Good", "Strong"}
)

// Auth handles accounts and bearer sessions
type Auth struct {
	Ur         UserRepository
	SessionTTL time.Duration
	Now        func() time.Time
}

func NewAuth(ur UserRepository, sessionTTL time.Duration) *Auth {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Auth{
		Ur:         ur,
		SessionTTL: sessionTTL,
		Now:        time.Now,
	}
}

// SignUp validates credentials and creates an account
func (a *Auth) SignUp(ctx context.Context, email, password, confirm string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidSignup)
	}
	if !strfmt.Default.Validates("email", email) {
		return nil, fmt.Errorf("%w: please enter a valid email address", ErrInvalidSignup)
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	if confirm == "" {
		return nil, fmt.Errorf("%w: please confirm your password", ErrInvalidSignup)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidSignup)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return a.Ur.SaveUser(ctx, &entity.User{
		ID:           strfmt.UUID(uuid.NewString()),
		Email:        email,
		PasswordHash: hash,
	})
}

// LogIn checks credentials and issues a new session
func (a *Auth) LogIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := a.Ur.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: a.Now().Add(a.SessionTTL).UTC(),
	}
	if err := a.Ur.SaveSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// LogOut revokes a session
func (a *Auth) LogOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if err := a.Ur.DeleteSession(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// Authenticate resolves a bearer token to its user
func (a *Auth) Authenticate(ctx context.Context, token string) (strfmt.UUID, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	s, err := a.Ur.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	if !a.Now().Before(s.ExpiresAt) {
		return "", fmt.Errorf("%w: session expired", ErrUnauthorized)
	}
	return s.UserID, nil
}

// PurgeSessions deletes expired sessions
func (a *Auth) PurgeSessions(ctx context.Context) (int64, error) {
	return a.Ur.DeleteExpiredSessions(ctx, a.Now())
}

// PasswordStrength scores a password 0..4, one point per satisfied rule
func PasswordStrength(password string) (int, string) {
	if password == "" {
		return 0, strengthLabels[0]
	}
	score := 0
	for _, ok := range []bool{
		len(password) >= minPasswordLength,
		hasLetter.MatchString(password),
		hasDigit.MatchString(password),
		hasSpecial.MatchString(password),
	} {
		if ok {
			score++
		}
	}
	return score, strengthLabels[score]
}

func checkPassword(p string) error {
	switch {
	case len(p) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidSignup, minPasswordLength)
	case len(p) > maxPasswordLength:
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidSignup, maxPasswordLength)
	case !hasLetter.MatchString(p):
		return fmt.Errorf("%w: password must contain at least one letter", ErrInvalidSignup)
	case !hasDigit.MatchString(p):
		return fmt.Errorf("%w: password must contain at least one number", ErrInvalidSignup)
	case !hasSpecial.MatchString(p):
		return fmt.Errorf("%w: password must contain at least one special character", ErrInvalidSignup)
	}
	return nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
