package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"subs_dashboard/internal/entity"
)

func newAuthUC(ur UserRepository) *Auth {
	uc := NewAuth(ur, time.Hour)
	uc.Now = func() time.Time { return fixedNow }
	return uc
}

func Test_auth_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, invalid input", func(t *testing.T) {
		tcases := []struct {
			Name     string
			Email    string
			Password string
			Confirm  string
		}{
			{Name: "no email", Email: "", Password: "secret-123", Confirm: "secret-123"},
			{Name: "bad email", Email: "nobody", Password: "secret-123", Confirm: "secret-123"},
			{Name: "short password", Email: "a@b.io", Password: "s-1", Confirm: "s-1"},
			{Name: "no letter", Email: "a@b.io", Password: "12345678!", Confirm: "12345678!"},
			{Name: "no digit", Email: "a@b.io", Password: "password!", Confirm: "password!"},
			{Name: "no special", Email: "a@b.io", Password: "password1", Confirm: "password1"},
			{Name: "no confirm", Email: "a@b.io", Password: "secret-123", Confirm: ""},
			{Name: "mismatch", Email: "a@b.io", Password: "secret-123", Confirm: "secret-124"},
		}
		for _, tc := range tcases {
			t.Run(tc.Name, func(t *testing.T) {
				repo := NewMockUserRepository(ctrl)
				repo.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Times(0)

				_, err := newAuthUC(repo).SignUp(context.Background(), tc.Email, tc.Password, tc.Confirm)
				assert.ErrorIs(t, err, ErrInvalidSignup)
			})
		}
	})

	t.Run("err, email taken", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().SaveUser(ctx, gomock.Any()).Times(1).Return(nil, ErrEmailTaken)

		_, err := newAuthUC(repo).SignUp(ctx, "a@b.io", "secret-123", "secret-123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().SaveUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
				assert.Equal(t, "jane@example.com", u.Email)
				assert.NotEmpty(t, u.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("secret-123")))
				return u, nil
			}).Times(1)

		got, err := newAuthUC(repo).SignUp(ctx, " Jane@Example.com ", "secret-123", "secret-123")
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", got.Email)
	})
}

func Test_auth_LogIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{ID: strfmt.UUID(uuid.New().String()), Email: "jane@example.com", PasswordHash: hash}

	t.Run("unknown user", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Times(1).Return(nil, ErrUserNotFound)

		_, err := newAuthUC(repo).LogIn(ctx, "nobody@example.com", "secret-123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Times(1).Return(user, nil)
		repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Times(0)

		_, err := newAuthUC(repo).LogIn(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetUserByEmail(ctx, "jane@example.com").Times(1).Return(user, nil)
		repo.EXPECT().SaveSession(ctx, gomock.Any()).Times(1).Return(nil)

		s, err := newAuthUC(repo).LogIn(ctx, "JANE@example.com", "secret-123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, s.UserID)
		assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
		_, err = uuid.Parse(s.Token)
		assert.NoError(t, err)
	})
}

func Test_auth_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uid := strfmt.UUID(uuid.New().String())

	t.Run("empty token", func(t *testing.T) {
		_, err := newAuthUC(NewMockUserRepository(ctrl)).Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown token", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetSession(ctx, "tok").Times(1).Return(nil, ErrSessionNotFound)

		_, err := newAuthUC(repo).Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetSession(ctx, "tok").Times(1).Return(&entity.Session{Token: "tok", UserID: uid, ExpiresAt: fixedNow}, nil)

		_, err := newAuthUC(repo).Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("repo error is not unauthorized", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetSession(ctx, "tok").Times(1).Return(nil, errors.New("conn reset"))

		_, err := newAuthUC(repo).Authenticate(ctx, "tok")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().GetSession(ctx, "tok").Times(1).Return(&entity.Session{Token: "tok", UserID: uid, ExpiresAt: fixedNow.Add(time.Minute)}, nil)

		got, err := newAuthUC(repo).Authenticate(ctx, "tok")
		assert.NoError(t, err)
		assert.Equal(t, uid, got)
	})
}

func Test_auth_LogOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing session is fine", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().DeleteSession(ctx, "tok").Times(1).Return(ErrSessionNotFound)

		assert.NoError(t, newAuthUC(repo).LogOut(ctx, "tok"))
	})

	t.Run("repo error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockUserRepository(ctrl)
		repo.EXPECT().DeleteSession(ctx, "tok").Times(1).Return(errors.New("boom"))

		assert.Error(t, newAuthUC(repo).LogOut(ctx, "tok"))
	})
}

func TestPasswordStrength(t *testing.T) {
	tcases := []struct {
		Password string
		Score    int
		Label    string
	}{
		{Password: "", Score: 0, Label: ""},
		{Password: "abc", Score: 1, Label: "Weak"},
		{Password: "abc1", Score: 2, Label: "Fair"},
		{Password: "abcdefg1", Score: 3, Label: "Good"},
		{Password: "abcdef1!", Score: 4, Label: "Strong"},
	}
	for _, tc := range tcases {
		t.Run(tc.Password, func(t *testing.T) {
			score, label := PasswordStrength(tc.Password)
			assert.Equal(t, tc.Score, score)
			assert.Equal(t, tc.Label, label)
		})
	}
}
