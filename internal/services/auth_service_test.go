package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"kickshop/internal/models"
	"kickshop/internal/repositories"
	"kickshop/internal/services"
	"kickshop/pkg/password"
	"kickshop/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test_jwt_secret"

func newAuthService(repo repositories.UserRepository, opts ...token.Option) *services.AuthService {
	return services.NewAuthService(
		repo,
		password.NewHasher(bcrypt.MinCost),
		token.NewManager(testSecret, opts...),
		services.AuthConfig{AccessTokenTTL: 30 * time.Minute},
		quietLogger(),
	)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "jane@example.com" && u.FullName == "Jane Doe" && u.PasswordHash != "" && u.PasswordHash != "password123"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = "user-1"
	}).Return(nil).Once()

	user, err := authService.Register(ctx, services.RegisterInput{
		Email:    "  Jane@Example.com ",
		FullName: "Jane Doe",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.FullName)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("email taken: %w", repositories.ErrDuplicateKey)).Once()

	user, err := authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", Password: "password123"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.EqualError(t, err, "Email already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user, err := authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", Password: strings.Repeat("é", 72)})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(errors.New("database error")).Once()

	_, err := authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", Password: "password123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	var svcErr *services.Error
	assert.False(t, errors.As(err, &svcErr))
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	authService := newAuthService(repo)

	_, err := authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", FullName: "Jane", Password: "password123"})
	require.NoError(t, err)

	tok, err := authService.Login(ctx, "JANE@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotEmpty(t, tok.AccessToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), tok.ExpiresAt, 5*time.Second)

	user, err := authService.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()
	authService := newAuthService(repo)

	_, err := authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	_, wrongPassword := authService.Login(ctx, "jane@example.com", "wrongpassword")
	_, unknownEmail := authService.Login(ctx, "nobody@example.com", "password123")

	for _, err := range []error{wrongPassword, unknownEmail} {
		assert.ErrorIs(t, err, services.ErrUnauthorized)
		assert.EqualError(t, err, "Incorrect email or password")
	}
}

func TestAuthService_CurrentUser_Rejections(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()

	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredIssuer := token.NewManager(testSecret, token.WithClock(past))
	expired, _, err := expiredIssuer.Issue("jane@example.com", time.Minute)
	require.NoError(t, err)

	foreign, _, err := token.NewManager("another_secret").Issue("jane@example.com", time.Minute)
	require.NoError(t, err)

	orphan, _, err := token.NewManager(testSecret).Issue("ghost@example.com", time.Minute)
	require.NoError(t, err)

	authService := newAuthService(repo)
	_, err = authService.Register(ctx, services.RegisterInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"garbage":      "not-a-token",
		"unknown user": orphan,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			user, err := authService.CurrentUser(ctx, tok)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, services.ErrUnauthorized)
			assert.EqualError(t, err, "Could not validate credentials")
		})
	}
}
