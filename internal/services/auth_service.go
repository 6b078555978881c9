package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kickshop/internal/models"
	"kickshop/internal/repositories"
	"kickshop/pkg/password"
	"kickshop/pkg/token"

	"github.com/sirupsen/logrus"
)

const (
	msgEmailTaken         = "Email already registered"
	msgBadCredentials     = "Incorrect email or password"
	msgInvalidCredentials = "Could not validate credentials"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
	Verify(tokenString string) (*token.Claims, error)
}

// AuthConfig holds the auth settings injected at construction.
type AuthConfig struct {
	AccessTokenTTL time.Duration
}

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	tokens    TokenManager
	cfg       AuthConfig
	log       *logrus.Logger
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenManager, cfg AuthConfig, log *logrus.Logger) *AuthService {
	// Compared against on unknown emails so both login failures cost the same.
	dummy, _ := hasher.Hash("kickshop-unknown-user")
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		cfg:       cfg,
		log:       log,
		dummyHash: dummy,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns its public projection.
// Email uniqueness is enforced by the store's unique index.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UserPublic, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, newError(ErrValidation, "Password must be at most 72 bytes")
		}
		return nil, err
	}

	user := &models.User{
		Email:        normalizeEmail(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, newError(ErrConflict, msgEmailTaken)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("user registered")
	pub := user.Public()
	return &pub, nil
}

// Login authenticates a user and returns a bearer token.
// Unknown emails and wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*models.Token, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		s.hasher.Verify(plainPassword, s.dummyHash)
		return nil, newError(ErrUnauthorized, msgBadCredentials)
	}
	if !s.hasher.Verify(plainPassword, user.PasswordHash) {
		return nil, newError(ErrUnauthorized, msgBadCredentials)
	}

	tok, exp, err := s.tokens.Issue(user.Email, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.Token{AccessToken: tok, TokenType: "bearer", ExpiresAt: exp}, nil
}

// CurrentUser resolves the user a bearer token was issued to.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.log.WithField("error", err.Error()).Debug("token rejected")
		return nil, newError(ErrUnauthorized, msgInvalidCredentials)
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrUnauthorized, msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
