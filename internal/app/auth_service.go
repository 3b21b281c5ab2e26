// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nutrilog/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignupInput is the payload for creating an account.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the payload for password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is a signed bearer token together with the user it identifies.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService handles accounts and bearer tokens.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenIssuer
	log    *zap.Logger
	cost   int
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    log,
		cost:   bcrypt.DefaultCost,
	}
}

// Signup creates an account and returns a token for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, in.Name, in.Email, string(hash))
	if errors.Is(err, domain.ErrConflict) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user signed up", zap.Int64("user_id", user.ID))

	return s.session(user)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// LoginWithUser issues a token for an identity already verified elsewhere
// (e.g. via SSO), provisioning an account without a password on first use.
func (s *AuthService) LoginWithUser(ctx context.Context, email, name string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, invalid("email", "required")
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		user, err = s.users.Create(ctx, name, email, "")
		if errors.Is(err, domain.ErrConflict) {
			// Lost a race with a concurrent first login.
			user, err = s.users.GetByEmail(ctx, email)
		}
		if err != nil {
			return nil, fmt.Errorf("provision user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("provision user: %w", ErrNotFound)
		}
		s.log.Info("user provisioned via sso", zap.Int64("user_id", user.ID))
	}

	return s.session(user)
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		s.log.Error("issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
