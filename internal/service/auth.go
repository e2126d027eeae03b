package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pulse/internal/model"
	"pulse/internal/repository"
	"pulse/internal/token"
)

const minPasswordLen = 5

// RegisterInput carries the fields accepted on account creation.
type RegisterInput struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// AuthResult is returned from register and login: the account plus a token pair.
type AuthResult struct {
	User   *model.User `json:"user"`
	Tokens *token.Pair `json:"tokens"`
}

// AuthService defines account registration and session use cases.
type AuthService interface {
	// Register creates a user with an empty profile and signs in the new account.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login verifies credentials and issues a fresh token pair.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Logout revokes the given refresh token for the rest of its lifetime.
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	tokens    *token.Manager
	blacklist token.Blacklist
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, profiles repository.ProfileRepository, tokens *token.Manager, blacklist token.Blacklist) AuthService {
	return &authService{users: users, profiles: profiles, tokens: tokens, blacklist: blacklist}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if len(in.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if in.Password != in.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email, "")
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}
	taken, err = s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &model.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Every account gets an empty profile alongside it.
	if _, err := s.profiles.Create(ctx, &model.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Bio:       "",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &AuthResult{User: user, Tokens: pair}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		return ErrInvalidToken
	}
	if err := s.blacklist.Revoke(ctx, claims.Id, claims.Remaining()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
