package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

// tokenTTL bounds how long an issued session token stays valid.
const tokenTTL = 24 * time.Hour

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users  *repository.UserRepository
	secret []byte
}

func NewAuthService(users *repository.UserRepository, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Register creates a new user. Email is the unique login key; a duplicate
// registration fails with ErrEmailTaken. New users start unrated.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("AuthService.Register: %w", err)
	}

	now := model.Now()
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Rating:    0,
		Reviews:   0,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("AuthService.Register: %w", err)
	}
	return u, nil
}

// Login checks credentials and returns the user together with a signed
// session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("AuthService.Login: %w", err)
	}
	if u.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", fmt.Errorf("AuthService.Login: %w", err)
	}
	return u, token, nil
}

func (s *AuthService) issueToken(u *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"name": u.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// GetUser loads a user profile by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("AuthService.GetUser: %w", err)
	}
	return u, nil
}

// UpdateAvatar stores a new avatar data URI for the user.
func (s *AuthService) UpdateAvatar(ctx context.Context, userID, avatar string) error {
	if err := s.users.UpdateAvatar(ctx, userID, avatar); err != nil {
		return fmt.Errorf("AuthService.UpdateAvatar: %w", err)
	}
	return nil
}
