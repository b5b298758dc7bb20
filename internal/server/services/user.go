// Package services contains server-side business logic. This file implements
// UserService, which handles signup and login and mints JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkravets/tasklist/internal/common"
	"github.com/mkravets/tasklist/internal/server/auth"
	"github.com/mkravets/tasklist/internal/server/config"
	"github.com/mkravets/tasklist/internal/server/models"
	"github.com/mkravets/tasklist/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Signup: validate and create users, storing only a password hash
// - Login: verify credentials and mint a signed access token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup creates a new account. All three fields are required
// (common.ErrorValidation); a duplicate email yields common.ErrorAlreadyExists.
// The plaintext password is hashed before it reaches the repository.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed token and
// the user's display name. An unknown email and a wrong password are
// indistinguishable to the caller, so account existence cannot be probed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrorUnauthorized
		}
		return "", "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", "", common.ErrorInternal
	}

	return token, user.Name, nil
}
