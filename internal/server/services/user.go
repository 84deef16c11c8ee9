// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login, including minting JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/auth"
	"github.com/dmitrijs2005/ordertrack/internal/server/config"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
	"github.com/dmitrijs2005/ordertrack/internal/server/repositories/repomanager"
)

// dummyHash is a valid bcrypt verifier for a password nobody holds. Login
// compares against it when the username is unknown so that unknown-user and
// wrong-password attempts cost the same amount of work.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserService provides authentication-related operations:
// - Register: create accounts with hashed credentials
// - Login: verify credentials and mint an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	passwordHashCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		passwordHashCost:            cfg.PasswordHashCost,
	}
}

// Register creates a new account with the given username and password.
// Empty fields are a validation error; a taken username surfaces as
// common.ErrorAlreadyExists with the original account untouched.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password, s.passwordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{UserName: username, PasswordHash: hash}
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

// Login verifies username/password and, on success, returns a signed access
// token plus the account. Unknown usernames and wrong passwords both come
// back as common.ErrorUnauthorized so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn the same bcrypt work as a real comparison.
			auth.CheckPassword(password, dummyHash)
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}
