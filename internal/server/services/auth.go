// Package services contains server-side business logic. This file implements
// AuthService: password authentication and the opaque bearer-token lifecycle
// (issue at login, resolve on every authenticated request).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/server/auth"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/repositories/repomanager"
)

// dummyHash is a valid bcrypt hash compared against when the email does not
// resolve, so a failed login costs the same whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService authenticates users by password and manages bearer tokens.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAuthService constructs an AuthService using the shared repositories.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager) *AuthService {
	return &AuthService{db: db, repomanager: m}
}

// AuthenticateByPassword resolves email+password to a user. Unknown email
// and wrong password both return common.ErrorUnauthorized; callers cannot
// tell which one failed.
func (s *AuthService) AuthenticateByPassword(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(password, dummyHash)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

// IssueToken generates a random token value, persists it for the user and
// returns the stored token. The user must already have an identifier.
func (s *AuthService) IssueToken(ctx context.Context, user *models.User) (*models.Token, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("%w: user has no id", common.ErrorInternal)
	}

	value, err := auth.NewTokenValue()
	if err != nil {
		return nil, fmt.Errorf("error generating token value: %w", err)
	}

	repo := s.repomanager.Tokens(s.db)
	token, err := repo.Create(ctx, &models.Token{Value: value, UserID: user.ID})
	if err != nil {
		return nil, fmt.Errorf("error storing token: %w", err)
	}
	return token, nil
}

// ResolveToken looks a bearer token up by exact value match and returns the
// owning user. Unknown values fail closed with common.ErrorUnauthorized.
// Tokens never expire, so there is no validity check beyond the lookup.
func (s *AuthService) ResolveToken(ctx context.Context, value string) (*models.User, error) {
	if value == "" {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.repomanager.Tokens(s.db).FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching token: %w", err)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// token outlived its user somehow; fail closed
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading token user: %w", err)
	}
	return user, nil
}
