package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/auth"
	"github.com/avasiljevs/itemvault/internal/server/authz"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/repositories/repomanager"
)

const minPasswordLength = 8

// UserService implements user CRUD: public self-registration, superuser
// provisioning, self-service ("me") operations and the admin by-id paths.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the shared repositories.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// RegisterInput is the public signup payload.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// AdminCreateInput is the superuser provisioning payload. Unlike public
// signup it honors the activity/superuser flags and requires the password
// to be confirmed.
type AdminCreateInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	IsActive        bool
	IsSuperuser     bool
}

// UpdateProfileInput carries the self-service profile fields. The activity
// and superuser flags are deliberately absent.
type UpdateProfileInput struct {
	FullName string
	Email    string
}

// AdminUpdateInput carries everything a superuser may change on a user.
type AdminUpdateInput struct {
	FullName    string
	Email       string
	IsActive    bool
	IsSuperuser bool
}

func validateNewUser(fullName, email, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: full name must not be empty", common.ErrorValidation)
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed email", common.ErrorValidation)
	}
	return nil
}

// List returns all users. The endpoint serving it is public and unfiltered;
// that matches the documented behavior of the original system.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Register creates a user via public signup. The account always starts
// active and never as a superuser, regardless of what the client sent.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateNewUser(in.FullName, in.Email, in.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:       in.FullName,
		Email:          in.Email,
		IsActive:       true,
		IsSuperuser:    false,
		HashedPassword: hash,
	}
	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AdminCreate provisions a user on behalf of a superuser.
func (s *UserService) AdminCreate(ctx context.Context, actor *models.User, in AdminCreateInput) (*models.User, error) {
	if err := authz.CanCreateUser(actor); err != nil {
		return nil, err
	}
	if err := validateNewUser(in.FullName, in.Email, in.Password); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords did not match", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:       in.FullName,
		Email:          in.Email,
		IsActive:       in.IsActive,
		IsSuperuser:    in.IsSuperuser,
		HashedPassword: hash,
	}
	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSelf returns the actor's own record.
func (s *UserService) GetSelf(_ context.Context, actor *models.User) *models.User {
	return actor
}

// UpdateSelf replaces the actor's profile fields. Activity and superuser
// flags cannot be reached through this path.
func (s *UserService) UpdateSelf(ctx context.Context, actor *models.User, in UpdateProfileInput) (*models.User, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, fmt.Errorf("%w: full name must not be empty", common.ErrorValidation)
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}

	actor.FullName = in.FullName
	actor.Email = in.Email
	if err := s.repomanager.Users(s.db).Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// DeleteSelf removes the actor's own account. Tokens and items go with it.
func (s *UserService) DeleteSelf(ctx context.Context, actor *models.User) error {
	return s.repomanager.Users(s.db).Delete(ctx, actor.ID)
}

// ResetPassword replaces the actor's password hash after verifying the
// current password against the stored hash.
func (s *UserService) ResetPassword(ctx context.Context, actor *models.User, current, newPassword string) error {
	if !auth.VerifyPassword(current, actor.HashedPassword) {
		return fmt.Errorf("%w: current password did not match", common.ErrorValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	actor.HashedPassword = hash
	return s.repomanager.Users(s.db).Update(ctx, actor)
}

// GetByID returns a user record: the actor itself without further checks,
// anyone else only to a superuser. Existence is checked before policy.
func (s *UserService) GetByID(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if id == actor.ID {
		return actor, nil
	}

	target, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanReadUser(actor, id); err != nil {
		return nil, err
	}
	return target, nil
}

// UpdateByID updates a user record. When the target is the actor itself the
// call collapses to self-service semantics: profile fields only, flags
// untouched. Otherwise a superuser may change everything in the input.
func (s *UserService) UpdateByID(ctx context.Context, actor *models.User, id string, in AdminUpdateInput) (*models.User, error) {
	if id == actor.ID {
		return s.UpdateSelf(ctx, actor, UpdateProfileInput{FullName: in.FullName, Email: in.Email})
	}

	if strings.TrimSpace(in.FullName) == "" {
		return nil, fmt.Errorf("%w: full name must not be empty", common.ErrorValidation)
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		target, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authz.CanUpdateUser(actor, id); err != nil {
			return err
		}

		target.FullName = in.FullName
		target.Email = in.Email
		target.IsActive = in.IsActive
		target.IsSuperuser = in.IsSuperuser

		if err := repo.Update(ctx, target); err != nil {
			return err
		}
		updated = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByID removes another user's account. Self-deletion through this
// path is always refused; the me endpoint exists for that.
func (s *UserService) DeleteByID(ctx context.Context, actor *models.User, id string) error {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.CanDeleteUser(actor, id); err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// EnsureSuperuser provisions the bootstrap administrator account on first
// run. It is a no-op when a user with the configured email already exists.
func (s *UserService) EnsureSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching superuser: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:       "Initial Superuser",
		Email:          email,
		IsActive:       true,
		IsSuperuser:    true,
		HashedPassword: hash,
	}
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			// lost a race with another instance; the account exists now
			return repo.GetByEmail(ctx, email)
		}
		return nil, err
	}
	return created, nil
}
