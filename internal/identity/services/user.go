// Package services contains identity-side business logic. This file
// implements UserService: registration, login, token resolution, and
// profile lookup for an already-authenticated caller.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/identity/auth"
	"github.com/dmitrijs2005/taskmesh/internal/identity/config"
	"github.com/dmitrijs2005/taskmesh/internal/identity/models"
	"github.com/dmitrijs2005/taskmesh/internal/identity/repositories/repomanager"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 2
	minPasswordLength = 6
)

// UserService provides the identity operations:
//   - Register: validate and create users, returning a signed token
//   - Login: verify credentials and mint a token
//   - ResolveToken: map a bearer token back to its user
//   - Me: load the profile of an authenticated user
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and identity config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		logger:                logger,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// validateNewUser checks the registration payload and reports every
// violation at once rather than stopping at the first.
func validateNewUser(username, password, email string) error {
	var violations []common.FieldViolation

	if utf8.RuneCountInString(username) < minUsernameLength {
		violations = append(violations, common.FieldViolation{
			Field:   "username",
			Message: fmt.Sprintf("must be at least %d characters", minUsernameLength),
		})
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		violations = append(violations, common.FieldViolation{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, common.FieldViolation{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}

	if len(violations) > 0 {
		return &common.ValidationError{Violations: violations}
	}
	return nil
}

// Register validates the payload, rejects duplicate usernames and emails
// (username checked first), hashes the password, and stores the new user.
// The returned PublicUser carries a freshly signed token.
//
// Uniqueness is enforced twice: the lookups here give precise errors for the
// common case, and the unique indexes in the store stay authoritative when
// two registrations race. Either path yields the same ConflictError.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*models.PublicUser, error) {
	if err := validateNewUser(username, password, email); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, &common.ConflictError{Field: "username"}
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, &common.ConflictError{Field: "email"}
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if _, err := repo.Create(ctx, user); err != nil {
		var conflictErr *common.ConflictError
		if errors.As(err, &conflictErr) {
			return nil, conflictErr
		}
		s.logger.Error(ctx, "creating user", "error", err)
		return nil, common.ErrInternal
	}

	return s.withToken(user)
}

// Login verifies the email/password pair and, on success, returns the user
// with a new token. An unknown email and a wrong password are
// indistinguishable to the caller; the actual cause is logged here.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info(ctx, "login rejected", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "loading user by email", "error", err)
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info(ctx, "login rejected", "reason", "password mismatch", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	return s.withToken(user)
}

// ResolveToken verifies a bearer token and returns the user it identifies.
// No new token is issued; the presented one stays valid until expiry.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.PublicUser, error) {
	claims, err := auth.VerifyToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "loading user by id", "error", err)
		return nil, common.ErrInternal
	}

	return user.Public(), nil
}

// Me returns the current profile for an already-authenticated user id. The
// record is re-read from the store so renames and deletions are visible.
func (s *UserService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "loading user by id", "error", err)
		return nil, common.ErrInternal
	}
	return user.Public(), nil
}

func (s *UserService) withToken(user *models.User) (*models.PublicUser, error) {
	token, err := auth.IssueToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(context.Background(), "signing token", "error", err)
		return nil, common.ErrInternal
	}
	pub := user.Public()
	pub.Token = token
	return pub, nil
}
