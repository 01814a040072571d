package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/repository"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// AdminStore is the persistence interface the auth service works against.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// AuthService verifies admin credentials and issues session tokens.
type AuthService struct {
	admins AdminStore
	tokens *utils.TokenIssuer
}

// NewAuthService constructs an AuthService.
func NewAuthService(admins AdminStore, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{admins: admins, tokens: tokens}
}

// Signup registers a new admin account and returns a fresh session token.
// The role is always "admin"; callers cannot supply another one.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.admins.GetByEmail(ctx, email); err == nil && existing != nil {
		return "", utils.ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	admin := &models.Admin{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if repository.IsUniqueViolation(err) {
			return "", utils.ErrEmailRegistered
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create admin")
		return "", err
	}

	return s.tokens.Generate(admin.ID, admin.Role)
}

// Login verifies credentials and returns a session token. Unknown emails
// and bad passwords are reported as distinct errors, matching the panel's
// wire contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", utils.ErrAdminNotFound
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to look up admin")
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	log.Info().Str("email", email).Msg("Login successful")
	return s.tokens.Generate(admin.ID, admin.Role)
}
