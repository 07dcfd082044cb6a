package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/MKhiriev/go-lightpack/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminSubject is the "sub" claim of every token issued by the daemon. There
// is a single operator account.
const AdminSubject = "admin"

// authService is the concrete implementation of AuthService.
// It checks the operator password against a bcrypt hash and manages the JWT
// lifecycle of the REST API.
type authService struct {
	// passwordHash is the bcrypt hash of the admin password. Empty disables
	// authentication.
	passwordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		passwordHash:  []byte(cfg.AdminPasswordHash),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (a *authService) Enabled() bool {
	return len(a.passwordHash) > 0
}

// Login verifies password and issues a token for [AdminSubject].
//
// Returns:
//   - ErrAuthDisabled if no admin password hash is configured.
//   - ErrInvalidDataProvided if password is empty.
//   - ErrWrongPassword if the password does not match the hash.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}
	if password == "" {
		log.Error().Msg("empty password provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().Msg("wrong password")
			return models.Token{}, ErrWrongPassword
		}
		log.Err(err).Msg("admin password hash is unusable")
		return models.Token{}, fmt.Errorf("password check failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, AdminSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
