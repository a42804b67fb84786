// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/legaldoc-app/legaldoc-server/internal/config"
	"github.com/legaldoc-app/legaldoc-server/internal/logger"
	"github.com/legaldoc-app/legaldoc-server/internal/store"
	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
//
// Log entries record outcome categories only; plain-text passwords, stored
// digests, and raw token strings never appear in log output.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost controls the work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = utils.DefaultBcryptCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates the required fields, hashes the password with bcrypt at the
// configured cost, and delegates persistence to the UserRepository. The
// INSERT itself enforces username and email uniqueness, so concurrent
// registrations racing on the same identity resolve atomically in the
// database.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided naming the missing fields.
//   - store.ErrUserAlreadyExists (wrapped) if the username or email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, registration models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.TrimSpace(registration.Email)

	if missing := missingRegistrationFields(registration); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: missing fields: %s", ErrInvalidDataProvided, strings.Join(missing, ", "))
	}

	passwordHash, err := utils.HashPassword(registration.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     registration.Username,
		Email:        registration.Email,
		Name:         registration.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", registration.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing account.
//
// The identifier may be a username or an email address; the lookup treats
// email comparison as case-insensitive. When the lookup misses, the supplied
// password is still verified against a fixed dummy digest so that the miss
// path and the wrong-password path cost roughly the same amount of time.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if identifier or password is empty.
//   - store.ErrNoUserWasFound (wrapped) if no account matches the identifier.
//   - ErrWrongPassword if the password does not match the stored digest.
func (a *authService) Login(ctx context.Context, identifier string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		// equalize timing with the found-user path before reporting the miss
		if errors.Is(err, store.ErrNoUserWasFound) {
			_, _ = utils.VerifyPassword(password, utils.DummyPasswordDigest)
		}
		log.Err(err).Msg("user search by identifier failed")
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	match, err := utils.VerifyPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires tokenDuration after issue.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, time.Now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing algorithm, and the issuer claim. An expired token is reported
// as ErrTokenIsExpired; every other validation failure (bad signature, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, time.Now())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser returns the account with the given internal identifier.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

func missingRegistrationFields(registration models.RegisterRequest) []string {
	var missing []string
	if registration.Username == "" {
		missing = append(missing, "username")
	}
	if registration.Email == "" || !strings.Contains(registration.Email, "@") {
		missing = append(missing, "email")
	}
	if registration.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
