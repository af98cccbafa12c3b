// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

const defaultLoginDelay = 1500 * time.Millisecond

// defaultFeedStopPINs are the accepted stop-feed confirmations when no
// bcrypt hashes are configured. A deliberately weak secondary check,
// preserved from the original workflow.
var defaultFeedStopPINs = []string{"admin", "1234"}

// authService is the concrete implementation of AuthService.
//
// The gate is simulated: any non-empty credentials pass after a fixed delay
// and no credential store exists. What it does issue for real is the signed
// session JWT the rest of the API trusts for identity and role capability.
type authService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	loginDelay    time.Duration

	// pinHashes are bcrypt hashes of the accepted stop-feed PINs.
	pinHashes [][]byte

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg. When no PIN hashes are
// configured the fixed default PINs are hashed at startup so the comparison
// path is identical either way.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	delay := cfg.LoginDelay
	if delay == 0 {
		delay = defaultLoginDelay
	}

	hashes := make([][]byte, 0, len(cfg.FeedStopPINHashes))
	for _, h := range cfg.FeedStopPINHashes {
		hashes = append(hashes, []byte(h))
	}
	if len(hashes) == 0 {
		for _, pin := range defaultFeedStopPINs {
			h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
			if err != nil {
				logger.Err(err).Msg("hashing default feed-stop pin failed")
				continue
			}
			hashes = append(hashes, h)
		}
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		loginDelay:    delay,
		pinHashes:     hashes,
		logger:        logger,
	}
}

// Login implements [AuthService].
//
// The operator named "admin" (case-insensitive) receives the ADMIN role;
// everyone else is an OFFICER.
//
// Returns ErrInvalidCredentials on an empty login or password, the context
// error if the caller gives up during the simulated security check, or a
// wrapped signing error.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("empty credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	// simulated security check
	if a.loginDelay > 0 {
		select {
		case <-ctx.Done():
			return models.Token{}, ctx.Err()
		case <-time.After(a.loginDelay):
		}
	}

	role := models.RoleOfficer
	if strings.EqualFold(user.Login, "admin") {
		role = models.RoleAdmin
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Login, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("session token generation failed")
		return models.Token{}, fmt.Errorf("session token generation failed: %w", err)
	}

	log.Info().Str("login", user.Login).Str("role", role).Msg("operator authenticated")
	return token, nil
}

// ParseToken implements [AuthService]. Expired tokens are reported as
// ErrTokenIsExpired; any other validation failure is returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("session token validation failed: %w", err)
	}
	return token, nil
}

// AuthorizeFeedStop implements [AuthService].
func (a *authService) AuthorizeFeedStop(ctx context.Context, pin string) error {
	log := logger.FromContext(ctx)

	for _, hash := range a.pinHashes {
		if bcrypt.CompareHashAndPassword(hash, []byte(pin)) == nil {
			return nil
		}
	}

	log.Warn().Msg("feed stop rejected: invalid pin")
	return ErrInvalidPIN
}
