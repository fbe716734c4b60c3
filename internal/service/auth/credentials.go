package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studious/internal/config"
	"github.com/phrazzld/studious/internal/platform/logger"
)

// CredentialChecker guards the single configured account.
type CredentialChecker struct {
	username     string
	passwordHash string
	verifier     PasswordVerifier
	logger       *slog.Logger
}

// NewCredentialChecker creates a checker for the account in cfg. When only a
// plaintext password is configured it is hashed here and never retained.
func NewCredentialChecker(
	cfg config.AuthConfig,
	verifier PasswordVerifier,
	logger *slog.Logger,
) (*CredentialChecker, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("username must be configured")
	}
	if verifier == nil {
		verifier = NewBcryptVerifier()
	}
	if logger == nil {
		logger = slog.Default()
	}

	hash := cfg.PasswordHash
	if hash == "" {
		if cfg.Password == "" {
			return nil, fmt.Errorf("password or password hash must be configured")
		}
		var err error
		hash, err = HashPassword(cfg.Password, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to hash configured password: %w", err)
		}
	}

	return &CredentialChecker{
		username:     cfg.Username,
		passwordHash: hash,
		verifier:     verifier,
		logger:       logger.With(slog.String("component", "credential_checker")),
	}, nil
}

// Check returns nil when username and password match the configured
// account, and ErrInvalidCredentials otherwise.
func (c *CredentialChecker) Check(ctx context.Context, username, password string) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	// Compare the hash even for an unknown user.
	passErr := c.verifier.Compare(c.passwordHash, password)

	if !userOK || passErr != nil {
		log.Info("sign-in rejected")
		return ErrInvalidCredentials
	}

	log.Debug("sign-in accepted")
	return nil
}
