package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/phrazzld/studious/internal/config"
	"github.com/phrazzld/studious/internal/platform/logger"
	"github.com/phrazzld/studious/internal/service/auth"
)

// CredentialChecker verifies a username and password.
type CredentialChecker interface {
	Check(ctx context.Context, username, password string) error
}

// AuthHandler handles the sign-in gate.
type AuthHandler struct {
	credentials CredentialChecker
	jwtService  auth.JWTService
	authConfig  *config.AuthConfig
	logger      *slog.Logger
	timeFunc    func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	credentials CredentialChecker,
	jwtService auth.JWTService,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		authConfig:  authConfig,
		logger:      logger.With(slog.String("component", "auth_handler")),
		timeFunc:    time.Now,
	}
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignInRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	if err := h.credentials.Check(r.Context(), req.Username, req.Password); err != nil {
		HandleAPIError(w, r, err, "sign-in")
		return
	}

	issuedAt := h.timeFunc()
	token, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		HandleAPIError(w, r, err, "failed to generate session token")
		return
	}

	lifetime := time.Duration(h.authConfig.TokenLifetimeMinutes) * time.Minute
	log.Info("signed in")
	shared.RespondWithJSON(w, r, http.StatusOK, SignInResponse{
		Token:     token,
		ExpiresAt: issuedAt.Add(lifetime).UTC().Format(time.RFC3339),
	})
}
