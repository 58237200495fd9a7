package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

// User-facing messages for the two expected authentication failures. The
// credential message is shown verbatim on the login form.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// Auth implements the authenticate action against an injected identity
// verifier.
type Auth struct {
	verifier     model.IdentityVerifier
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates the auth service.
func NewAuth(
	verifier model.IdentityVerifier,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		verifier:     verifier,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Authenticate verifies the submitted credentials. On success it returns a
// session token and an empty message. A credential rejection or provider
// fault maps to a user-facing message with a nil error; anything the
// verifier returns that is not an *model.AuthError propagates unchanged.
func (s *Auth) Authenticate(ctx context.Context, email, password string) (token string, message string, err error) {
	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		var authErr *model.AuthError
		if !errors.As(err, &authErr) {
			return "", "", err
		}

		switch authErr.Kind {
		case model.AuthErrorCredential:
			s.logger.Info("Auth service: credentials rejected",
				"email", email)
			return "", MsgInvalidCredentials, nil
		default:
			s.logger.Error("Auth service: identity provider failure",
				"email", email,
				"error", authErr.Error())
			return "", MsgSomethingWentWrong, nil
		}
	}

	token, err = s.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Info("Auth service: user authenticated",
		"user_id", user.ID)

	return token, "", nil
}
