package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

var _ model.IdentityVerifier = (*PasswordVerifier)(nil)

// PasswordVerifier checks submitted credentials against stored bcrypt
// hashes. An unknown email and a wrong password are both reported as
// credential errors so callers cannot probe which emails exist.
type PasswordVerifier struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewPasswordVerifier creates a PasswordVerifier backed by the user store.
func NewPasswordVerifier(userStore model.UserStore, logger *logger.Logger) *PasswordVerifier {
	return &PasswordVerifier{
		userStore: userStore,
		logger:    logger,
	}
}

func (v *PasswordVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	user, err := v.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewCredentialError(err)
		}
		v.logger.Error("Identity verifier: user lookup failed",
			"email", email,
			"error", err.Error())
		return model.User{}, model.NewProviderError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.NewCredentialError(err)
	}

	return user, nil
}
