package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

// User implements the add-user action.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

// NewUser creates the user service.
func NewUser(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// AddUser registers a new user with a salted password hash. The plaintext
// password and its confirmation must match byte for byte before hashing;
// on mismatch nothing is persisted and ErrPasswordMismatch is returned,
// which the HTTP layer masks as success. Store errors,
// including the unique email constraint, propagate to the caller.
func (s *User) AddUser(ctx context.Context, params form.User) error {
	if params.Password != params.PasswordConfirm {
		s.logger.Warn("User service: password confirmation mismatch, aborting registration",
			"email", params.Email)
		return model.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return err
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("User service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return err
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID,
		"email", user.Email)

	return nil
}
