package model

import (
	"context"
	"fmt"
)

// IdentityVerifier checks a submitted credential pair against the identity
// store. Failures are reported as *AuthError so callers can tell an expected
// rejection from a provider fault.
type IdentityVerifier interface {
	Verify(ctx context.Context, email, password string) (User, error)
}

// PasswordHasher produces salted one-way digests of plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// AuthErrorKind tags the two expected authentication failure classes.
type AuthErrorKind string

const (
	// AuthErrorCredential means the provider rejected the credentials.
	AuthErrorCredential AuthErrorKind = "credential"
	// AuthErrorProvider means the provider itself failed.
	AuthErrorProvider AuthErrorKind = "provider"
)

// AuthError is a tagged authentication failure. Anything the verifier
// returns that is not an *AuthError propagates to the caller uncaught.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (%s): %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewCredentialError wraps err as an expected credential rejection.
func NewCredentialError(err error) *AuthError {
	return &AuthError{Kind: AuthErrorCredential, Err: err}
}

// NewProviderError wraps err as an unexpected provider failure.
func NewProviderError(err error) *AuthError {
	return &AuthError{Kind: AuthErrorProvider, Err: err}
}
