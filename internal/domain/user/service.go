package user

import "context"

// IdentityService resolves the signed-in user through GET /api/auth/me
type IdentityService interface {
	// Current returns the identity for the session in ctx. Failures yield a
	// pending identity together with the error.
	Current(ctx context.Context) (Identity, error)
}
