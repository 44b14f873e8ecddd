package auth

import "context"

// UseCase defines the business logic interface for the auth domain.
// Token issuance and verification belong to the backend; this side only
// obtains a token and keeps it in the session.
type UseCase interface {
	// Login authenticates against the backend and stores the token.
	Login(ctx context.Context, input LoginInput) (User, error)

	// Signup creates an account and stores the returned token.
	Signup(ctx context.Context, input SignupInput) (User, error)

	// Logout clears the stored session. No backend call.
	Logout(ctx context.Context) error
}
