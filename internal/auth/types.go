package auth

// LoginInput is the input for a backend login.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput is the input for account creation.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// User describes the authenticated account, without the token.
type User struct {
	ID       int
	Username string
	Email    string
}
