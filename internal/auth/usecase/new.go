package usecase

import (
	"context"

	"pharmacy-inventory-console/internal/auth"
	"pharmacy-inventory-console/internal/session"
	pkgLog "pharmacy-inventory-console/pkg/log"
	"pharmacy-inventory-console/pkg/pharmd"
)

type implUseCase struct {
	l       pkgLog.Logger
	client  *pharmd.Client
	session *session.Session
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, client *pharmd.Client, sess *session.Session) *implUseCase {
	return &implUseCase{
		l:       l,
		client:  client,
		session: sess,
	}
}

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.User, error) {
	user, err := uc.client.Login(ctx, input.Email, input.Password)
	if err != nil {
		return auth.User{}, err
	}

	if err := uc.session.Set(user.AccessToken, user.Email); err != nil {
		uc.l.Warnf(ctx, "auth: session persist failed: %v", err)
	}

	return auth.User{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (uc *implUseCase) Signup(ctx context.Context, input auth.SignupInput) (auth.User, error) {
	user, err := uc.client.Signup(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return auth.User{}, err
	}

	if err := uc.session.Set(user.AccessToken, user.Email); err != nil {
		uc.l.Warnf(ctx, "auth: session persist failed: %v", err)
	}

	return auth.User{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	return uc.session.Clear()
}
