// Package authapp provides the login and logout handlers.
package authapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	auth *auth.Auth
}

func newApp(ath *auth.Auth) *app {
	return &app{
		auth: ath,
	}
}

// login authenticates the credentials and returns a token bound to a fresh
// server side session. A disabled account with correct credentials is
// reported distinctly from bad credentials.
func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var req Login
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("parsing email: %w", err))
	}

	adm, token, err := a.auth.Login(ctx, *addr, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, adminbus.ErrDisabled):
			return errs.New(errs.Unauthenticated, adminbus.ErrDisabled)
		case errors.Is(err, adminbus.ErrAuthenticationFailure):
			return errs.New(errs.Unauthenticated, adminbus.ErrAuthenticationFailure)
		default:
			return errs.Errorf(errs.InternalOnlyLog, "login: email[%s]: %s", req.Email, err)
		}
	}

	return toAppSession(adm, token)
}

// logout deletes the session behind the presented token. The token stops
// working immediately even though its signature is still valid.
func (a *app) logout(ctx context.Context, r *http.Request) web.Encoder {
	claims := mid.GetClaims(ctx)

	if err := a.auth.Logout(ctx, claims); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "logout: sid[%s]: %s", claims.SessionID, err)
	}

	return nil
}
