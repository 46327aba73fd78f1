package mid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/sdk/web"
)

// Authenticate validates the JWT from the Authorization header and the
// server side session behind it. On success the admin id and the client id
// from the claims are stored in the context. Platform owners carry no
// client id, so their requests see uuid.Nil.
func Authenticate(a *auth.Auth) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			authStr := r.Header.Get("authorization")
			if authStr == "" {
				return errs.New(errs.Unauthenticated, errors.New("missing authorization header"))
			}

			parts := strings.Split(authStr, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return errs.New(errs.Unauthenticated, errors.New("expected authorization header format: Bearer <token>"))
			}

			claims, err := a.Authenticate(ctx, authStr)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			adminID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return errs.New(errs.Unauthenticated, fmt.Errorf("invalid admin id: %w", err))
			}

			var clientID uuid.UUID

			if claims.ClientID != "" {
				clientID, err = uuid.Parse(claims.ClientID)
				if err != nil {
					return errs.New(errs.Unauthenticated, fmt.Errorf("invalid client id: %w", err))
				}
			}

			ctx = setAdminID(ctx, adminID)
			ctx = setClientID(ctx, clientID)
			ctx = setClaims(ctx, claims)

			return next(ctx, r)
		}

		return h
	}

	return m
}
