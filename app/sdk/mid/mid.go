// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/business/sdk/web"
)

func checkIsError(e web.Encoder) error {
	err, hasError := e.(error)
	if hasError {
		return err
	}

	return nil
}

// =============================================================================

type ctxKey int

const (
	claimKey ctxKey = iota + 1
	adminIDKey
	clientIDKey
)

func setClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimKey, claims)
}

// GetClaims returns the claims from the context.
func GetClaims(ctx context.Context) auth.Claims {
	v, ok := ctx.Value(claimKey).(auth.Claims)
	if !ok {
		return auth.Claims{}
	}
	return v
}

func setAdminID(ctx context.Context, adminID uuid.UUID) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// GetAdminID returns the authenticated admin id from the context.
func GetAdminID(ctx context.Context) (uuid.UUID, error) {
	v, ok := ctx.Value(adminIDKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("admin id not found in context")
	}

	return v, nil
}

func setClientID(ctx context.Context, clientID uuid.UUID) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientID returns the client id scoping the request. It is set by
// TenantResolve on the public routes and by Authenticate on the admin
// routes.
func GetClientID(ctx context.Context) (uuid.UUID, error) {
	v, ok := ctx.Value(clientIDKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("client id not found in context")
	}

	return v, nil
}
