// Package adminbus provides business access to the managers that operate
// tenant sites and the platform console.
package adminbus

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/otel"
	"golang.org/x/crypto/bcrypt"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound              = errors.New("admin not found")
	ErrUniqueEmail           = errors.New("email is not unique")
	ErrAuthenticationFailure = errors.New("authentication failed")
	ErrDisabled              = errors.New("account is disabled")
)

// Storer defines the behavior required by the adminbus to persist and
// retrieve admin data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, adm Admin) error
	Update(ctx context.Context, adm Admin) error
	Delete(ctx context.Context, adm Admin) error
	QueryByID(ctx context.Context, adminID uuid.UUID) (Admin, error)
	QueryByEmail(ctx context.Context, email mail.Address) (Admin, error)
	QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]Admin, error)
}

// Core manages the set of APIs for admin access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for admin api access.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create adds a new admin to the system.
func (c *Core) Create(ctx context.Context, na NewAdmin) (Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.create")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(na.Password.Plain()), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, fmt.Errorf("generateFromPassword: %w", err)
	}

	now := time.Now()

	adm := Admin{
		ID:           uuid.New(),
		ClientID:     na.ClientID,
		Email:        na.Email,
		PasswordHash: hash,
		FullName:     na.FullName,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storer.Create(ctx, adm); err != nil {
		return Admin{}, fmt.Errorf("create: %w", err)
	}

	return adm, nil
}

// Update modifies data about an admin.
func (c *Core) Update(ctx context.Context, adm Admin, ua UpdateAdmin) (Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.update")
	defer span.End()

	if ua.Email != nil {
		adm.Email = *ua.Email
	}

	if ua.FullName != nil {
		adm.FullName = *ua.FullName
	}

	if ua.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(ua.Password.Plain()), bcrypt.DefaultCost)
		if err != nil {
			return Admin{}, fmt.Errorf("generateFromPassword: %w", err)
		}
		adm.PasswordHash = hash
	}

	if ua.Enabled != nil {
		adm.Enabled = *ua.Enabled
	}

	adm.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, adm); err != nil {
		return Admin{}, fmt.Errorf("update: %w", err)
	}

	return adm, nil
}

// Delete removes the specified admin.
func (c *Core) Delete(ctx context.Context, adm Admin) error {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, adm); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// QueryByID finds the admin by the specified ID.
func (c *Core) QueryByID(ctx context.Context, adminID uuid.UUID) (Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.queryByID")
	defer span.End()

	adm, err := c.storer.QueryByID(ctx, adminID)
	if err != nil {
		return Admin{}, fmt.Errorf("query: adminID[%s]: %w", adminID, err)
	}

	return adm, nil
}

// QueryByEmail finds the admin by a specified email.
func (c *Core) QueryByEmail(ctx context.Context, email mail.Address) (Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.queryByEmail")
	defer span.End()

	adm, err := c.storer.QueryByEmail(ctx, email)
	if err != nil {
		return Admin{}, fmt.Errorf("query: email[%s]: %w", email, err)
	}

	return adm, nil
}

// QueryByClientID returns the admins bound to the specified tenant.
func (c *Core) QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.queryByClientID")
	defer span.End()

	adms, err := c.storer.QueryByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("query: clientID[%s]: %w", clientID, err)
	}

	return adms, nil
}

// Authenticate finds an admin by email and verifies the password against
// the stored bcrypt hash. A disabled account fails with ErrDisabled so the
// caller can surface it distinctly from bad credentials.
func (c *Core) Authenticate(ctx context.Context, email mail.Address, password string) (Admin, error) {
	ctx, span := otel.AddSpan(ctx, "business.adminbus.authenticate")
	defer span.End()

	adm, err := c.QueryByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Admin{}, fmt.Errorf("query: email[%s]: %w", email.Address, ErrAuthenticationFailure)
		}
		return Admin{}, fmt.Errorf("query: email[%s]: %w", email.Address, err)
	}

	if err := bcrypt.CompareHashAndPassword(adm.PasswordHash, []byte(password)); err != nil {
		return Admin{}, fmt.Errorf("compareHashAndPassword: %w", ErrAuthenticationFailure)
	}

	if !adm.Enabled {
		return Admin{}, ErrDisabled
	}

	return adm, nil
}
