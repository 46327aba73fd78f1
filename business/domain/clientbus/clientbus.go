// Package clientbus provides business access to the tenant clients and is
// the single source of truth for resolving a request host name to a tenant.
package clientbus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
	"github.com/studygate/studygate/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound        = errors.New("client not found")
	ErrDomainNotFound  = errors.New("no client registered for domain")
	ErrAmbiguousDomain = errors.New("more than one client registered for domain")
	ErrUniqueDomain    = errors.New("domain is not unique")
)

// Storer defines the behavior required by the clientbus to persist and
// retrieve client data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, cl Client) error
	Update(ctx context.Context, cl Client) error
	Delete(ctx context.Context, cl Client) error
	Query(ctx context.Context, orderBy order.By, page page.Page) ([]Client, error)
	Count(ctx context.Context) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID) (Client, error)
	QueryByDomain(ctx context.Context, domain string) (Client, error)
}

// Core manages the set of APIs for client access.
type Core struct {
	log    *logger.Logger
	storer Storer
}

// NewCore constructs a core for client api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newWithTx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Create adds a new client to the system.
func (c *Core) Create(ctx context.Context, nc NewClient) (Client, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.create")
	defer span.End()

	now := time.Now()

	cl := Client{
		ID:        uuid.New(),
		Name:      nc.Name,
		Domain:    normalizeDomain(nc.Domain),
		LogoURL:   nc.LogoURL,
		Theme:     nc.Theme,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, cl); err != nil {
		return Client{}, fmt.Errorf("create: %w", err)
	}

	return cl, nil
}

// Update modifies data about a client.
func (c *Core) Update(ctx context.Context, cl Client, uc UpdateClient) (Client, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.update")
	defer span.End()

	if uc.Name != nil {
		cl.Name = *uc.Name
	}

	if uc.Domain != nil {
		cl.Domain = normalizeDomain(*uc.Domain)
	}

	if uc.LogoURL != nil {
		cl.LogoURL = *uc.LogoURL
	}

	if uc.Theme != nil {
		cl.Theme = *uc.Theme
	}

	if uc.Deployment != nil {
		cl.Deployment = *uc.Deployment
	}

	if uc.Enabled != nil {
		cl.Enabled = *uc.Enabled
	}

	cl.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, cl); err != nil {
		return Client{}, fmt.Errorf("update: %w", err)
	}

	return cl, nil
}

// Delete removes the specified client. All tenant scoped rows cascade in
// the database.
func (c *Core) Delete(ctx context.Context, cl Client) error {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, cl); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing clients.
func (c *Core) Query(ctx context.Context, orderBy order.By, page page.Page) ([]Client, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.query")
	defer span.End()

	clients, err := c.storer.Query(ctx, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return clients, nil
}

// Count returns the total number of clients.
func (c *Core) Count(ctx context.Context) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.count")
	defer span.End()

	return c.storer.Count(ctx)
}

// QueryByID finds the client by the specified ID.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID) (Client, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.queryByID")
	defer span.End()

	cl, err := c.storer.QueryByID(ctx, clientID)
	if err != nil {
		return Client{}, fmt.Errorf("query: clientID[%s]: %w", clientID, err)
	}

	return cl, nil
}

// ResolveDomain translates a host name into the owning client. The lookup is
// pure and idempotent: the same host resolves to the same client for the
// lifetime of the client row. Zero matches fail with ErrDomainNotFound and
// callers must treat that as fatal, never falling back to a default tenant.
func (c *Core) ResolveDomain(ctx context.Context, host string) (Client, error) {
	ctx, span := otel.AddSpan(ctx, "business.clientbus.resolveDomain")
	defer span.End()

	cl, err := c.storer.QueryByDomain(ctx, normalizeDomain(host))
	if err != nil {
		return Client{}, fmt.Errorf("queryByDomain[%s]: %w", host, err)
	}

	return cl, nil
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
