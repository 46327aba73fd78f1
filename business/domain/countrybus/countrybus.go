// Package countrybus provides business access to country data. Every
// operation is scoped to the calling tenant.
package countrybus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound   = errors.New("country not found")
	ErrUniqueSlug = errors.New("slug is not unique for this client")
)

// Storer defines the behavior required by the countrybus to persist and
// retrieve country data. Implementations must filter every statement by
// the client id they are handed.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, ctry Country) error
	Update(ctx context.Context, ctry Country) error
	Delete(ctx context.Context, ctry Country) error
	Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]Country, error)
	Count(ctx context.Context, clientID uuid.UUID) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, countryID uuid.UUID) (Country, error)
	QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Country, error)
}

// Core manages the set of APIs for country access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for country api access.
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

// Create adds a new country to the specified tenant. The client id comes
// from the trusted request context, never from the caller payload.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nc NewCountry) (Country, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.create")
	defer span.End()

	now := time.Now()

	ctry := Country{
		ID:          uuid.New(),
		ClientID:    clientID,
		Name:        nc.Name,
		NameAr:      nc.NameAr,
		Slug:        nc.Slug,
		Description: nc.Description,
		ImageURL:    nc.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, ctry); err != nil {
		return Country{}, fmt.Errorf("create: %w", err)
	}

	return ctry, nil
}

// Update modifies data about a country.
func (c *Core) Update(ctx context.Context, ctry Country, uc UpdateCountry) (Country, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.update")
	defer span.End()

	if uc.Name != nil {
		ctry.Name = *uc.Name
	}

	if uc.NameAr != nil {
		ctry.NameAr = *uc.NameAr
	}

	if uc.Slug != nil {
		ctry.Slug = *uc.Slug
	}

	if uc.Description != nil {
		ctry.Description = *uc.Description
	}

	if uc.ImageURL != nil {
		ctry.ImageURL = *uc.ImageURL
	}

	ctry.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, ctry); err != nil {
		return Country{}, fmt.Errorf("update: %w", err)
	}

	return ctry, nil
}

// Delete removes the specified country.
func (c *Core) Delete(ctx context.Context, ctry Country) error {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, ctry); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing countries for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]Country, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.query")
	defer span.End()

	ctrys, err := c.storer.Query(ctx, clientID, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return ctrys, nil
}

// Count returns the total number of countries for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID)
}

// QueryByID finds the country by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, countryID uuid.UUID) (Country, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.queryByID")
	defer span.End()

	ctry, err := c.storer.QueryByID(ctx, clientID, countryID)
	if err != nil {
		return Country{}, fmt.Errorf("query: countryID[%s]: %w", countryID, err)
	}

	return ctry, nil
}

// QueryBySlug finds the country by slug within the tenant. Slugs are only
// unique per tenant so the pair identifies the row.
func (c *Core) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Country, error) {
	ctx, span := otel.AddSpan(ctx, "business.countrybus.queryBySlug")
	defer span.End()

	ctry, err := c.storer.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		return Country{}, fmt.Errorf("query: slug[%s]: %w", slg, err)
	}

	return ctry, nil
}
