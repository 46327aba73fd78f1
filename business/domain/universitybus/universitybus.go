// Package universitybus provides business access to university data. Every
// operation is scoped to the calling tenant.
package universitybus

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
	ErrNotFound   = errors.New("university not found")
	ErrUniqueSlug = errors.New("slug is not unique for this client")
)

// Storer defines the behavior required by the universitybus to persist and
// retrieve university data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, uni University) error
	Update(ctx context.Context, uni University) error
	Delete(ctx context.Context, uni University) error
	Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]University, error)
	Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, universityID uuid.UUID) (University, error)
	QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (University, error)
}

// Core manages the set of APIs for university access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for university api access.
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

// Create adds a new university to the specified tenant.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nu NewUniversity) (University, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.create")
	defer span.End()

	now := time.Now()

	uni := University{
		ID:          uuid.New(),
		ClientID:    clientID,
		CountryID:   nu.CountryID,
		Name:        nu.Name,
		NameAr:      nu.NameAr,
		Slug:        nu.Slug,
		City:        nu.City,
		LogoURL:     nu.LogoURL,
		WebsiteURL:  nu.WebsiteURL,
		Ranking:     nu.Ranking,
		Description: nu.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, uni); err != nil {
		return University{}, fmt.Errorf("create: %w", err)
	}

	return uni, nil
}

// Update modifies data about a university.
func (c *Core) Update(ctx context.Context, uni University, uu UpdateUniversity) (University, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.update")
	defer span.End()

	if uu.CountryID != nil {
		uni.CountryID = *uu.CountryID
	}

	if uu.Name != nil {
		uni.Name = *uu.Name
	}

	if uu.NameAr != nil {
		uni.NameAr = *uu.NameAr
	}

	if uu.Slug != nil {
		uni.Slug = *uu.Slug
	}

	if uu.City != nil {
		uni.City = *uu.City
	}

	if uu.LogoURL != nil {
		uni.LogoURL = *uu.LogoURL
	}

	if uu.WebsiteURL != nil {
		uni.WebsiteURL = *uu.WebsiteURL
	}

	if uu.Ranking != nil {
		uni.Ranking = *uu.Ranking
	}

	if uu.Description != nil {
		uni.Description = *uu.Description
	}

	uni.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, uni); err != nil {
		return University{}, fmt.Errorf("update: %w", err)
	}

	return uni, nil
}

// Delete removes the specified university.
func (c *Core) Delete(ctx context.Context, uni University) error {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, uni); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing universities for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]University, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.query")
	defer span.End()

	unis, err := c.storer.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return unis, nil
}

// Count returns the total number of universities for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID, filter)
}

// QueryByID finds the university by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, universityID uuid.UUID) (University, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.queryByID")
	defer span.End()

	uni, err := c.storer.QueryByID(ctx, clientID, universityID)
	if err != nil {
		return University{}, fmt.Errorf("query: universityID[%s]: %w", universityID, err)
	}

	return uni, nil
}

// QueryBySlug finds the university by slug within the tenant.
func (c *Core) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (University, error) {
	ctx, span := otel.AddSpan(ctx, "business.universitybus.queryBySlug")
	defer span.End()

	uni, err := c.storer.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		return University{}, fmt.Errorf("query: slug[%s]: %w", slg, err)
	}

	return uni, nil
}
