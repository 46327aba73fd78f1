// Package programbus provides business access to program data. Every
// operation is scoped to the calling tenant.
package programbus

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
	ErrNotFound   = errors.New("program not found")
	ErrUniqueSlug = errors.New("slug is not unique for this client")
)

// Storer defines the behavior required by the programbus to persist and
// retrieve program data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, prg Program) error
	Update(ctx context.Context, prg Program) error
	Delete(ctx context.Context, prg Program) error
	Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Program, error)
	Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, programID uuid.UUID) (Program, error)
	QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Program, error)
}

// Core manages the set of APIs for program access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for program api access.
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

// Create adds a new program to the specified tenant.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, np NewProgram) (Program, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.create")
	defer span.End()

	now := time.Now()

	prg := Program{
		ID:           uuid.New(),
		ClientID:     clientID,
		UniversityID: np.UniversityID,
		CountryID:    np.CountryID,
		Name:         np.Name,
		NameAr:       np.NameAr,
		Slug:         np.Slug,
		Degree:       np.Degree,
		Language:     np.Language,
		TuitionFee:   np.TuitionFee,
		Duration:     np.Duration,
		Description:  np.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storer.Create(ctx, prg); err != nil {
		return Program{}, fmt.Errorf("create: %w", err)
	}

	return prg, nil
}

// Update modifies data about a program.
func (c *Core) Update(ctx context.Context, prg Program, up UpdateProgram) (Program, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.update")
	defer span.End()

	if up.UniversityID != nil {
		prg.UniversityID = *up.UniversityID
	}

	if up.CountryID != nil {
		prg.CountryID = *up.CountryID
	}

	if up.Name != nil {
		prg.Name = *up.Name
	}

	if up.NameAr != nil {
		prg.NameAr = *up.NameAr
	}

	if up.Slug != nil {
		prg.Slug = *up.Slug
	}

	if up.Degree != nil {
		prg.Degree = *up.Degree
	}

	if up.Language != nil {
		prg.Language = *up.Language
	}

	if up.TuitionFee != nil {
		prg.TuitionFee = *up.TuitionFee
	}

	if up.Duration != nil {
		prg.Duration = *up.Duration
	}

	if up.Description != nil {
		prg.Description = *up.Description
	}

	prg.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, prg); err != nil {
		return Program{}, fmt.Errorf("update: %w", err)
	}

	return prg, nil
}

// Delete removes the specified program.
func (c *Core) Delete(ctx context.Context, prg Program) error {
	ctx, span := otel.AddSpan(ctx, "business.programbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, prg); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing programs for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Program, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.query")
	defer span.End()

	prgs, err := c.storer.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return prgs, nil
}

// Count returns the total number of programs for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID, filter)
}

// QueryByID finds the program by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, programID uuid.UUID) (Program, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.queryByID")
	defer span.End()

	prg, err := c.storer.QueryByID(ctx, clientID, programID)
	if err != nil {
		return Program{}, fmt.Errorf("query: programID[%s]: %w", programID, err)
	}

	return prg, nil
}

// QueryBySlug finds the program by slug within the tenant.
func (c *Core) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Program, error) {
	ctx, span := otel.AddSpan(ctx, "business.programbus.queryBySlug")
	defer span.End()

	prg, err := c.storer.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		return Program{}, fmt.Errorf("query: slug[%s]: %w", slg, err)
	}

	return prg, nil
}
