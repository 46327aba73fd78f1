// Package testimonialbus provides business access to testimonial data.
// Every operation is scoped to the calling tenant.
package testimonialbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/otel"
)

// ErrNotFound is returned when a testimonial is not found inside the tenant.
var ErrNotFound = errors.New("testimonial not found")

// Storer defines the behavior required by the testimonialbus to persist and
// retrieve testimonial data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, tst Testimonial) error
	Update(ctx context.Context, tst Testimonial) error
	Delete(ctx context.Context, tst Testimonial) error
	Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]Testimonial, error)
	Count(ctx context.Context, clientID uuid.UUID) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, testimonialID uuid.UUID) (Testimonial, error)
}

// Core manages the set of APIs for testimonial access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for testimonial api access.
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

// Create adds a new testimonial to the specified tenant.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nt NewTestimonial) (Testimonial, error) {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.create")
	defer span.End()

	now := time.Now()

	tst := Testimonial{
		ID:          uuid.New(),
		ClientID:    clientID,
		StudentName: nt.StudentName,
		Country:     nt.Country,
		Quote:       nt.Quote,
		Rating:      nt.Rating,
		ImageURL:    nt.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, tst); err != nil {
		return Testimonial{}, fmt.Errorf("create: %w", err)
	}

	return tst, nil
}

// Update modifies data about a testimonial.
func (c *Core) Update(ctx context.Context, tst Testimonial, ut UpdateTestimonial) (Testimonial, error) {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.update")
	defer span.End()

	if ut.StudentName != nil {
		tst.StudentName = *ut.StudentName
	}

	if ut.Country != nil {
		tst.Country = *ut.Country
	}

	if ut.Quote != nil {
		tst.Quote = *ut.Quote
	}

	if ut.Rating != nil {
		tst.Rating = *ut.Rating
	}

	if ut.ImageURL != nil {
		tst.ImageURL = *ut.ImageURL
	}

	tst.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, tst); err != nil {
		return Testimonial{}, fmt.Errorf("update: %w", err)
	}

	return tst, nil
}

// Delete removes the specified testimonial.
func (c *Core) Delete(ctx context.Context, tst Testimonial) error {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, tst); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing testimonials for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]Testimonial, error) {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.query")
	defer span.End()

	tsts, err := c.storer.Query(ctx, clientID, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return tsts, nil
}

// Count returns the total number of testimonials for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID)
}

// QueryByID finds the testimonial by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, testimonialID uuid.UUID) (Testimonial, error) {
	ctx, span := otel.AddSpan(ctx, "business.testimonialbus.queryByID")
	defer span.End()

	tst, err := c.storer.QueryByID(ctx, clientID, testimonialID)
	if err != nil {
		return Testimonial{}, fmt.Errorf("query: testimonialID[%s]: %w", testimonialID, err)
	}

	return tst, nil
}
