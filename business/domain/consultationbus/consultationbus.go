// Package consultationbus provides business access to consultation leads.
// Leads are captured unauthenticated from tenant sites and worked by tenant
// admins; every operation is scoped to the calling tenant.
package consultationbus

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

// ErrNotFound is returned when a consultation is not found inside the tenant.
var ErrNotFound = errors.New("consultation not found")

// Storer defines the behavior required by the consultationbus to persist
// and retrieve consultation data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, con Consultation) error
	Update(ctx context.Context, con Consultation) error
	Delete(ctx context.Context, con Consultation) error
	Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Consultation, error)
	Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, consultationID uuid.UUID) (Consultation, error)
}

// Core manages the set of APIs for consultation access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for consultation api access.
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

// Create records a new lead for the specified tenant. New leads always
// start pending.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nc NewConsultation) (Consultation, error) {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.create")
	defer span.End()

	now := time.Now()

	con := Consultation{
		ID:          uuid.New(),
		ClientID:    clientID,
		FullName:    nc.FullName,
		Phone:       nc.Phone,
		Email:       nc.Email,
		Destination: nc.Destination,
		Message:     nc.Message,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storer.Create(ctx, con); err != nil {
		return Consultation{}, fmt.Errorf("create: %w", err)
	}

	return con, nil
}

// Update modifies data about a consultation.
func (c *Core) Update(ctx context.Context, con Consultation, uc UpdateConsultation) (Consultation, error) {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.update")
	defer span.End()

	if uc.Status != nil {
		con.Status = *uc.Status
	}

	con.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, con); err != nil {
		return Consultation{}, fmt.Errorf("update: %w", err)
	}

	return con, nil
}

// Delete removes the specified consultation.
func (c *Core) Delete(ctx context.Context, con Consultation) error {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, con); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing consultations for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Consultation, error) {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.query")
	defer span.End()

	cons, err := c.storer.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return cons, nil
}

// Count returns the total number of consultations for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID, filter)
}

// QueryByID finds the consultation by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, consultationID uuid.UUID) (Consultation, error) {
	ctx, span := otel.AddSpan(ctx, "business.consultationbus.queryByID")
	defer span.End()

	con, err := c.storer.QueryByID(ctx, clientID, consultationID)
	if err != nil {
		return Consultation{}, fmt.Errorf("query: consultationID[%s]: %w", consultationID, err)
	}

	return con, nil
}
