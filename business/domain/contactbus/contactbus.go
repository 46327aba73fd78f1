// Package contactbus provides business access to the per tenant contact
// info row.
package contactbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/otel"
)

// ErrNotFound is returned when a tenant has no contact info row yet.
var ErrNotFound = errors.New("contact info not found")

// Storer defines the behavior required by the contactbus to persist and
// retrieve contact info data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, ci ContactInfo) error
	Upsert(ctx context.Context, ci ContactInfo) error
	QueryByClientID(ctx context.Context, clientID uuid.UUID) (ContactInfo, error)
}

// Core manages the set of APIs for contact info access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for contact info api access.
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

// Create seeds the contact info row for a freshly provisioned tenant.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nc NewContactInfo) (ContactInfo, error) {
	ctx, span := otel.AddSpan(ctx, "business.contactbus.create")
	defer span.End()

	now := time.Now()

	ci := ContactInfo{
		ClientID:  clientID,
		Phones:    nc.Phones,
		Emails:    nc.Emails,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, ci); err != nil {
		return ContactInfo{}, fmt.Errorf("create: %w", err)
	}

	return ci, nil
}

// Update applies the specified changes on top of the current contact info
// and upserts the row. Slices replace wholesale when non nil.
func (c *Core) Update(ctx context.Context, ci ContactInfo, uc UpdateContactInfo) (ContactInfo, error) {
	ctx, span := otel.AddSpan(ctx, "business.contactbus.update")
	defer span.End()

	if uc.Phones != nil {
		ci.Phones = uc.Phones
	}

	if uc.Emails != nil {
		ci.Emails = uc.Emails
	}

	if uc.Address != nil {
		ci.Address = *uc.Address
	}

	if uc.WorkingHours != nil {
		ci.WorkingHours = *uc.WorkingHours
	}

	if uc.Whatsapp != nil {
		ci.Whatsapp = *uc.Whatsapp
	}

	if uc.MapLink != nil {
		ci.MapLink = *uc.MapLink
	}

	ci.UpdatedAt = time.Now()

	if err := c.storer.Upsert(ctx, ci); err != nil {
		return ContactInfo{}, fmt.Errorf("upsert: %w", err)
	}

	return ci, nil
}

// QueryByClientID gets the contact info for the specified tenant.
func (c *Core) QueryByClientID(ctx context.Context, clientID uuid.UUID) (ContactInfo, error) {
	ctx, span := otel.AddSpan(ctx, "business.contactbus.queryByClientID")
	defer span.End()

	ci, err := c.storer.QueryByClientID(ctx, clientID)
	if err != nil {
		return ContactInfo{}, fmt.Errorf("query: clientID[%s]: %w", clientID, err)
	}

	return ci, nil
}
