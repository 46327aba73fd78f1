// Package messagebus provides business access to contact messages. Messages
// are captured unauthenticated from tenant sites and worked by tenant
// admins; every operation is scoped to the calling tenant.
package messagebus

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

// ErrNotFound is returned when a message is not found inside the tenant.
var ErrNotFound = errors.New("message not found")

// Storer defines the behavior required by the messagebus to persist and
// retrieve message data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, msg Message) error
	Update(ctx context.Context, msg Message) error
	Delete(ctx context.Context, msg Message) error
	Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Message, error)
	Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, messageID uuid.UUID) (Message, error)
}

// Core manages the set of APIs for message access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for message api access.
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

// Create records a new message for the specified tenant. New messages
// always start unread.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, nm NewMessage) (Message, error) {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.create")
	defer span.End()

	now := time.Now()

	msg := Message{
		ID:        uuid.New(),
		ClientID:  clientID,
		Name:      nm.Name,
		Email:     nm.Email,
		Subject:   nm.Subject,
		Body:      nm.Body,
		Status:    StatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("create: %w", err)
	}

	return msg, nil
}

// Update modifies data about a message.
func (c *Core) Update(ctx context.Context, msg Message, um UpdateMessage) (Message, error) {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.update")
	defer span.End()

	if um.Status != nil {
		msg.Status = *um.Status
	}

	msg.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("update: %w", err)
	}

	return msg, nil
}

// Delete removes the specified message.
func (c *Core) Delete(ctx context.Context, msg Message) error {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, msg); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing messages for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Message, error) {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.query")
	defer span.End()

	msgs, err := c.storer.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return msgs, nil
}

// Count returns the total number of messages for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID, filter)
}

// QueryByID finds the message by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, messageID uuid.UUID) (Message, error) {
	ctx, span := otel.AddSpan(ctx, "business.messagebus.queryByID")
	defer span.End()

	msg, err := c.storer.QueryByID(ctx, clientID, messageID)
	if err != nil {
		return Message{}, fmt.Errorf("query: messageID[%s]: %w", messageID, err)
	}

	return msg, nil
}
