// Package messagedb contains contact message related CRUD functionality.
package messagedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for message database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (messagebus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new message into the database.
func (s *Store) Create(ctx context.Context, msg messagebus.Message) error {
	const q = `
	INSERT INTO contact_messages
		(message_id, client_id, name, email, subject, message, status, created_at, updated_at)
	VALUES
		(:message_id, :client_id, :name, :email, :subject, :message, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBMessage(msg)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a message document in the database.
func (s *Store) Update(ctx context.Context, msg messagebus.Message) error {
	const q = `
	UPDATE
		contact_messages
	SET
		status = :status,
		updated_at = :updated_at
	WHERE
		message_id = :message_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBMessage(msg))
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", messagebus.ErrNotFound)
	}

	return nil
}

// Delete removes a message from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, msg messagebus.Message) error {
	data := struct {
		ID       string `db:"message_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       msg.ID.String(),
		ClientID: msg.ClientID.String(),
	}

	const q = `
	DELETE FROM
		contact_messages
	WHERE
		message_id = :message_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", messagebus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing messages for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, filter messagebus.QueryFilter, orderBy order.By, page page.Page) ([]messagebus.Message, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		message_id, client_id, name, email, subject, message, status, created_at, updated_at
	FROM
		contact_messages
	WHERE
		client_id = :client_id`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbMsgs []messageDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbMsgs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusMessages(dbMsgs)
}

// Count returns the total number of messages for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID, filter messagebus.QueryFilter) (int, error) {
	data := map[string]any{
		"client_id": clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		contact_messages
	WHERE
		client_id = :client_id`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified message from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, messageID uuid.UUID) (messagebus.Message, error) {
	data := struct {
		ID       string `db:"message_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       messageID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		message_id, client_id, name, email, subject, message, status, created_at, updated_at
	FROM
		contact_messages
	WHERE
		message_id = :message_id AND client_id = :client_id`

	var dbMsg messageDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbMsg); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return messagebus.Message{}, fmt.Errorf("db: %w", messagebus.ErrNotFound)
		}
		return messagebus.Message{}, fmt.Errorf("db: %w", err)
	}

	return toBusMessage(dbMsg)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		messagebus.OrderByName:      "name",
		messagebus.OrderByStatus:    "status",
		messagebus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
