// Package contactdb contains contact info related CRUD functionality.
package contactdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for contact info database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (contactbus.Storer, error) {
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

// Create inserts the contact info row for a tenant.
func (s *Store) Create(ctx context.Context, ci contactbus.ContactInfo) error {
	const q = `
	INSERT INTO contact_info
		(client_id, phones, emails, address, working_hours, whatsapp, map_link, created_at, updated_at)
	VALUES
		(:client_id, :phones, :emails, :address, :working_hours, :whatsapp, :map_link, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBContactInfo(ci)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Upsert writes the contact info row for a tenant, creating it on first
// save.
func (s *Store) Upsert(ctx context.Context, ci contactbus.ContactInfo) error {
	const q = `
	INSERT INTO contact_info
		(client_id, phones, emails, address, working_hours, whatsapp, map_link, created_at, updated_at)
	VALUES
		(:client_id, :phones, :emails, :address, :working_hours, :whatsapp, :map_link, :created_at, :updated_at)
	ON CONFLICT (client_id) DO UPDATE SET
		phones = EXCLUDED.phones,
		emails = EXCLUDED.emails,
		address = EXCLUDED.address,
		working_hours = EXCLUDED.working_hours,
		whatsapp = EXCLUDED.whatsapp,
		map_link = EXCLUDED.map_link,
		updated_at = EXCLUDED.updated_at`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBContactInfo(ci)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByClientID gets the contact info for the specified tenant.
func (s *Store) QueryByClientID(ctx context.Context, clientID uuid.UUID) (contactbus.ContactInfo, error) {
	data := struct {
		ClientID string `db:"client_id"`
	}{
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		client_id, phones, emails, address, working_hours, whatsapp, map_link, created_at, updated_at
	FROM
		contact_info
	WHERE
		client_id = :client_id`

	var dbCi contactInfoDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCi); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return contactbus.ContactInfo{}, fmt.Errorf("db: %w", contactbus.ErrNotFound)
		}
		return contactbus.ContactInfo{}, fmt.Errorf("db: %w", err)
	}

	return toBusContactInfo(dbCi)
}
