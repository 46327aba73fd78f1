// Package admindb contains admin related CRUD functionality.
package admindb

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for admin database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (adminbus.Storer, error) {
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

// Create inserts a new admin into the database.
func (s *Store) Create(ctx context.Context, adm adminbus.Admin) error {
	const q = `
	INSERT INTO managers
		(manager_id, client_id, email, password, full_name, enabled, created_at, updated_at)
	VALUES
		(:manager_id, :client_id, :email, :password, :full_name, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBAdmin(adm)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", adminbus.ErrUniqueEmail)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces an admin document in the database.
func (s *Store) Update(ctx context.Context, adm adminbus.Admin) error {
	const q = `
	UPDATE
		managers
	SET
		email = :email,
		password = :password,
		full_name = :full_name,
		enabled = :enabled,
		updated_at = :updated_at
	WHERE
		manager_id = :manager_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBAdmin(adm))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", adminbus.ErrUniqueEmail)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", adminbus.ErrNotFound)
	}

	return nil
}

// Delete removes an admin from the database.
func (s *Store) Delete(ctx context.Context, adm adminbus.Admin) error {
	data := struct {
		ID string `db:"manager_id"`
	}{
		ID: adm.ID.String(),
	}

	const q = `
	DELETE FROM
		managers
	WHERE
		manager_id = :manager_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByID gets the specified admin from the database.
func (s *Store) QueryByID(ctx context.Context, adminID uuid.UUID) (adminbus.Admin, error) {
	data := struct {
		ID string `db:"manager_id"`
	}{
		ID: adminID.String(),
	}

	const q = `
	SELECT
		manager_id, client_id, email, password, full_name, enabled, created_at, updated_at
	FROM
		managers
	WHERE
		manager_id = :manager_id`

	var dbAdm adminDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbAdm); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return adminbus.Admin{}, fmt.Errorf("db: %w", adminbus.ErrNotFound)
		}
		return adminbus.Admin{}, fmt.Errorf("db: %w", err)
	}

	return toBusAdmin(dbAdm)
}

// QueryByEmail gets the specified admin from the database by email.
func (s *Store) QueryByEmail(ctx context.Context, email mail.Address) (adminbus.Admin, error) {
	data := struct {
		Email string `db:"email"`
	}{
		Email: email.Address,
	}

	const q = `
	SELECT
		manager_id, client_id, email, password, full_name, enabled, created_at, updated_at
	FROM
		managers
	WHERE
		email = :email`

	var dbAdm adminDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbAdm); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return adminbus.Admin{}, fmt.Errorf("db: %w", adminbus.ErrNotFound)
		}
		return adminbus.Admin{}, fmt.Errorf("db: %w", err)
	}

	return toBusAdmin(dbAdm)
}

// QueryByClientID gets the admins bound to the specified tenant.
func (s *Store) QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]adminbus.Admin, error) {
	data := struct {
		ClientID string `db:"client_id"`
	}{
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		manager_id, client_id, email, password, full_name, enabled, created_at, updated_at
	FROM
		managers
	WHERE
		client_id = :client_id
	ORDER BY
		created_at`

	var dbAdms []adminDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbAdms); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusAdmins(dbAdms)
}
