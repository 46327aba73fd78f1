// Package clientdb contains client related CRUD functionality.
package clientdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for client database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (clientbus.Storer, error) {
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

// Create inserts a new client into the database.
func (s *Store) Create(ctx context.Context, cl clientbus.Client) error {
	const q = `
	INSERT INTO clients
		(client_id, name, domain, logo_url, color_primary, color_secondary, color_accent, deploy_project_id, deploy_url, deploy_custom_domain, enabled, created_at, updated_at)
	VALUES
		(:client_id, :name, :domain, :logo_url, :color_primary, :color_secondary, :color_accent, :deploy_project_id, :deploy_url, :deploy_custom_domain, :enabled, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBClient(cl)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			if dupErr.Column == "domain" || dupErr.Column == "uq_clients_domain" {
				return fmt.Errorf("namedexeccontext: %w", clientbus.ErrUniqueDomain)
			}
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a client document in the database.
func (s *Store) Update(ctx context.Context, cl clientbus.Client) error {
	const q = `
	UPDATE
		clients
	SET
		name = :name,
		domain = :domain,
		logo_url = :logo_url,
		color_primary = :color_primary,
		color_secondary = :color_secondary,
		color_accent = :color_accent,
		deploy_project_id = :deploy_project_id,
		deploy_url = :deploy_url,
		deploy_custom_domain = :deploy_custom_domain,
		enabled = :enabled,
		updated_at = :updated_at
	WHERE
		client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBClient(cl))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			if dupErr.Column == "domain" || dupErr.Column == "uq_clients_domain" {
				return fmt.Errorf("namedexeccontext: %w", clientbus.ErrUniqueDomain)
			}
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", clientbus.ErrNotFound)
	}

	return nil
}

// Delete removes a client from the database. Tenant scoped rows cascade.
func (s *Store) Delete(ctx context.Context, cl clientbus.Client) error {
	data := struct {
		ID string `db:"client_id"`
	}{
		ID: cl.ID.String(),
	}

	const q = `
	DELETE FROM
		clients
	WHERE
		client_id = :client_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, data); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing clients from the database.
func (s *Store) Query(ctx context.Context, orderBy order.By, page page.Page) ([]clientbus.Client, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		client_id, name, domain, logo_url, color_primary, color_secondary, color_accent, deploy_project_id, deploy_url, deploy_custom_domain, enabled, created_at, updated_at
	FROM
		clients`

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	query := q + orderByClause + " OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY"

	var dbClients []clientDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, query, data, &dbClients); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusClients(dbClients)
}

// Count returns the total number of clients in the DB.
func (s *Store) Count(ctx context.Context) (int, error) {
	const q = `
	SELECT
		count(1) AS count
	FROM
		clients`

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, map[string]any{}, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified client from the database.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID) (clientbus.Client, error) {
	data := struct {
		ID string `db:"client_id"`
	}{
		ID: clientID.String(),
	}

	const q = `
	SELECT
		client_id, name, domain, logo_url, color_primary, color_secondary, color_accent, deploy_project_id, deploy_url, deploy_custom_domain, enabled, created_at, updated_at
	FROM
		clients
	WHERE
		client_id = :client_id`

	var dbCl clientDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCl); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return clientbus.Client{}, fmt.Errorf("db: %w", clientbus.ErrNotFound)
		}
		return clientbus.Client{}, fmt.Errorf("db: %w", err)
	}

	return toBusClient(dbCl)
}

// QueryByDomain gets the enabled client registered for the specified domain.
// The domain column carries a unique constraint; if more than one row ever
// matches this reports the invariant violation instead of picking one.
func (s *Store) QueryByDomain(ctx context.Context, domain string) (clientbus.Client, error) {
	data := struct {
		Domain string `db:"domain"`
	}{
		Domain: domain,
	}

	const q = `
	SELECT
		client_id, name, domain, logo_url, color_primary, color_secondary, color_accent, deploy_project_id, deploy_url, deploy_custom_domain, enabled, created_at, updated_at
	FROM
		clients
	WHERE
		domain = :domain AND enabled = TRUE`

	var dbClients []clientDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbClients); err != nil {
		return clientbus.Client{}, fmt.Errorf("namedqueryslice: %w", err)
	}

	switch len(dbClients) {
	case 0:
		return clientbus.Client{}, clientbus.ErrDomainNotFound
	case 1:
		return toBusClient(dbClients[0])
	default:
		return clientbus.Client{}, clientbus.ErrAmbiguousDomain
	}
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		clientbus.OrderByName:      "name",
		clientbus.OrderByDomain:    "domain",
		clientbus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
