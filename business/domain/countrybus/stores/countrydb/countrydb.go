// Package countrydb contains country related CRUD functionality. Every
// statement filters by client_id so one tenant can never reach another
// tenant's rows.
package countrydb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for country database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (countrybus.Storer, error) {
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

// Create inserts a new country into the database.
func (s *Store) Create(ctx context.Context, ctry countrybus.Country) error {
	const q = `
	INSERT INTO countries
		(country_id, client_id, name, name_ar, slug, description, image_url, created_at, updated_at)
	VALUES
		(:country_id, :client_id, :name, :name_ar, :slug, :description, :image_url, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBCountry(ctry)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", countrybus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a country document in the database. The client_id filter
// keeps the write inside the owning tenant; a cross tenant id affects zero
// rows and reports not found.
func (s *Store) Update(ctx context.Context, ctry countrybus.Country) error {
	const q = `
	UPDATE
		countries
	SET
		name = :name,
		name_ar = :name_ar,
		slug = :slug,
		description = :description,
		image_url = :image_url,
		updated_at = :updated_at
	WHERE
		country_id = :country_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBCountry(ctry))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", countrybus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", countrybus.ErrNotFound)
	}

	return nil
}

// Delete removes a country from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, ctry countrybus.Country) error {
	data := struct {
		ID       string `db:"country_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       ctry.ID.String(),
		ClientID: ctry.ClientID.String(),
	}

	const q = `
	DELETE FROM
		countries
	WHERE
		country_id = :country_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", countrybus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing countries for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]countrybus.Country, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		country_id, client_id, name, name_ar, slug, description, image_url, created_at, updated_at
	FROM
		countries
	WHERE
		client_id = :client_id`

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	query := q + orderByClause + " OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY"

	var dbCtrys []countryDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, query, data, &dbCtrys); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusCountries(dbCtrys)
}

// Count returns the total number of countries for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID) (int, error) {
	data := struct {
		ClientID string `db:"client_id"`
	}{
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		countries
	WHERE
		client_id = :client_id`

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified country from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, countryID uuid.UUID) (countrybus.Country, error) {
	data := struct {
		ID       string `db:"country_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       countryID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		country_id, client_id, name, name_ar, slug, description, image_url, created_at, updated_at
	FROM
		countries
	WHERE
		country_id = :country_id AND client_id = :client_id`

	var dbCtry countryDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCtry); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return countrybus.Country{}, fmt.Errorf("db: %w", countrybus.ErrNotFound)
		}
		return countrybus.Country{}, fmt.Errorf("db: %w", err)
	}

	return toBusCountry(dbCtry)
}

// QueryBySlug gets the country registered for the slug within the tenant.
func (s *Store) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (countrybus.Country, error) {
	data := struct {
		Slug     string `db:"slug"`
		ClientID string `db:"client_id"`
	}{
		Slug:     slg.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		country_id, client_id, name, name_ar, slug, description, image_url, created_at, updated_at
	FROM
		countries
	WHERE
		slug = :slug AND client_id = :client_id`

	var dbCtry countryDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCtry); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return countrybus.Country{}, fmt.Errorf("db: %w", countrybus.ErrNotFound)
		}
		return countrybus.Country{}, fmt.Errorf("db: %w", err)
	}

	return toBusCountry(dbCtry)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		countrybus.OrderByName:      "name",
		countrybus.OrderBySlug:      "slug",
		countrybus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
