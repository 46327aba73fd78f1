// Package universitydb contains university related CRUD functionality.
package universitydb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for university database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (universitybus.Storer, error) {
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

// Create inserts a new university into the database.
func (s *Store) Create(ctx context.Context, uni universitybus.University) error {
	const q = `
	INSERT INTO universities
		(university_id, client_id, country_id, name, name_ar, slug, city, logo_url, website_url, ranking, description, created_at, updated_at)
	VALUES
		(:university_id, :client_id, :country_id, :name, :name_ar, :slug, :city, :logo_url, :website_url, :ranking, :description, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBUniversity(uni)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", universitybus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a university document in the database.
func (s *Store) Update(ctx context.Context, uni universitybus.University) error {
	const q = `
	UPDATE
		universities
	SET
		country_id = :country_id,
		name = :name,
		name_ar = :name_ar,
		slug = :slug,
		city = :city,
		logo_url = :logo_url,
		website_url = :website_url,
		ranking = :ranking,
		description = :description,
		updated_at = :updated_at
	WHERE
		university_id = :university_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBUniversity(uni))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", universitybus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", universitybus.ErrNotFound)
	}

	return nil
}

// Delete removes a university from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, uni universitybus.University) error {
	data := struct {
		ID       string `db:"university_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       uni.ID.String(),
		ClientID: uni.ClientID.String(),
	}

	const q = `
	DELETE FROM
		universities
	WHERE
		university_id = :university_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", universitybus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing universities for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, filter universitybus.QueryFilter, orderBy order.By, page page.Page) ([]universitybus.University, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		university_id, client_id, country_id, name, name_ar, slug, city, logo_url, website_url, ranking, description, created_at, updated_at
	FROM
		universities
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

	var dbUnis []universityDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbUnis); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusUniversities(dbUnis)
}

// Count returns the total number of universities for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID, filter universitybus.QueryFilter) (int, error) {
	data := map[string]any{
		"client_id": clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		universities
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

// QueryByID gets the specified university from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, universityID uuid.UUID) (universitybus.University, error) {
	data := struct {
		ID       string `db:"university_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       universityID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		university_id, client_id, country_id, name, name_ar, slug, city, logo_url, website_url, ranking, description, created_at, updated_at
	FROM
		universities
	WHERE
		university_id = :university_id AND client_id = :client_id`

	var dbUni universityDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUni); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return universitybus.University{}, fmt.Errorf("db: %w", universitybus.ErrNotFound)
		}
		return universitybus.University{}, fmt.Errorf("db: %w", err)
	}

	return toBusUniversity(dbUni)
}

// QueryBySlug gets the university registered for the slug within the tenant.
func (s *Store) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (universitybus.University, error) {
	data := struct {
		Slug     string `db:"slug"`
		ClientID string `db:"client_id"`
	}{
		Slug:     slg.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		university_id, client_id, country_id, name, name_ar, slug, city, logo_url, website_url, ranking, description, created_at, updated_at
	FROM
		universities
	WHERE
		slug = :slug AND client_id = :client_id`

	var dbUni universityDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbUni); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return universitybus.University{}, fmt.Errorf("db: %w", universitybus.ErrNotFound)
		}
		return universitybus.University{}, fmt.Errorf("db: %w", err)
	}

	return toBusUniversity(dbUni)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		universitybus.OrderByName:      "name",
		universitybus.OrderBySlug:      "slug",
		universitybus.OrderByRanking:   "ranking",
		universitybus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
