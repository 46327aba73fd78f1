// Package programdb contains program related CRUD functionality.
package programdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for program database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (programbus.Storer, error) {
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

// Create inserts a new program into the database.
func (s *Store) Create(ctx context.Context, prg programbus.Program) error {
	const q = `
	INSERT INTO programs
		(program_id, client_id, university_id, country_id, name, name_ar, slug, degree, language, tuition_fee, duration, description, created_at, updated_at)
	VALUES
		(:program_id, :client_id, :university_id, :country_id, :name, :name_ar, :slug, :degree, :language, :tuition_fee, :duration, :description, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBProgram(prg)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", programbus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a program document in the database.
func (s *Store) Update(ctx context.Context, prg programbus.Program) error {
	const q = `
	UPDATE
		programs
	SET
		university_id = :university_id,
		country_id = :country_id,
		name = :name,
		name_ar = :name_ar,
		slug = :slug,
		degree = :degree,
		language = :language,
		tuition_fee = :tuition_fee,
		duration = :duration,
		description = :description,
		updated_at = :updated_at
	WHERE
		program_id = :program_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBProgram(prg))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", programbus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", programbus.ErrNotFound)
	}

	return nil
}

// Delete removes a program from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, prg programbus.Program) error {
	data := struct {
		ID       string `db:"program_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       prg.ID.String(),
		ClientID: prg.ClientID.String(),
	}

	const q = `
	DELETE FROM
		programs
	WHERE
		program_id = :program_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", programbus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing programs for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, filter programbus.QueryFilter, orderBy order.By, page page.Page) ([]programbus.Program, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		program_id, client_id, university_id, country_id, name, name_ar, slug, degree, language, tuition_fee, duration, description, created_at, updated_at
	FROM
		programs
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

	var dbPrgs []programDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbPrgs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusPrograms(dbPrgs)
}

// Count returns the total number of programs for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID, filter programbus.QueryFilter) (int, error) {
	data := map[string]any{
		"client_id": clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		programs
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

// QueryByID gets the specified program from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, programID uuid.UUID) (programbus.Program, error) {
	data := struct {
		ID       string `db:"program_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       programID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		program_id, client_id, university_id, country_id, name, name_ar, slug, degree, language, tuition_fee, duration, description, created_at, updated_at
	FROM
		programs
	WHERE
		program_id = :program_id AND client_id = :client_id`

	var dbPrg programDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbPrg); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return programbus.Program{}, fmt.Errorf("db: %w", programbus.ErrNotFound)
		}
		return programbus.Program{}, fmt.Errorf("db: %w", err)
	}

	return toBusProgram(dbPrg)
}

// QueryBySlug gets the program registered for the slug within the tenant.
func (s *Store) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (programbus.Program, error) {
	data := struct {
		Slug     string `db:"slug"`
		ClientID string `db:"client_id"`
	}{
		Slug:     slg.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		program_id, client_id, university_id, country_id, name, name_ar, slug, degree, language, tuition_fee, duration, description, created_at, updated_at
	FROM
		programs
	WHERE
		slug = :slug AND client_id = :client_id`

	var dbPrg programDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbPrg); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return programbus.Program{}, fmt.Errorf("db: %w", programbus.ErrNotFound)
		}
		return programbus.Program{}, fmt.Errorf("db: %w", err)
	}

	return toBusProgram(dbPrg)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		programbus.OrderByName:       "name",
		programbus.OrderBySlug:       "slug",
		programbus.OrderByTuitionFee: "tuition_fee",
		programbus.OrderByCreatedAt:  "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
