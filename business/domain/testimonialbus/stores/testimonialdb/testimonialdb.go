// Package testimonialdb contains testimonial related CRUD functionality.
package testimonialdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for testimonial database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (testimonialbus.Storer, error) {
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

// Create inserts a new testimonial into the database.
func (s *Store) Create(ctx context.Context, tst testimonialbus.Testimonial) error {
	const q = `
	INSERT INTO testimonials
		(testimonial_id, client_id, student_name, country, quote, rating, image_url, created_at, updated_at)
	VALUES
		(:testimonial_id, :client_id, :student_name, :country, :quote, :rating, :image_url, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBTestimonial(tst)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a testimonial document in the database.
func (s *Store) Update(ctx context.Context, tst testimonialbus.Testimonial) error {
	const q = `
	UPDATE
		testimonials
	SET
		student_name = :student_name,
		country = :country,
		quote = :quote,
		rating = :rating,
		image_url = :image_url,
		updated_at = :updated_at
	WHERE
		testimonial_id = :testimonial_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBTestimonial(tst))
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", testimonialbus.ErrNotFound)
	}

	return nil
}

// Delete removes a testimonial from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, tst testimonialbus.Testimonial) error {
	data := struct {
		ID       string `db:"testimonial_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       tst.ID.String(),
		ClientID: tst.ClientID.String(),
	}

	const q = `
	DELETE FROM
		testimonials
	WHERE
		testimonial_id = :testimonial_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", testimonialbus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing testimonials for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]testimonialbus.Testimonial, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		testimonial_id, client_id, student_name, country, quote, rating, image_url, created_at, updated_at
	FROM
		testimonials
	WHERE
		client_id = :client_id`

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	query := q + orderByClause + " OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY"

	var dbTsts []testimonialDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, query, data, &dbTsts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusTestimonials(dbTsts)
}

// Count returns the total number of testimonials for the tenant.
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
		testimonials
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

// QueryByID gets the specified testimonial from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, testimonialID uuid.UUID) (testimonialbus.Testimonial, error) {
	data := struct {
		ID       string `db:"testimonial_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       testimonialID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		testimonial_id, client_id, student_name, country, quote, rating, image_url, created_at, updated_at
	FROM
		testimonials
	WHERE
		testimonial_id = :testimonial_id AND client_id = :client_id`

	var dbTst testimonialDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbTst); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return testimonialbus.Testimonial{}, fmt.Errorf("db: %w", testimonialbus.ErrNotFound)
		}
		return testimonialbus.Testimonial{}, fmt.Errorf("db: %w", err)
	}

	return toBusTestimonial(dbTst)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		testimonialbus.OrderByStudentName: "student_name",
		testimonialbus.OrderByRating:      "rating",
		testimonialbus.OrderByCreatedAt:   "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
