// Package consultationdb contains consultation related CRUD functionality.
package consultationdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for consultation database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (consultationbus.Storer, error) {
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

// Create inserts a new consultation into the database.
func (s *Store) Create(ctx context.Context, con consultationbus.Consultation) error {
	const q = `
	INSERT INTO consultations
		(consultation_id, client_id, full_name, phone, email, destination, message, status, created_at, updated_at)
	VALUES
		(:consultation_id, :client_id, :full_name, :phone, :email, :destination, :message, :status, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBConsultation(con)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a consultation document in the database.
func (s *Store) Update(ctx context.Context, con consultationbus.Consultation) error {
	const q = `
	UPDATE
		consultations
	SET
		status = :status,
		updated_at = :updated_at
	WHERE
		consultation_id = :consultation_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBConsultation(con))
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", consultationbus.ErrNotFound)
	}

	return nil
}

// Delete removes a consultation from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, con consultationbus.Consultation) error {
	data := struct {
		ID       string `db:"consultation_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       con.ID.String(),
		ClientID: con.ClientID.String(),
	}

	const q = `
	DELETE FROM
		consultations
	WHERE
		consultation_id = :consultation_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", consultationbus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing consultations for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, filter consultationbus.QueryFilter, orderBy order.By, page page.Page) ([]consultationbus.Consultation, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		consultation_id, client_id, full_name, phone, email, destination, message, status, created_at, updated_at
	FROM
		consultations
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

	var dbCons []consultationDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbCons); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusConsultations(dbCons)
}

// Count returns the total number of consultations for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID, filter consultationbus.QueryFilter) (int, error) {
	data := map[string]any{
		"client_id": clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		consultations
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

// QueryByID gets the specified consultation from the database within the
// tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, consultationID uuid.UUID) (consultationbus.Consultation, error) {
	data := struct {
		ID       string `db:"consultation_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       consultationID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		consultation_id, client_id, full_name, phone, email, destination, message, status, created_at, updated_at
	FROM
		consultations
	WHERE
		consultation_id = :consultation_id AND client_id = :client_id`

	var dbCon consultationDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbCon); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return consultationbus.Consultation{}, fmt.Errorf("db: %w", consultationbus.ErrNotFound)
		}
		return consultationbus.Consultation{}, fmt.Errorf("db: %w", err)
	}

	return toBusConsultation(dbCon)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		consultationbus.OrderByFullName:  "full_name",
		consultationbus.OrderByStatus:    "status",
		consultationbus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
