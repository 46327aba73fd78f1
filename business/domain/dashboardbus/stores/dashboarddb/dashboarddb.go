// Package dashboarddb computes the admin dashboard stats in a single round
// trip using filtered subqueries.
package dashboarddb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/dashboardbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for dashboard database access.
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

// QueryStats returns the per tenant counts in one query.
func (s *Store) QueryStats(ctx context.Context, clientID uuid.UUID) (dashboardbus.Stats, error) {
	data := struct {
		ClientID string `db:"client_id"`
	}{
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		(SELECT count(1) FROM countries WHERE client_id = :client_id) AS countries,
		(SELECT count(1) FROM universities WHERE client_id = :client_id) AS universities,
		(SELECT count(1) FROM programs WHERE client_id = :client_id) AS programs,
		(SELECT count(1) FROM articles WHERE client_id = :client_id) AS articles,
		(SELECT count(1) FROM testimonials WHERE client_id = :client_id) AS testimonials,
		(SELECT count(1) FROM consultations WHERE client_id = :client_id) AS consultations,
		(SELECT count(1) FROM consultations WHERE client_id = :client_id AND status = 'PENDING') AS pending_consultations,
		(SELECT count(1) FROM contact_messages WHERE client_id = :client_id) AS messages,
		(SELECT count(1) FROM contact_messages WHERE client_id = :client_id AND status = 'UNREAD') AS unread_messages`

	var dbStats statsDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbStats); err != nil {
		return dashboardbus.Stats{}, fmt.Errorf("namedquerystruct: %w", err)
	}

	return toBusStats(dbStats), nil
}
