// Package settingsdb contains site settings related CRUD functionality.
package settingsdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for settings database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (settingsbus.Storer, error) {
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

// Create inserts the settings row for a tenant.
func (s *Store) Create(ctx context.Context, set settingsbus.Settings) error {
	const q = `
	INSERT INTO site_settings
		(client_id, color_primary, color_secondary, color_accent, show_countries, show_universities, show_programs, show_articles, show_testimonials, facebook_url, instagram_url, twitter_url, youtube_url, created_at, updated_at)
	VALUES
		(:client_id, :color_primary, :color_secondary, :color_accent, :show_countries, :show_universities, :show_programs, :show_articles, :show_testimonials, :facebook_url, :instagram_url, :twitter_url, :youtube_url, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBSettings(set)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Upsert writes the settings row for a tenant, creating it on first save.
func (s *Store) Upsert(ctx context.Context, set settingsbus.Settings) error {
	const q = `
	INSERT INTO site_settings
		(client_id, color_primary, color_secondary, color_accent, show_countries, show_universities, show_programs, show_articles, show_testimonials, facebook_url, instagram_url, twitter_url, youtube_url, created_at, updated_at)
	VALUES
		(:client_id, :color_primary, :color_secondary, :color_accent, :show_countries, :show_universities, :show_programs, :show_articles, :show_testimonials, :facebook_url, :instagram_url, :twitter_url, :youtube_url, :created_at, :updated_at)
	ON CONFLICT (client_id) DO UPDATE SET
		color_primary = EXCLUDED.color_primary,
		color_secondary = EXCLUDED.color_secondary,
		color_accent = EXCLUDED.color_accent,
		show_countries = EXCLUDED.show_countries,
		show_universities = EXCLUDED.show_universities,
		show_programs = EXCLUDED.show_programs,
		show_articles = EXCLUDED.show_articles,
		show_testimonials = EXCLUDED.show_testimonials,
		facebook_url = EXCLUDED.facebook_url,
		instagram_url = EXCLUDED.instagram_url,
		twitter_url = EXCLUDED.twitter_url,
		youtube_url = EXCLUDED.youtube_url,
		updated_at = EXCLUDED.updated_at`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBSettings(set)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByClientID gets the settings for the specified tenant.
func (s *Store) QueryByClientID(ctx context.Context, clientID uuid.UUID) (settingsbus.Settings, error) {
	data := struct {
		ClientID string `db:"client_id"`
	}{
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		client_id, color_primary, color_secondary, color_accent, show_countries, show_universities, show_programs, show_articles, show_testimonials, facebook_url, instagram_url, twitter_url, youtube_url, created_at, updated_at
	FROM
		site_settings
	WHERE
		client_id = :client_id`

	var dbSet settingsDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbSet); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return settingsbus.Settings{}, fmt.Errorf("db: %w", settingsbus.ErrNotFound)
		}
		return settingsbus.Settings{}, fmt.Errorf("db: %w", err)
	}

	return toBusSettings(dbSet)
}
