// Package articledb contains article related CRUD functionality.
package articledb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/logger"
)

// Store manages the set of APIs for article database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (articlebus.Storer, error) {
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

// Create inserts a new article into the database.
func (s *Store) Create(ctx context.Context, art articlebus.Article) error {
	const q = `
	INSERT INTO articles
		(article_id, client_id, title, title_ar, slug, excerpt, content, image_url, published, created_at, updated_at)
	VALUES
		(:article_id, :client_id, :title, :title_ar, :slug, :excerpt, :content, :image_url, :published, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBArticle(art)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", articlebus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces an article document in the database.
func (s *Store) Update(ctx context.Context, art articlebus.Article) error {
	const q = `
	UPDATE
		articles
	SET
		title = :title,
		title_ar = :title_ar,
		slug = :slug,
		excerpt = :excerpt,
		content = :content,
		image_url = :image_url,
		published = :published,
		updated_at = :updated_at
	WHERE
		article_id = :article_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, toDBArticle(art))
	if err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", articlebus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", articlebus.ErrNotFound)
	}

	return nil
}

// Delete removes an article from the database within the owning tenant.
func (s *Store) Delete(ctx context.Context, art articlebus.Article) error {
	data := struct {
		ID       string `db:"article_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       art.ID.String(),
		ClientID: art.ClientID.String(),
	}

	const q = `
	DELETE FROM
		articles
	WHERE
		article_id = :article_id AND client_id = :client_id`

	affected, err := sqldb.NamedExecContextAffected(ctx, s.log, s.db, q, data)
	if err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("db: %w", articlebus.ErrNotFound)
	}

	return nil
}

// Query retrieves a list of existing articles for the tenant.
func (s *Store) Query(ctx context.Context, clientID uuid.UUID, filter articlebus.QueryFilter, orderBy order.By, page page.Page) ([]articlebus.Article, error) {
	data := map[string]any{
		"client_id":     clientID.String(),
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		article_id, client_id, title, title_ar, slug, excerpt, content, image_url, published, created_at, updated_at
	FROM
		articles
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

	var dbArts []articleDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbArts); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusArticles(dbArts)
}

// Count returns the total number of articles for the tenant.
func (s *Store) Count(ctx context.Context, clientID uuid.UUID, filter articlebus.QueryFilter) (int, error) {
	data := map[string]any{
		"client_id": clientID.String(),
	}

	const q = `
	SELECT
		count(1) AS count
	FROM
		articles
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

// QueryByID gets the specified article from the database within the tenant.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID, articleID uuid.UUID) (articlebus.Article, error) {
	data := struct {
		ID       string `db:"article_id"`
		ClientID string `db:"client_id"`
	}{
		ID:       articleID.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		article_id, client_id, title, title_ar, slug, excerpt, content, image_url, published, created_at, updated_at
	FROM
		articles
	WHERE
		article_id = :article_id AND client_id = :client_id`

	var dbArt articleDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbArt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return articlebus.Article{}, fmt.Errorf("db: %w", articlebus.ErrNotFound)
		}
		return articlebus.Article{}, fmt.Errorf("db: %w", err)
	}

	return toBusArticle(dbArt)
}

// QueryBySlug gets the article registered for the slug within the tenant.
func (s *Store) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (articlebus.Article, error) {
	data := struct {
		Slug     string `db:"slug"`
		ClientID string `db:"client_id"`
	}{
		Slug:     slg.String(),
		ClientID: clientID.String(),
	}

	const q = `
	SELECT
		article_id, client_id, title, title_ar, slug, excerpt, content, image_url, published, created_at, updated_at
	FROM
		articles
	WHERE
		slug = :slug AND client_id = :client_id`

	var dbArt articleDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbArt); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return articlebus.Article{}, fmt.Errorf("db: %w", articlebus.ErrNotFound)
		}
		return articlebus.Article{}, fmt.Errorf("db: %w", err)
	}

	return toBusArticle(dbArt)
}

func orderByClause(orderBy order.By) (string, error) {
	byFields := map[string]string{
		articlebus.OrderByTitle:     "title",
		articlebus.OrderBySlug:      "slug",
		articlebus.OrderByCreatedAt: "created_at",
	}

	by, exists := byFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
