// Package articlebus provides business access to article data. Every
// operation is scoped to the calling tenant.
package articlebus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound   = errors.New("article not found")
	ErrUniqueSlug = errors.New("slug is not unique for this client")
)

// Storer defines the behavior required by the articlebus to persist and
// retrieve article data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, art Article) error
	Update(ctx context.Context, art Article) error
	Delete(ctx context.Context, art Article) error
	Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Article, error)
	Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, clientID uuid.UUID, articleID uuid.UUID) (Article, error)
	QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Article, error)
}

// Core manages the set of APIs for article access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for article api access.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new Core value replacing the Storer value with a
// Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create adds a new article to the specified tenant.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, na NewArticle) (Article, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.create")
	defer span.End()

	now := time.Now()

	art := Article{
		ID:        uuid.New(),
		ClientID:  clientID,
		Title:     na.Title,
		TitleAr:   na.TitleAr,
		Slug:      na.Slug,
		Excerpt:   na.Excerpt,
		Content:   na.Content,
		ImageURL:  na.ImageURL,
		Published: na.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, art); err != nil {
		return Article{}, fmt.Errorf("create: %w", err)
	}

	return art, nil
}

// Update modifies data about an article.
func (c *Core) Update(ctx context.Context, art Article, ua UpdateArticle) (Article, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.update")
	defer span.End()

	if ua.Title != nil {
		art.Title = *ua.Title
	}

	if ua.TitleAr != nil {
		art.TitleAr = *ua.TitleAr
	}

	if ua.Slug != nil {
		art.Slug = *ua.Slug
	}

	if ua.Excerpt != nil {
		art.Excerpt = *ua.Excerpt
	}

	if ua.Content != nil {
		art.Content = *ua.Content
	}

	if ua.ImageURL != nil {
		art.ImageURL = *ua.ImageURL
	}

	if ua.Published != nil {
		art.Published = *ua.Published
	}

	art.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, art); err != nil {
		return Article{}, fmt.Errorf("update: %w", err)
	}

	return art, nil
}

// Delete removes the specified article.
func (c *Core) Delete(ctx context.Context, art Article) error {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, art); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing articles for the specified tenant.
func (c *Core) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Article, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.query")
	defer span.End()

	arts, err := c.storer.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return arts, nil
}

// Count returns the total number of articles for the specified tenant.
func (c *Core) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.count")
	defer span.End()

	return c.storer.Count(ctx, clientID, filter)
}

// QueryByID finds the article by the specified ID within the tenant.
func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID, articleID uuid.UUID) (Article, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.queryByID")
	defer span.End()

	art, err := c.storer.QueryByID(ctx, clientID, articleID)
	if err != nil {
		return Article{}, fmt.Errorf("query: articleID[%s]: %w", articleID, err)
	}

	return art, nil
}

// QueryBySlug finds the article by slug within the tenant.
func (c *Core) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Article, error) {
	ctx, span := otel.AddSpan(ctx, "business.articlebus.queryBySlug")
	defer span.End()

	art, err := c.storer.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		return Article{}, fmt.Errorf("query: slug[%s]: %w", slg, err)
	}

	return art, nil
}
