// Package settingsbus provides business access to the per tenant site
// settings row.
package settingsbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/otel"
)

// ErrNotFound is returned when a tenant has no settings row yet.
var ErrNotFound = errors.New("settings not found")

// Storer defines the behavior required by the settingsbus to persist and
// retrieve settings data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, set Settings) error
	Upsert(ctx context.Context, set Settings) error
	QueryByClientID(ctx context.Context, clientID uuid.UUID) (Settings, error)
}

// Core manages the set of APIs for settings access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for settings api access.
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

// Create seeds the settings row for a freshly provisioned tenant. All
// section toggles start on.
func (c *Core) Create(ctx context.Context, clientID uuid.UUID, ns NewSettings) (Settings, error) {
	ctx, span := otel.AddSpan(ctx, "business.settingsbus.create")
	defer span.End()

	now := time.Now()

	set := Settings{
		ClientID:         clientID,
		Theme:            ns.Theme,
		ShowCountries:    true,
		ShowUniversities: true,
		ShowPrograms:     true,
		ShowArticles:     true,
		ShowTestimonials: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := c.storer.Create(ctx, set); err != nil {
		return Settings{}, fmt.Errorf("create: %w", err)
	}

	return set, nil
}

// Update applies the specified changes on top of the current settings and
// upserts the row, so a tenant missing its row gets one on first save.
func (c *Core) Update(ctx context.Context, set Settings, us UpdateSettings) (Settings, error) {
	ctx, span := otel.AddSpan(ctx, "business.settingsbus.update")
	defer span.End()

	if us.Theme != nil {
		set.Theme = *us.Theme
	}

	if us.ShowCountries != nil {
		set.ShowCountries = *us.ShowCountries
	}

	if us.ShowUniversities != nil {
		set.ShowUniversities = *us.ShowUniversities
	}

	if us.ShowPrograms != nil {
		set.ShowPrograms = *us.ShowPrograms
	}

	if us.ShowArticles != nil {
		set.ShowArticles = *us.ShowArticles
	}

	if us.ShowTestimonials != nil {
		set.ShowTestimonials = *us.ShowTestimonials
	}

	if us.FacebookURL != nil {
		set.FacebookURL = *us.FacebookURL
	}

	if us.InstagramURL != nil {
		set.InstagramURL = *us.InstagramURL
	}

	if us.TwitterURL != nil {
		set.TwitterURL = *us.TwitterURL
	}

	if us.YoutubeURL != nil {
		set.YoutubeURL = *us.YoutubeURL
	}

	set.UpdatedAt = time.Now()

	if err := c.storer.Upsert(ctx, set); err != nil {
		return Settings{}, fmt.Errorf("upsert: %w", err)
	}

	return set, nil
}

// QueryByClientID gets the settings for the specified tenant.
func (c *Core) QueryByClientID(ctx context.Context, clientID uuid.UUID) (Settings, error) {
	ctx, span := otel.AddSpan(ctx, "business.settingsbus.queryByClientID")
	defer span.End()

	set, err := c.storer.QueryByClientID(ctx, clientID)
	if err != nil {
		return Settings{}, fmt.Errorf("query: clientID[%s]: %w", clientID, err)
	}

	return set, nil
}
