// Package dashboardbus provides the per tenant stats shown on the admin
// dashboard landing screen.
package dashboardbus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studygate/studygate/foundation/otel"
)

// Stats carries the per tenant entity counts plus the lead backlog.
type Stats struct {
	Countries            int
	Universities         int
	Programs             int
	Articles             int
	Testimonials         int
	Consultations        int
	PendingConsultations int
	Messages             int
	UnreadMessages       int
}

// Storer defines the behavior required by the dashboardbus to compute the
// stats.
type Storer interface {
	QueryStats(ctx context.Context, clientID uuid.UUID) (Stats, error)
}

// Core manages the set of APIs for dashboard access.
type Core struct {
	storer Storer
}

// NewCore constructs a core for dashboard api access.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// QueryStats returns the dashboard stats for the specified tenant.
func (c *Core) QueryStats(ctx context.Context, clientID uuid.UUID) (Stats, error) {
	ctx, span := otel.AddSpan(ctx, "business.dashboardbus.queryStats")
	defer span.End()

	stats, err := c.storer.QueryStats(ctx, clientID)
	if err != nil {
		return Stats{}, fmt.Errorf("query: clientID[%s]: %w", clientID, err)
	}

	return stats, nil
}
