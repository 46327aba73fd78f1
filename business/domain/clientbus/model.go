package clientbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/weburl"
)

// Theme represents the three tenant theme colors.
type Theme struct {
	Primary   hexcolor.Color
	Secondary hexcolor.Color
	Accent    hexcolor.Color
}

// Deployment represents the external hosting metadata for a tenant site.
// All fields are empty until the deployment provider has been provisioned.
type Deployment struct {
	ProjectID    string
	URL          string
	CustomDomain string
}

// Client represents a tenant site in the system.
type Client struct {
	ID         uuid.UUID
	Name       name.Name
	Domain     string
	LogoURL    weburl.Null
	Theme      Theme
	Deployment Deployment
	Enabled    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewClient contains information needed to create a new client.
type NewClient struct {
	Name    name.Name
	Domain  string
	LogoURL weburl.Null
	Theme   Theme
}

// UpdateClient contains information needed to update a client.
type UpdateClient struct {
	Name       *name.Name
	Domain     *string
	LogoURL    *weburl.Null
	Theme      *Theme
	Deployment *Deployment
	Enabled    *bool
}
