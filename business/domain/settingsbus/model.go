package settingsbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/weburl"
)

// Settings represents the per tenant site configuration. Exactly one row
// exists per client once the tenant is provisioned.
type Settings struct {
	ClientID         uuid.UUID
	Theme            Theme
	ShowCountries    bool
	ShowUniversities bool
	ShowPrograms     bool
	ShowArticles     bool
	ShowTestimonials bool
	FacebookURL      weburl.Null
	InstagramURL     weburl.Null
	TwitterURL       weburl.Null
	YoutubeURL       weburl.Null
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Theme carries the three site colors.
type Theme struct {
	Primary   hexcolor.Color
	Secondary hexcolor.Color
	Accent    hexcolor.Color
}

// NewSettings contains information needed to seed settings for a tenant.
type NewSettings struct {
	Theme Theme
}

// UpdateSettings contains information needed to update settings.
type UpdateSettings struct {
	Theme            *Theme
	ShowCountries    *bool
	ShowUniversities *bool
	ShowPrograms     *bool
	ShowArticles     *bool
	ShowTestimonials *bool
	FacebookURL      *weburl.Null
	InstagramURL     *weburl.Null
	TwitterURL       *weburl.Null
	YoutubeURL       *weburl.Null
}
