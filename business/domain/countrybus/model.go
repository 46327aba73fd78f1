package countrybus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// Country represents a study destination published on a tenant site.
type Country struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Name        name.Name
	NameAr      name.Name
	Slug        slug.Slug
	Description string
	ImageURL    weburl.Null
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCountry contains information needed to create a new country.
type NewCountry struct {
	Name        name.Name
	NameAr      name.Name
	Slug        slug.Slug
	Description string
	ImageURL    weburl.Null
}

// UpdateCountry contains information needed to update a country.
type UpdateCountry struct {
	Name        *name.Name
	NameAr      *name.Name
	Slug        *slug.Slug
	Description *string
	ImageURL    *weburl.Null
}
