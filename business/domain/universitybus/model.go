package universitybus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// University represents an institution published on a tenant site.
type University struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	CountryID   uuid.UUID
	Name        name.Name
	NameAr      name.Name
	Slug        slug.Slug
	City        string
	LogoURL     weburl.Null
	WebsiteURL  weburl.Null
	Ranking     int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUniversity contains information needed to create a new university.
type NewUniversity struct {
	CountryID   uuid.UUID
	Name        name.Name
	NameAr      name.Name
	Slug        slug.Slug
	City        string
	LogoURL     weburl.Null
	WebsiteURL  weburl.Null
	Ranking     int
	Description string
}

// UpdateUniversity contains information needed to update a university.
type UpdateUniversity struct {
	CountryID   *uuid.UUID
	Name        *name.Name
	NameAr      *name.Name
	Slug        *slug.Slug
	City        *string
	LogoURL     *weburl.Null
	WebsiteURL  *weburl.Null
	Ranking     *int
	Description *string
}
