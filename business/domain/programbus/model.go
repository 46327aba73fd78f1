package programbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
)

// Program represents a study program published on a tenant site. A program
// can hang off a university, a country, both, or neither.
type Program struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	UniversityID uuid.NullUUID
	CountryID    uuid.NullUUID
	Name         name.Name
	NameAr       name.Name
	Slug         slug.Slug
	Degree       string
	Language     string
	TuitionFee   float64
	Duration     string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProgram contains information needed to create a new program.
type NewProgram struct {
	UniversityID uuid.NullUUID
	CountryID    uuid.NullUUID
	Name         name.Name
	NameAr       name.Name
	Slug         slug.Slug
	Degree       string
	Language     string
	TuitionFee   float64
	Duration     string
	Description  string
}

// UpdateProgram contains information needed to update a program.
type UpdateProgram struct {
	UniversityID *uuid.NullUUID
	CountryID    *uuid.NullUUID
	Name         *name.Name
	NameAr       *name.Name
	Slug         *slug.Slug
	Degree       *string
	Language     *string
	TuitionFee   *float64
	Duration     *string
	Description  *string
}
