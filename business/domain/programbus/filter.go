package programbus

import "github.com/google/uuid"

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	UniversityID *uuid.UUID
	CountryID    *uuid.UUID
}
