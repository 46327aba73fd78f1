package testimonialbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/weburl"
)

// Testimonial represents a student quote shown on a tenant site.
type Testimonial struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	StudentName name.Name
	Country     string
	Quote       string
	Rating      int
	ImageURL    weburl.Null
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTestimonial contains information needed to create a new testimonial.
type NewTestimonial struct {
	StudentName name.Name
	Country     string
	Quote       string
	Rating      int
	ImageURL    weburl.Null
}

// UpdateTestimonial contains information needed to update a testimonial.
type UpdateTestimonial struct {
	StudentName *name.Name
	Country     *string
	Quote       *string
	Rating      *int
	ImageURL    *weburl.Null
}
