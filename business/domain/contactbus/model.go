package contactbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/phone"
	"github.com/studygate/studygate/business/types/weburl"
)

// ContactInfo represents the contact details a tenant publishes on its
// site. Exactly one row exists per client once the tenant is provisioned.
type ContactInfo struct {
	ClientID     uuid.UUID
	Phones       []string
	Emails       []string
	Address      string
	WorkingHours string
	Whatsapp     phone.Null
	MapLink      weburl.Null
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewContactInfo contains information needed to seed contact info for a
// tenant.
type NewContactInfo struct {
	Phones []string
	Emails []string
}

// UpdateContactInfo contains information needed to update contact info.
type UpdateContactInfo struct {
	Phones       []string
	Emails       []string
	Address      *string
	WorkingHours *string
	Whatsapp     *phone.Null
	MapLink      *weburl.Null
}
