package consultationbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/phone"
)

// Consultation represents a lead captured from a tenant site's consultation
// form.
type Consultation struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	FullName    name.Name
	Phone       phone.Phone
	Email       *mail.Address
	Destination string
	Message     string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewConsultation contains information captured from the public form.
type NewConsultation struct {
	FullName    name.Name
	Phone       phone.Phone
	Email       *mail.Address
	Destination string
	Message     string
}

// UpdateConsultation contains information an admin can change on a lead.
type UpdateConsultation struct {
	Status *Status
}
