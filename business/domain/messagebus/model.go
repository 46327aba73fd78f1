package messagebus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
)

// Message represents a contact form submission captured from a tenant site.
type Message struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Name      name.Name
	Email     mail.Address
	Subject   string
	Body      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMessage contains information captured from the public contact form.
type NewMessage struct {
	Name    name.Name
	Email   mail.Address
	Subject string
	Body    string
}

// UpdateMessage contains information an admin can change on a message.
type UpdateMessage struct {
	Status *Status
}
