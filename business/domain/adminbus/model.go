package adminbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/business/types/role"
)

// Admin represents an authenticated operator. A zero ClientID marks a
// platform owner; anything else binds the operator to one tenant.
type Admin struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	Email        mail.Address
	PasswordHash []byte
	FullName     name.Null
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role derives the operator role from the client binding.
func (a Admin) Role() role.Role {
	if a.ClientID == uuid.Nil {
		return role.Owner
	}

	return role.Admin
}

// NewAdmin contains information needed to create a new admin. Leave
// ClientID zero to create a platform owner.
type NewAdmin struct {
	ClientID uuid.UUID
	Email    mail.Address
	FullName name.Null
	Password password.Password
}

// UpdateAdmin contains information needed to update an admin.
type UpdateAdmin struct {
	Email    *mail.Address
	FullName *name.Null
	Password *password.Password
	Enabled  *bool
}
