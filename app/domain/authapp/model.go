package authapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/adminbus"
)

// Login defines the credentials needed to sign in.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *Login) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app Login) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// =============================================================================

// Session is the login response: the token plus the signed in admin.
type Session struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Encode implements the web.Encoder interface.
func (s Session) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

// Admin represents the signed in admin.
type Admin struct {
	ID          string `json:"id"`
	ClientID    string `json:"clientId,omitempty"`
	Email       string `json:"email"`
	FullName    string `json:"fullName,omitempty"`
	Role        string `json:"role"`
	DateCreated string `json:"dateCreated"`
}

func toAppSession(adm adminbus.Admin, token string) Session {
	var clientID string
	if adm.ClientID != uuid.Nil {
		clientID = adm.ClientID.String()
	}

	return Session{
		Token: token,
		Admin: Admin{
			ID:          adm.ID.String(),
			ClientID:    clientID,
			Email:       adm.Email.Address,
			FullName:    adm.FullName.String(),
			Role:        adm.Role().String(),
			DateCreated: adm.CreatedAt.Format(time.RFC3339),
		},
	}
}
