package leadapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/messagebus"
)

// Consultation represents a consultation lead in the admin api.
type Consultation struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (c Consultation) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppConsultation(bus consultationbus.Consultation) Consultation {
	var email string
	if bus.Email != nil {
		email = bus.Email.Address
	}

	return Consultation{
		ID:          bus.ID.String(),
		FullName:    bus.FullName.String(),
		Phone:       bus.Phone.String(),
		Email:       email,
		Destination: bus.Destination,
		Message:     bus.Message,
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppConsultations(cons []consultationbus.Consultation) []Consultation {
	app := make([]Consultation, len(cons))
	for i, con := range cons {
		app[i] = toAppConsultation(con)
	}
	return app
}

// UpdateConsultation defines the data an admin can change on a lead.
type UpdateConsultation struct {
	Status string `json:"status" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateConsultation) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateConsultation) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateConsultation(app UpdateConsultation) (consultationbus.UpdateConsultation, error) {
	status, err := consultationbus.ParseStatus(app.Status)
	if err != nil {
		return consultationbus.UpdateConsultation{}, fmt.Errorf("parse status: %w", err)
	}

	bus := consultationbus.UpdateConsultation{
		Status: &status,
	}

	return bus, nil
}

// =============================================================================

// Message represents a contact message in the admin api.
type Message struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (m Message) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json", err
}

func toAppMessage(bus messagebus.Message) Message {
	return Message{
		ID:          bus.ID.String(),
		Name:        bus.Name.String(),
		Email:       bus.Email.Address,
		Subject:     bus.Subject,
		Message:     bus.Body,
		Status:      bus.Status.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppMessages(msgs []messagebus.Message) []Message {
	app := make([]Message, len(msgs))
	for i, msg := range msgs {
		app[i] = toAppMessage(msg)
	}
	return app
}

// UpdateMessage defines the data an admin can change on a message.
type UpdateMessage struct {
	Status string `json:"status" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateMessage) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateMessage) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateMessage(app UpdateMessage) (messagebus.UpdateMessage, error) {
	status, err := messagebus.ParseStatus(app.Status)
	if err != nil {
		return messagebus.UpdateMessage{}, fmt.Errorf("parse status: %w", err)
	}

	bus := messagebus.UpdateMessage{
		Status: &status,
	}

	return bus, nil
}
