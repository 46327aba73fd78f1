package messagedb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/types/name"
)

type messageDB struct {
	ID        uuid.UUID      `db:"message_id"`
	ClientID  uuid.UUID      `db:"client_id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Subject   sql.NullString `db:"subject"`
	Body      string         `db:"message"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func toDBMessage(bus messagebus.Message) messageDB {
	return messageDB{
		ID:       bus.ID,
		ClientID: bus.ClientID,
		Name:     bus.Name.String(),
		Email:    bus.Email.Address,
		Subject: sql.NullString{
			String: bus.Subject,
			Valid:  bus.Subject != "",
		},
		Body:      bus.Body,
		Status:    bus.Status.String(),
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusMessage(db messageDB) (messagebus.Message, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return messagebus.Message{}, fmt.Errorf("parse name: %w", err)
	}

	status, err := messagebus.ParseStatus(db.Status)
	if err != nil {
		return messagebus.Message{}, fmt.Errorf("parse status: %w", err)
	}

	bus := messagebus.Message{
		ID:       db.ID,
		ClientID: db.ClientID,
		Name:     nme,
		Email: mail.Address{
			Address: db.Email,
		},
		Subject:   db.Subject.String,
		Body:      db.Body,
		Status:    status,
		CreatedAt: db.CreatedAt.In(time.Local),
		UpdatedAt: db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusMessages(dbs []messageDB) ([]messagebus.Message, error) {
	bus := make([]messagebus.Message, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusMessage(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
