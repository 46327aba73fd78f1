package consultationdb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/phone"
)

type consultationDB struct {
	ID          uuid.UUID      `db:"consultation_id"`
	ClientID    uuid.UUID      `db:"client_id"`
	FullName    string         `db:"full_name"`
	Phone       string         `db:"phone"`
	Email       sql.NullString `db:"email"`
	Destination sql.NullString `db:"destination"`
	Message     sql.NullString `db:"message"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toDBConsultation(bus consultationbus.Consultation) consultationDB {
	db := consultationDB{
		ID:       bus.ID,
		ClientID: bus.ClientID,
		FullName: bus.FullName.String(),
		Phone:    bus.Phone.String(),
		Destination: sql.NullString{
			String: bus.Destination,
			Valid:  bus.Destination != "",
		},
		Message: sql.NullString{
			String: bus.Message,
			Valid:  bus.Message != "",
		},
		Status:    bus.Status.String(),
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}

	if bus.Email != nil {
		db.Email = sql.NullString{
			String: bus.Email.Address,
			Valid:  true,
		}
	}

	return db
}

func toBusConsultation(db consultationDB) (consultationbus.Consultation, error) {
	fullName, err := name.Parse(db.FullName)
	if err != nil {
		return consultationbus.Consultation{}, fmt.Errorf("parse full name: %w", err)
	}

	phn, err := phone.Parse(db.Phone)
	if err != nil {
		return consultationbus.Consultation{}, fmt.Errorf("parse phone: %w", err)
	}

	status, err := consultationbus.ParseStatus(db.Status)
	if err != nil {
		return consultationbus.Consultation{}, fmt.Errorf("parse status: %w", err)
	}

	var email *mail.Address
	if db.Email.Valid {
		email = &mail.Address{
			Address: db.Email.String,
		}
	}

	bus := consultationbus.Consultation{
		ID:          db.ID,
		ClientID:    db.ClientID,
		FullName:    fullName,
		Phone:       phn,
		Email:       email,
		Destination: db.Destination.String,
		Message:     db.Message.String,
		Status:      status,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusConsultations(dbs []consultationDB) ([]consultationbus.Consultation, error) {
	bus := make([]consultationbus.Consultation, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusConsultation(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
