package admindb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/types/name"
)

type adminDB struct {
	ID           uuid.UUID      `db:"manager_id"`
	ClientID     uuid.NullUUID  `db:"client_id"`
	Email        string         `db:"email"`
	PasswordHash []byte         `db:"password"`
	FullName     sql.NullString `db:"full_name"`
	Enabled      bool           `db:"enabled"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func toDBAdmin(bus adminbus.Admin) adminDB {
	return adminDB{
		ID: bus.ID,
		ClientID: uuid.NullUUID{
			UUID:  bus.ClientID,
			Valid: bus.ClientID != uuid.Nil,
		},
		Email:        bus.Email.Address,
		PasswordHash: bus.PasswordHash,
		FullName:     bus.FullName.ToSQLNullString(),
		Enabled:      bus.Enabled,
		CreatedAt:    bus.CreatedAt.UTC(),
		UpdatedAt:    bus.UpdatedAt.UTC(),
	}
}

func toBusAdmin(db adminDB) (adminbus.Admin, error) {
	addr := mail.Address{
		Address: db.Email,
	}

	fullName, err := name.ParseNull(db.FullName.String)
	if err != nil {
		return adminbus.Admin{}, fmt.Errorf("parse full name: %w", err)
	}

	bus := adminbus.Admin{
		ID:           db.ID,
		ClientID:     db.ClientID.UUID,
		Email:        addr,
		PasswordHash: db.PasswordHash,
		FullName:     fullName,
		Enabled:      db.Enabled,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusAdmins(dbs []adminDB) ([]adminbus.Admin, error) {
	bus := make([]adminbus.Admin, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusAdmin(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
