package programdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
)

type programDB struct {
	ID           uuid.UUID       `db:"program_id"`
	ClientID     uuid.UUID       `db:"client_id"`
	UniversityID uuid.NullUUID   `db:"university_id"`
	CountryID    uuid.NullUUID   `db:"country_id"`
	Name         string          `db:"name"`
	NameAr       string          `db:"name_ar"`
	Slug         string          `db:"slug"`
	Degree       sql.NullString  `db:"degree"`
	Language     sql.NullString  `db:"language"`
	TuitionFee   sql.NullFloat64 `db:"tuition_fee"`
	Duration     sql.NullString  `db:"duration"`
	Description  sql.NullString  `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func toDBProgram(bus programbus.Program) programDB {
	return programDB{
		ID:           bus.ID,
		ClientID:     bus.ClientID,
		UniversityID: bus.UniversityID,
		CountryID:    bus.CountryID,
		Name:         bus.Name.String(),
		NameAr:       bus.NameAr.String(),
		Slug:         bus.Slug.String(),
		Degree: sql.NullString{
			String: bus.Degree,
			Valid:  bus.Degree != "",
		},
		Language: sql.NullString{
			String: bus.Language,
			Valid:  bus.Language != "",
		},
		TuitionFee: sql.NullFloat64{
			Float64: bus.TuitionFee,
			Valid:   bus.TuitionFee != 0,
		},
		Duration: sql.NullString{
			String: bus.Duration,
			Valid:  bus.Duration != "",
		},
		Description: sql.NullString{
			String: bus.Description,
			Valid:  bus.Description != "",
		},
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusProgram(db programDB) (programbus.Program, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return programbus.Program{}, fmt.Errorf("parse name: %w", err)
	}

	nameAr, err := name.Parse(db.NameAr)
	if err != nil {
		return programbus.Program{}, fmt.Errorf("parse name_ar: %w", err)
	}

	slg, err := slug.Parse(db.Slug)
	if err != nil {
		return programbus.Program{}, fmt.Errorf("parse slug: %w", err)
	}

	bus := programbus.Program{
		ID:           db.ID,
		ClientID:     db.ClientID,
		UniversityID: db.UniversityID,
		CountryID:    db.CountryID,
		Name:         nme,
		NameAr:       nameAr,
		Slug:         slg,
		Degree:       db.Degree.String,
		Language:     db.Language.String,
		TuitionFee:   db.TuitionFee.Float64,
		Duration:     db.Duration.String,
		Description:  db.Description.String,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusPrograms(dbs []programDB) ([]programbus.Program, error) {
	bus := make([]programbus.Program, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusProgram(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
