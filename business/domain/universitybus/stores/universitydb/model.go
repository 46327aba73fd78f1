package universitydb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

type universityDB struct {
	ID          uuid.UUID      `db:"university_id"`
	ClientID    uuid.UUID      `db:"client_id"`
	CountryID   uuid.UUID      `db:"country_id"`
	Name        string         `db:"name"`
	NameAr      string         `db:"name_ar"`
	Slug        string         `db:"slug"`
	City        sql.NullString `db:"city"`
	LogoURL     sql.NullString `db:"logo_url"`
	WebsiteURL  sql.NullString `db:"website_url"`
	Ranking     sql.NullInt64  `db:"ranking"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toDBUniversity(bus universitybus.University) universityDB {
	return universityDB{
		ID:        bus.ID,
		ClientID:  bus.ClientID,
		CountryID: bus.CountryID,
		Name:      bus.Name.String(),
		NameAr:    bus.NameAr.String(),
		Slug:      bus.Slug.String(),
		City: sql.NullString{
			String: bus.City,
			Valid:  bus.City != "",
		},
		LogoURL:    weburl.ToSQLNullString(bus.LogoURL),
		WebsiteURL: weburl.ToSQLNullString(bus.WebsiteURL),
		Ranking: sql.NullInt64{
			Int64: int64(bus.Ranking),
			Valid: bus.Ranking != 0,
		},
		Description: sql.NullString{
			String: bus.Description,
			Valid:  bus.Description != "",
		},
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusUniversity(db universityDB) (universitybus.University, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return universitybus.University{}, fmt.Errorf("parse name: %w", err)
	}

	nameAr, err := name.Parse(db.NameAr)
	if err != nil {
		return universitybus.University{}, fmt.Errorf("parse name_ar: %w", err)
	}

	slg, err := slug.Parse(db.Slug)
	if err != nil {
		return universitybus.University{}, fmt.Errorf("parse slug: %w", err)
	}

	logo, err := weburl.ParseNull(db.LogoURL.String)
	if err != nil {
		return universitybus.University{}, fmt.Errorf("parse logo url: %w", err)
	}

	website, err := weburl.ParseNull(db.WebsiteURL.String)
	if err != nil {
		return universitybus.University{}, fmt.Errorf("parse website url: %w", err)
	}

	bus := universitybus.University{
		ID:          db.ID,
		ClientID:    db.ClientID,
		CountryID:   db.CountryID,
		Name:        nme,
		NameAr:      nameAr,
		Slug:        slg,
		City:        db.City.String,
		LogoURL:     logo,
		WebsiteURL:  website,
		Ranking:     int(db.Ranking.Int64),
		Description: db.Description.String,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusUniversities(dbs []universityDB) ([]universitybus.University, error) {
	bus := make([]universitybus.University, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusUniversity(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
