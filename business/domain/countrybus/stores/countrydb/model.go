package countrydb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

type countryDB struct {
	ID          uuid.UUID      `db:"country_id"`
	ClientID    uuid.UUID      `db:"client_id"`
	Name        string         `db:"name"`
	NameAr      string         `db:"name_ar"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toDBCountry(bus countrybus.Country) countryDB {
	return countryDB{
		ID:       bus.ID,
		ClientID: bus.ClientID,
		Name:     bus.Name.String(),
		NameAr:   bus.NameAr.String(),
		Slug:     bus.Slug.String(),
		Description: sql.NullString{
			String: bus.Description,
			Valid:  bus.Description != "",
		},
		ImageURL:  weburl.ToSQLNullString(bus.ImageURL),
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusCountry(db countryDB) (countrybus.Country, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return countrybus.Country{}, fmt.Errorf("parse name: %w", err)
	}

	nameAr, err := name.Parse(db.NameAr)
	if err != nil {
		return countrybus.Country{}, fmt.Errorf("parse name_ar: %w", err)
	}

	slg, err := slug.Parse(db.Slug)
	if err != nil {
		return countrybus.Country{}, fmt.Errorf("parse slug: %w", err)
	}

	img, err := weburl.ParseNull(db.ImageURL.String)
	if err != nil {
		return countrybus.Country{}, fmt.Errorf("parse image url: %w", err)
	}

	bus := countrybus.Country{
		ID:          db.ID,
		ClientID:    db.ClientID,
		Name:        nme,
		NameAr:      nameAr,
		Slug:        slg,
		Description: db.Description.String,
		ImageURL:    img,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusCountries(dbs []countryDB) ([]countrybus.Country, error) {
	bus := make([]countrybus.Country, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusCountry(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
