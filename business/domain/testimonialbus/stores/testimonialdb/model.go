package testimonialdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/weburl"
)

type testimonialDB struct {
	ID          uuid.UUID      `db:"testimonial_id"`
	ClientID    uuid.UUID      `db:"client_id"`
	StudentName string         `db:"student_name"`
	Country     sql.NullString `db:"country"`
	Quote       string         `db:"quote"`
	Rating      int            `db:"rating"`
	ImageURL    sql.NullString `db:"image_url"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toDBTestimonial(bus testimonialbus.Testimonial) testimonialDB {
	return testimonialDB{
		ID:          bus.ID,
		ClientID:    bus.ClientID,
		StudentName: bus.StudentName.String(),
		Country: sql.NullString{
			String: bus.Country,
			Valid:  bus.Country != "",
		},
		Quote:     bus.Quote,
		Rating:    bus.Rating,
		ImageURL:  weburl.ToSQLNullString(bus.ImageURL),
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusTestimonial(db testimonialDB) (testimonialbus.Testimonial, error) {
	studentName, err := name.Parse(db.StudentName)
	if err != nil {
		return testimonialbus.Testimonial{}, fmt.Errorf("parse student name: %w", err)
	}

	img, err := weburl.ParseNull(db.ImageURL.String)
	if err != nil {
		return testimonialbus.Testimonial{}, fmt.Errorf("parse image url: %w", err)
	}

	bus := testimonialbus.Testimonial{
		ID:          db.ID,
		ClientID:    db.ClientID,
		StudentName: studentName,
		Country:     db.Country.String,
		Quote:       db.Quote,
		Rating:      db.Rating,
		ImageURL:    img,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusTestimonials(dbs []testimonialDB) ([]testimonialbus.Testimonial, error) {
	bus := make([]testimonialbus.Testimonial, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusTestimonial(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
