package testimonialapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/weburl"
)

// Testimonial represents a student quote in the admin api.
type Testimonial struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Country     string `json:"country"`
	Quote       string `json:"quote"`
	Rating      int    `json:"rating"`
	ImageURL    string `json:"imageUrl,omitempty"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (t Testimonial) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTestimonial(bus testimonialbus.Testimonial) Testimonial {
	return Testimonial{
		ID:          bus.ID.String(),
		StudentName: bus.StudentName.String(),
		Country:     bus.Country,
		Quote:       bus.Quote,
		Rating:      bus.Rating,
		ImageURL:    bus.ImageURL.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppTestimonials(tsts []testimonialbus.Testimonial) []Testimonial {
	app := make([]Testimonial, len(tsts))
	for i, tst := range tsts {
		app[i] = toAppTestimonial(tst)
	}
	return app
}

// =============================================================================

// NewTestimonial defines the data needed to add a new testimonial.
type NewTestimonial struct {
	StudentName string `json:"studentName" validate:"required"`
	Country     string `json:"country"`
	Quote       string `json:"quote" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL    string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *NewTestimonial) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTestimonial) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewTestimonial(app NewTestimonial) (testimonialbus.NewTestimonial, error) {
	studentName, err := name.Parse(app.StudentName)
	if err != nil {
		return testimonialbus.NewTestimonial{}, fmt.Errorf("parse studentName: %w", err)
	}

	img, err := weburl.ParseNull(app.ImageURL)
	if err != nil {
		return testimonialbus.NewTestimonial{}, fmt.Errorf("parse imageUrl: %w", err)
	}

	bus := testimonialbus.NewTestimonial{
		StudentName: studentName,
		Country:     app.Country,
		Quote:       app.Quote,
		Rating:      app.Rating,
		ImageURL:    img,
	}

	return bus, nil
}

// =============================================================================

// UpdateTestimonial defines the data needed to update a testimonial.
type UpdateTestimonial struct {
	StudentName *string `json:"studentName"`
	Country     *string `json:"country"`
	Quote       *string `json:"quote"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL    *string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateTestimonial) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateTestimonial) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateTestimonial(app UpdateTestimonial) (testimonialbus.UpdateTestimonial, error) {
	var studentName *name.Name
	if app.StudentName != nil {
		nm, err := name.Parse(*app.StudentName)
		if err != nil {
			return testimonialbus.UpdateTestimonial{}, fmt.Errorf("parse studentName: %w", err)
		}
		studentName = &nm
	}

	var img *weburl.Null
	if app.ImageURL != nil {
		u, err := weburl.ParseNull(*app.ImageURL)
		if err != nil {
			return testimonialbus.UpdateTestimonial{}, fmt.Errorf("parse imageUrl: %w", err)
		}
		img = &u
	}

	bus := testimonialbus.UpdateTestimonial{
		StudentName: studentName,
		Country:     app.Country,
		Quote:       app.Quote,
		Rating:      app.Rating,
		ImageURL:    img,
	}

	return bus, nil
}
