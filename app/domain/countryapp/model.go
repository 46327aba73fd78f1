package countryapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// Country represents a destination in the admin api.
type Country struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (c Country) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppCountry(bus countrybus.Country) Country {
	return Country{
		ID:          bus.ID.String(),
		Name:        bus.Name.String(),
		NameAr:      bus.NameAr.String(),
		Slug:        bus.Slug.String(),
		Description: bus.Description,
		ImageURL:    bus.ImageURL.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppCountries(ctrys []countrybus.Country) []Country {
	app := make([]Country, len(ctrys))
	for i, ctry := range ctrys {
		app[i] = toAppCountry(ctry)
	}
	return app
}

// =============================================================================

// NewCountry defines the data needed to add a new country.
type NewCountry struct {
	Name        string `json:"name" validate:"required"`
	NameAr      string `json:"nameAr" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *NewCountry) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewCountry) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewCountry(app NewCountry) (countrybus.NewCountry, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return countrybus.NewCountry{}, fmt.Errorf("parse name: %w", err)
	}

	nmeAr, err := name.Parse(app.NameAr)
	if err != nil {
		return countrybus.NewCountry{}, fmt.Errorf("parse nameAr: %w", err)
	}

	slg, err := slug.Parse(app.Slug)
	if err != nil {
		return countrybus.NewCountry{}, fmt.Errorf("parse slug: %w", err)
	}

	img, err := weburl.ParseNull(app.ImageURL)
	if err != nil {
		return countrybus.NewCountry{}, fmt.Errorf("parse imageUrl: %w", err)
	}

	bus := countrybus.NewCountry{
		Name:        nme,
		NameAr:      nmeAr,
		Slug:        slg,
		Description: app.Description,
		ImageURL:    img,
	}

	return bus, nil
}

// =============================================================================

// UpdateCountry defines the data needed to update a country.
type UpdateCountry struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"nameAr"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateCountry) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateCountry) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateCountry(app UpdateCountry) (countrybus.UpdateCountry, error) {
	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return countrybus.UpdateCountry{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var nmeAr *name.Name
	if app.NameAr != nil {
		nm, err := name.Parse(*app.NameAr)
		if err != nil {
			return countrybus.UpdateCountry{}, fmt.Errorf("parse nameAr: %w", err)
		}
		nmeAr = &nm
	}

	var slg *slug.Slug
	if app.Slug != nil {
		s, err := slug.Parse(*app.Slug)
		if err != nil {
			return countrybus.UpdateCountry{}, fmt.Errorf("parse slug: %w", err)
		}
		slg = &s
	}

	var img *weburl.Null
	if app.ImageURL != nil {
		u, err := weburl.ParseNull(*app.ImageURL)
		if err != nil {
			return countrybus.UpdateCountry{}, fmt.Errorf("parse imageUrl: %w", err)
		}
		img = &u
	}

	bus := countrybus.UpdateCountry{
		Name:        nme,
		NameAr:      nmeAr,
		Slug:        slg,
		Description: app.Description,
		ImageURL:    img,
	}

	return bus, nil
}
