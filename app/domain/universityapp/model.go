package universityapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/business/types/weburl"
)

// University represents an institution in the admin api.
type University struct {
	ID          string `json:"id"`
	CountryID   string `json:"countryId"`
	Name        string `json:"name"`
	NameAr      string `json:"nameAr"`
	Slug        string `json:"slug"`
	City        string `json:"city"`
	LogoURL     string `json:"logoUrl,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Ranking     int    `json:"ranking,omitempty"`
	Description string `json:"description"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (u University) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUniversity(bus universitybus.University) University {
	return University{
		ID:          bus.ID.String(),
		CountryID:   bus.CountryID.String(),
		Name:        bus.Name.String(),
		NameAr:      bus.NameAr.String(),
		Slug:        bus.Slug.String(),
		City:        bus.City,
		LogoURL:     bus.LogoURL.String(),
		WebsiteURL:  bus.WebsiteURL.String(),
		Ranking:     bus.Ranking,
		Description: bus.Description,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppUniversities(unis []universitybus.University) []University {
	app := make([]University, len(unis))
	for i, uni := range unis {
		app[i] = toAppUniversity(uni)
	}
	return app
}

// =============================================================================

// NewUniversity defines the data needed to add a new university.
type NewUniversity struct {
	CountryID   string `json:"countryId" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	NameAr      string `json:"nameAr" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	City        string `json:"city"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Ranking     int    `json:"ranking" validate:"omitempty,min=1"`
	Description string `json:"description"`
}

// Decode implements the web.Decoder interface.
func (app *NewUniversity) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewUniversity) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewUniversity(app NewUniversity) (universitybus.NewUniversity, error) {
	countryID, err := uuid.Parse(app.CountryID)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse countryId: %w", err)
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse name: %w", err)
	}

	nmeAr, err := name.Parse(app.NameAr)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse nameAr: %w", err)
	}

	slg, err := slug.Parse(app.Slug)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse slug: %w", err)
	}

	logo, err := weburl.ParseNull(app.LogoURL)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse logoUrl: %w", err)
	}

	site, err := weburl.ParseNull(app.WebsiteURL)
	if err != nil {
		return universitybus.NewUniversity{}, fmt.Errorf("parse websiteUrl: %w", err)
	}

	bus := universitybus.NewUniversity{
		CountryID:   countryID,
		Name:        nme,
		NameAr:      nmeAr,
		Slug:        slg,
		City:        app.City,
		LogoURL:     logo,
		WebsiteURL:  site,
		Ranking:     app.Ranking,
		Description: app.Description,
	}

	return bus, nil
}

// =============================================================================

// UpdateUniversity defines the data needed to update a university.
type UpdateUniversity struct {
	CountryID   *string `json:"countryId" validate:"omitempty,uuid"`
	Name        *string `json:"name"`
	NameAr      *string `json:"nameAr"`
	Slug        *string `json:"slug"`
	City        *string `json:"city"`
	LogoURL     *string `json:"logoUrl"`
	WebsiteURL  *string `json:"websiteUrl"`
	Ranking     *int    `json:"ranking" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateUniversity) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateUniversity) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateUniversity(app UpdateUniversity) (universitybus.UpdateUniversity, error) {
	var countryID *uuid.UUID
	if app.CountryID != nil {
		id, err := uuid.Parse(*app.CountryID)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse countryId: %w", err)
		}
		countryID = &id
	}

	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var nmeAr *name.Name
	if app.NameAr != nil {
		nm, err := name.Parse(*app.NameAr)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse nameAr: %w", err)
		}
		nmeAr = &nm
	}

	var slg *slug.Slug
	if app.Slug != nil {
		s, err := slug.Parse(*app.Slug)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse slug: %w", err)
		}
		slg = &s
	}

	var logo *weburl.Null
	if app.LogoURL != nil {
		u, err := weburl.ParseNull(*app.LogoURL)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse logoUrl: %w", err)
		}
		logo = &u
	}

	var site *weburl.Null
	if app.WebsiteURL != nil {
		u, err := weburl.ParseNull(*app.WebsiteURL)
		if err != nil {
			return universitybus.UpdateUniversity{}, fmt.Errorf("parse websiteUrl: %w", err)
		}
		site = &u
	}

	bus := universitybus.UpdateUniversity{
		CountryID:   countryID,
		Name:        nme,
		NameAr:      nmeAr,
		Slug:        slg,
		City:        app.City,
		LogoURL:     logo,
		WebsiteURL:  site,
		Ranking:     app.Ranking,
		Description: app.Description,
	}

	return bus, nil
}
