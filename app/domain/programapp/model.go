package programapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
)

// Program represents a study program in the admin api.
type Program struct {
	ID           string  `json:"id"`
	UniversityID string  `json:"universityId,omitempty"`
	CountryID    string  `json:"countryId,omitempty"`
	Name         string  `json:"name"`
	NameAr       string  `json:"nameAr"`
	Slug         string  `json:"slug"`
	Degree       string  `json:"degree"`
	Language     string  `json:"language"`
	TuitionFee   float64 `json:"tuitionFee,omitempty"`
	Duration     string  `json:"duration"`
	Description  string  `json:"description"`
	DateCreated  string  `json:"dateCreated"`
	DateUpdated  string  `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (p Program) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

func toAppProgram(bus programbus.Program) Program {
	var universityID string
	if bus.UniversityID.Valid {
		universityID = bus.UniversityID.UUID.String()
	}

	var countryID string
	if bus.CountryID.Valid {
		countryID = bus.CountryID.UUID.String()
	}

	return Program{
		ID:           bus.ID.String(),
		UniversityID: universityID,
		CountryID:    countryID,
		Name:         bus.Name.String(),
		NameAr:       bus.NameAr.String(),
		Slug:         bus.Slug.String(),
		Degree:       bus.Degree,
		Language:     bus.Language,
		TuitionFee:   bus.TuitionFee,
		Duration:     bus.Duration,
		Description:  bus.Description,
		DateCreated:  bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:  bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppPrograms(prgs []programbus.Program) []Program {
	app := make([]Program, len(prgs))
	for i, prg := range prgs {
		app[i] = toAppProgram(prg)
	}
	return app
}

func parseNullUUID(value string) (uuid.NullUUID, error) {
	if value == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// =============================================================================

// NewProgram defines the data needed to add a new program.
type NewProgram struct {
	UniversityID string  `json:"universityId" validate:"omitempty,uuid"`
	CountryID    string  `json:"countryId" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required"`
	NameAr       string  `json:"nameAr" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Degree       string  `json:"degree"`
	Language     string  `json:"language"`
	TuitionFee   float64 `json:"tuitionFee" validate:"omitempty,min=0"`
	Duration     string  `json:"duration"`
	Description  string  `json:"description"`
}

// Decode implements the web.Decoder interface.
func (app *NewProgram) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewProgram) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewProgram(app NewProgram) (programbus.NewProgram, error) {
	universityID, err := parseNullUUID(app.UniversityID)
	if err != nil {
		return programbus.NewProgram{}, fmt.Errorf("parse universityId: %w", err)
	}

	countryID, err := parseNullUUID(app.CountryID)
	if err != nil {
		return programbus.NewProgram{}, fmt.Errorf("parse countryId: %w", err)
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return programbus.NewProgram{}, fmt.Errorf("parse name: %w", err)
	}

	nmeAr, err := name.Parse(app.NameAr)
	if err != nil {
		return programbus.NewProgram{}, fmt.Errorf("parse nameAr: %w", err)
	}

	slg, err := slug.Parse(app.Slug)
	if err != nil {
		return programbus.NewProgram{}, fmt.Errorf("parse slug: %w", err)
	}

	bus := programbus.NewProgram{
		UniversityID: universityID,
		CountryID:    countryID,
		Name:         nme,
		NameAr:       nmeAr,
		Slug:         slg,
		Degree:       app.Degree,
		Language:     app.Language,
		TuitionFee:   app.TuitionFee,
		Duration:     app.Duration,
		Description:  app.Description,
	}

	return bus, nil
}

// =============================================================================

// UpdateProgram defines the data needed to update a program.
type UpdateProgram struct {
	UniversityID *string  `json:"universityId" validate:"omitempty,uuid"`
	CountryID    *string  `json:"countryId" validate:"omitempty,uuid"`
	Name         *string  `json:"name"`
	NameAr       *string  `json:"nameAr"`
	Slug         *string  `json:"slug"`
	Degree       *string  `json:"degree"`
	Language     *string  `json:"language"`
	TuitionFee   *float64 `json:"tuitionFee" validate:"omitempty,min=0"`
	Duration     *string  `json:"duration"`
	Description  *string  `json:"description"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateProgram) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateProgram) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateProgram(app UpdateProgram) (programbus.UpdateProgram, error) {
	var universityID *uuid.NullUUID
	if app.UniversityID != nil {
		id, err := parseNullUUID(*app.UniversityID)
		if err != nil {
			return programbus.UpdateProgram{}, fmt.Errorf("parse universityId: %w", err)
		}
		universityID = &id
	}

	var countryID *uuid.NullUUID
	if app.CountryID != nil {
		id, err := parseNullUUID(*app.CountryID)
		if err != nil {
			return programbus.UpdateProgram{}, fmt.Errorf("parse countryId: %w", err)
		}
		countryID = &id
	}

	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return programbus.UpdateProgram{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var nmeAr *name.Name
	if app.NameAr != nil {
		nm, err := name.Parse(*app.NameAr)
		if err != nil {
			return programbus.UpdateProgram{}, fmt.Errorf("parse nameAr: %w", err)
		}
		nmeAr = &nm
	}

	var slg *slug.Slug
	if app.Slug != nil {
		s, err := slug.Parse(*app.Slug)
		if err != nil {
			return programbus.UpdateProgram{}, fmt.Errorf("parse slug: %w", err)
		}
		slg = &s
	}

	bus := programbus.UpdateProgram{
		UniversityID: universityID,
		CountryID:    countryID,
		Name:         nme,
		NameAr:       nmeAr,
		Slug:         slg,
		Degree:       app.Degree,
		Language:     app.Language,
		TuitionFee:   app.TuitionFee,
		Duration:     app.Duration,
		Description:  app.Description,
	}

	return bus, nil
}
