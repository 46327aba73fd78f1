package settingsapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/phone"
	"github.com/studygate/studygate/business/types/weburl"
)

// Settings represents the tenant site configuration in the admin api.
type Settings struct {
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	AccentColor      string `json:"accentColor"`
	ShowCountries    bool   `json:"showCountries"`
	ShowUniversities bool   `json:"showUniversities"`
	ShowPrograms     bool   `json:"showPrograms"`
	ShowArticles     bool   `json:"showArticles"`
	ShowTestimonials bool   `json:"showTestimonials"`
	FacebookURL      string `json:"facebookUrl,omitempty"`
	InstagramURL     string `json:"instagramUrl,omitempty"`
	TwitterURL       string `json:"twitterUrl,omitempty"`
	YoutubeURL       string `json:"youtubeUrl,omitempty"`
	DateUpdated      string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (s Settings) Encode() ([]byte, string, error) {
	data, err := json.Marshal(s)
	return data, "application/json", err
}

func toAppSettings(bus settingsbus.Settings) Settings {
	return Settings{
		PrimaryColor:     bus.Theme.Primary.String(),
		SecondaryColor:   bus.Theme.Secondary.String(),
		AccentColor:      bus.Theme.Accent.String(),
		ShowCountries:    bus.ShowCountries,
		ShowUniversities: bus.ShowUniversities,
		ShowPrograms:     bus.ShowPrograms,
		ShowArticles:     bus.ShowArticles,
		ShowTestimonials: bus.ShowTestimonials,
		FacebookURL:      bus.FacebookURL.String(),
		InstagramURL:     bus.InstagramURL.String(),
		TwitterURL:       bus.TwitterURL.String(),
		YoutubeURL:       bus.YoutubeURL.String(),
		DateUpdated:      bus.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateSettings defines the data needed to update site settings.
type UpdateSettings struct {
	PrimaryColor     *string `json:"primaryColor"`
	SecondaryColor   *string `json:"secondaryColor"`
	AccentColor      *string `json:"accentColor"`
	ShowCountries    *bool   `json:"showCountries"`
	ShowUniversities *bool   `json:"showUniversities"`
	ShowPrograms     *bool   `json:"showPrograms"`
	ShowArticles     *bool   `json:"showArticles"`
	ShowTestimonials *bool   `json:"showTestimonials"`
	FacebookURL      *string `json:"facebookUrl"`
	InstagramURL     *string `json:"instagramUrl"`
	TwitterURL       *string `json:"twitterUrl"`
	YoutubeURL       *string `json:"youtubeUrl"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateSettings) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateSettings) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateSettings(app UpdateSettings) (settingsbus.UpdateSettings, error) {
	var theme *settingsbus.Theme
	if app.PrimaryColor != nil || app.SecondaryColor != nil || app.AccentColor != nil {
		if app.PrimaryColor == nil || app.SecondaryColor == nil || app.AccentColor == nil {
			return settingsbus.UpdateSettings{}, fmt.Errorf("theme colors must be updated together")
		}

		primary, err := hexcolor.Parse(*app.PrimaryColor)
		if err != nil {
			return settingsbus.UpdateSettings{}, fmt.Errorf("parse primaryColor: %w", err)
		}

		secondary, err := hexcolor.Parse(*app.SecondaryColor)
		if err != nil {
			return settingsbus.UpdateSettings{}, fmt.Errorf("parse secondaryColor: %w", err)
		}

		accent, err := hexcolor.Parse(*app.AccentColor)
		if err != nil {
			return settingsbus.UpdateSettings{}, fmt.Errorf("parse accentColor: %w", err)
		}

		theme = &settingsbus.Theme{
			Primary:   primary,
			Secondary: secondary,
			Accent:    accent,
		}
	}

	parseURL := func(field string, value *string) (*weburl.Null, error) {
		if value == nil {
			return nil, nil
		}
		u, err := weburl.ParseNull(*value)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", field, err)
		}
		return &u, nil
	}

	facebook, err := parseURL("facebookUrl", app.FacebookURL)
	if err != nil {
		return settingsbus.UpdateSettings{}, err
	}

	instagram, err := parseURL("instagramUrl", app.InstagramURL)
	if err != nil {
		return settingsbus.UpdateSettings{}, err
	}

	twitter, err := parseURL("twitterUrl", app.TwitterURL)
	if err != nil {
		return settingsbus.UpdateSettings{}, err
	}

	youtube, err := parseURL("youtubeUrl", app.YoutubeURL)
	if err != nil {
		return settingsbus.UpdateSettings{}, err
	}

	bus := settingsbus.UpdateSettings{
		Theme:            theme,
		ShowCountries:    app.ShowCountries,
		ShowUniversities: app.ShowUniversities,
		ShowPrograms:     app.ShowPrograms,
		ShowArticles:     app.ShowArticles,
		ShowTestimonials: app.ShowTestimonials,
		FacebookURL:      facebook,
		InstagramURL:     instagram,
		TwitterURL:       twitter,
		YoutubeURL:       youtube,
	}

	return bus, nil
}

// =============================================================================

// ContactInfo represents the tenant contact details in the admin api.
type ContactInfo struct {
	Phones       []string `json:"phones"`
	Emails       []string `json:"emails"`
	Address      string   `json:"address,omitempty"`
	WorkingHours string   `json:"workingHours,omitempty"`
	Whatsapp     string   `json:"whatsapp,omitempty"`
	MapLink      string   `json:"mapLink,omitempty"`
	DateUpdated  string   `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (ci ContactInfo) Encode() ([]byte, string, error) {
	data, err := json.Marshal(ci)
	return data, "application/json", err
}

func toAppContactInfo(bus contactbus.ContactInfo) ContactInfo {
	return ContactInfo{
		Phones:       bus.Phones,
		Emails:       bus.Emails,
		Address:      bus.Address,
		WorkingHours: bus.WorkingHours,
		Whatsapp:     bus.Whatsapp.String(),
		MapLink:      bus.MapLink.String(),
		DateUpdated:  bus.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateContactInfo defines the data needed to update contact details.
type UpdateContactInfo struct {
	Phones       []string `json:"phones"`
	Emails       []string `json:"emails" validate:"omitempty,dive,email"`
	Address      *string  `json:"address"`
	WorkingHours *string  `json:"workingHours"`
	Whatsapp     *string  `json:"whatsapp"`
	MapLink      *string  `json:"mapLink"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateContactInfo) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateContactInfo) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateContactInfo(app UpdateContactInfo) (contactbus.UpdateContactInfo, error) {
	var whatsapp *phone.Null
	if app.Whatsapp != nil {
		p, err := phone.ParseNull(*app.Whatsapp)
		if err != nil {
			return contactbus.UpdateContactInfo{}, fmt.Errorf("parse whatsapp: %w", err)
		}
		whatsapp = &p
	}

	var mapLink *weburl.Null
	if app.MapLink != nil {
		u, err := weburl.ParseNull(*app.MapLink)
		if err != nil {
			return contactbus.UpdateContactInfo{}, fmt.Errorf("parse mapLink: %w", err)
		}
		mapLink = &u
	}

	bus := contactbus.UpdateContactInfo{
		Phones:       app.Phones,
		Emails:       app.Emails,
		Address:      app.Address,
		WorkingHours: app.WorkingHours,
		Whatsapp:     whatsapp,
		MapLink:      mapLink,
	}

	return bus, nil
}
