package settingsdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/weburl"
)

type settingsDB struct {
	ClientID         uuid.UUID      `db:"client_id"`
	ColorPrimary     string         `db:"color_primary"`
	ColorSecondary   string         `db:"color_secondary"`
	ColorAccent      string         `db:"color_accent"`
	ShowCountries    bool           `db:"show_countries"`
	ShowUniversities bool           `db:"show_universities"`
	ShowPrograms     bool           `db:"show_programs"`
	ShowArticles     bool           `db:"show_articles"`
	ShowTestimonials bool           `db:"show_testimonials"`
	FacebookURL      sql.NullString `db:"facebook_url"`
	InstagramURL     sql.NullString `db:"instagram_url"`
	TwitterURL       sql.NullString `db:"twitter_url"`
	YoutubeURL       sql.NullString `db:"youtube_url"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func toDBSettings(bus settingsbus.Settings) settingsDB {
	return settingsDB{
		ClientID:         bus.ClientID,
		ColorPrimary:     bus.Theme.Primary.String(),
		ColorSecondary:   bus.Theme.Secondary.String(),
		ColorAccent:      bus.Theme.Accent.String(),
		ShowCountries:    bus.ShowCountries,
		ShowUniversities: bus.ShowUniversities,
		ShowPrograms:     bus.ShowPrograms,
		ShowArticles:     bus.ShowArticles,
		ShowTestimonials: bus.ShowTestimonials,
		FacebookURL:      weburl.ToSQLNullString(bus.FacebookURL),
		InstagramURL:     weburl.ToSQLNullString(bus.InstagramURL),
		TwitterURL:       weburl.ToSQLNullString(bus.TwitterURL),
		YoutubeURL:       weburl.ToSQLNullString(bus.YoutubeURL),
		CreatedAt:        bus.CreatedAt.UTC(),
		UpdatedAt:        bus.UpdatedAt.UTC(),
	}
}

func toBusSettings(db settingsDB) (settingsbus.Settings, error) {
	primary, err := hexcolor.Parse(db.ColorPrimary)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse primary: %w", err)
	}

	secondary, err := hexcolor.Parse(db.ColorSecondary)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse secondary: %w", err)
	}

	accent, err := hexcolor.Parse(db.ColorAccent)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse accent: %w", err)
	}

	facebook, err := weburl.ParseNull(db.FacebookURL.String)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse facebook: %w", err)
	}

	instagram, err := weburl.ParseNull(db.InstagramURL.String)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse instagram: %w", err)
	}

	twitter, err := weburl.ParseNull(db.TwitterURL.String)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse twitter: %w", err)
	}

	youtube, err := weburl.ParseNull(db.YoutubeURL.String)
	if err != nil {
		return settingsbus.Settings{}, fmt.Errorf("parse youtube: %w", err)
	}

	bus := settingsbus.Settings{
		ClientID: db.ClientID,
		Theme: settingsbus.Theme{
			Primary:   primary,
			Secondary: secondary,
			Accent:    accent,
		},
		ShowCountries:    db.ShowCountries,
		ShowUniversities: db.ShowUniversities,
		ShowPrograms:     db.ShowPrograms,
		ShowArticles:     db.ShowArticles,
		ShowTestimonials: db.ShowTestimonials,
		FacebookURL:      facebook,
		InstagramURL:     instagram,
		TwitterURL:       twitter,
		YoutubeURL:       youtube,
		CreatedAt:        db.CreatedAt.In(time.Local),
		UpdatedAt:        db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}
