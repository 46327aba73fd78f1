package clientdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/weburl"
)

type clientDB struct {
	ID                 uuid.UUID      `db:"client_id"`
	Name               string         `db:"name"`
	Domain             string         `db:"domain"`
	LogoURL            sql.NullString `db:"logo_url"`
	ColorPrimary       string         `db:"color_primary"`
	ColorSecondary     string         `db:"color_secondary"`
	ColorAccent        string         `db:"color_accent"`
	DeployProjectID    sql.NullString `db:"deploy_project_id"`
	DeployURL          sql.NullString `db:"deploy_url"`
	DeployCustomDomain sql.NullString `db:"deploy_custom_domain"`
	Enabled            bool           `db:"enabled"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func toDBClient(bus clientbus.Client) clientDB {
	return clientDB{
		ID:                 bus.ID,
		Name:               bus.Name.String(),
		Domain:             bus.Domain,
		LogoURL:            weburl.ToSQLNullString(bus.LogoURL),
		ColorPrimary:       bus.Theme.Primary.String(),
		ColorSecondary:     bus.Theme.Secondary.String(),
		ColorAccent:        bus.Theme.Accent.String(),
		DeployProjectID:    toNullString(bus.Deployment.ProjectID),
		DeployURL:          toNullString(bus.Deployment.URL),
		DeployCustomDomain: toNullString(bus.Deployment.CustomDomain),
		Enabled:            bus.Enabled,
		CreatedAt:          bus.CreatedAt.UTC(),
		UpdatedAt:          bus.UpdatedAt.UTC(),
	}
}

func toBusClient(db clientDB) (clientbus.Client, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return clientbus.Client{}, fmt.Errorf("parse name: %w", err)
	}

	logo, err := weburl.ParseNull(db.LogoURL.String)
	if err != nil {
		return clientbus.Client{}, fmt.Errorf("parse logo: %w", err)
	}

	primary, err := hexcolor.Parse(db.ColorPrimary)
	if err != nil {
		return clientbus.Client{}, fmt.Errorf("parse primary: %w", err)
	}

	secondary, err := hexcolor.Parse(db.ColorSecondary)
	if err != nil {
		return clientbus.Client{}, fmt.Errorf("parse secondary: %w", err)
	}

	accent, err := hexcolor.Parse(db.ColorAccent)
	if err != nil {
		return clientbus.Client{}, fmt.Errorf("parse accent: %w", err)
	}

	bus := clientbus.Client{
		ID:      db.ID,
		Name:    nme,
		Domain:  db.Domain,
		LogoURL: logo,
		Theme: clientbus.Theme{
			Primary:   primary,
			Secondary: secondary,
			Accent:    accent,
		},
		Deployment: clientbus.Deployment{
			ProjectID:    db.DeployProjectID.String,
			URL:          db.DeployURL.String,
			CustomDomain: db.DeployCustomDomain.String,
		},
		Enabled:   db.Enabled,
		CreatedAt: db.CreatedAt.In(time.Local),
		UpdatedAt: db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusClients(dbs []clientDB) ([]clientbus.Client, error) {
	bus := make([]clientbus.Client, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusClient(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}

func toNullString(v string) sql.NullString {
	return sql.NullString{
		String: v,
		Valid:  v != "",
	}
}
