package clientapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/provisionbus"
	"github.com/studygate/studygate/business/types/hexcolor"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/business/types/weburl"
)

// Client represents a tenant in the platform api.
type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Domain         string `json:"domain"`
	LogoURL        string `json:"logoUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	ProjectID      string `json:"projectId,omitempty"`
	DeployURL      string `json:"deployUrl,omitempty"`
	CustomDomain   string `json:"customDomain,omitempty"`
	Enabled        bool   `json:"enabled"`
	DateCreated    string `json:"dateCreated"`
	DateUpdated    string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (c Client) Encode() ([]byte, string, error) {
	data, err := json.Marshal(c)
	return data, "application/json", err
}

func toAppClient(bus clientbus.Client) Client {
	return Client{
		ID:             bus.ID.String(),
		Name:           bus.Name.String(),
		Domain:         bus.Domain,
		LogoURL:        bus.LogoURL.String(),
		PrimaryColor:   bus.Theme.Primary.String(),
		SecondaryColor: bus.Theme.Secondary.String(),
		AccentColor:    bus.Theme.Accent.String(),
		ProjectID:      bus.Deployment.ProjectID,
		DeployURL:      bus.Deployment.URL,
		CustomDomain:   bus.Deployment.CustomDomain,
		Enabled:        bus.Enabled,
		DateCreated:    bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:    bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppClients(clients []clientbus.Client) []Client {
	app := make([]Client, len(clients))
	for i, client := range clients {
		app[i] = toAppClient(client)
	}
	return app
}

// =============================================================================

// NewTenant defines the data needed to provision a tenant.
type NewTenant struct {
	SiteName       string `json:"siteName" validate:"required"`
	Domain         string `json:"domain" validate:"required,fqdn"`
	OwnerName      string `json:"ownerName"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	PrimaryColor   string `json:"primaryColor" validate:"required"`
	SecondaryColor string `json:"secondaryColor" validate:"required"`
	AccentColor    string `json:"accentColor" validate:"required"`
	LogoURL        string `json:"logoUrl"`
}

// Decode implements the web.Decoder interface.
func (app *NewTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewTenant(app NewTenant) (provisionbus.NewTenant, error) {
	siteName, err := name.Parse(app.SiteName)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parse siteName: %w", err)
	}

	ownerName, err := name.ParseNull(app.OwnerName)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parse ownerName: %w", err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parse email: %w", err)
	}

	pass, err := password.Parse(app.Password)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parse password: %w", err)
	}

	theme, err := parseTheme(app.PrimaryColor, app.SecondaryColor, app.AccentColor)
	if err != nil {
		return provisionbus.NewTenant{}, err
	}

	logo, err := weburl.ParseNull(app.LogoURL)
	if err != nil {
		return provisionbus.NewTenant{}, fmt.Errorf("parse logoUrl: %w", err)
	}

	bus := provisionbus.NewTenant{
		SiteName:  siteName,
		Domain:    app.Domain,
		OwnerName: ownerName,
		Email:     *addr,
		Password:  pass,
		Theme:     theme,
		LogoURL:   logo,
	}

	return bus, nil
}

// Tenant is the provisioning response.
type Tenant struct {
	Client       Client `json:"client"`
	AdminID      string `json:"adminId"`
	AdminEmail   string `json:"adminEmail"`
	DeployStatus string `json:"deployStatus"`
}

// Encode implements the web.Encoder interface.
func (t Tenant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

func toAppTenant(bus provisionbus.Tenant) Tenant {
	return Tenant{
		Client:       toAppClient(bus.Client),
		AdminID:      bus.Admin.ID.String(),
		AdminEmail:   bus.Admin.Email.Address,
		DeployStatus: bus.DeployStatus.String(),
	}
}

// =============================================================================

// UpdateClient defines the data needed to update a tenant.
type UpdateClient struct {
	Name           *string `json:"name"`
	Domain         *string `json:"domain" validate:"omitempty,fqdn"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	AccentColor    *string `json:"accentColor"`
	Enabled        *bool   `json:"enabled"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateClient) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateClient) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateClient(app UpdateClient) (clientbus.UpdateClient, error) {
	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return clientbus.UpdateClient{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var logo *weburl.Null
	if app.LogoURL != nil {
		u, err := weburl.ParseNull(*app.LogoURL)
		if err != nil {
			return clientbus.UpdateClient{}, fmt.Errorf("parse logoUrl: %w", err)
		}
		logo = &u
	}

	var theme *clientbus.Theme
	if app.PrimaryColor != nil || app.SecondaryColor != nil || app.AccentColor != nil {
		if app.PrimaryColor == nil || app.SecondaryColor == nil || app.AccentColor == nil {
			return clientbus.UpdateClient{}, fmt.Errorf("theme colors must be updated together")
		}

		t, err := parseTheme(*app.PrimaryColor, *app.SecondaryColor, *app.AccentColor)
		if err != nil {
			return clientbus.UpdateClient{}, err
		}
		theme = &t
	}

	bus := clientbus.UpdateClient{
		Name:    nme,
		Domain:  app.Domain,
		LogoURL: logo,
		Theme:   theme,
		Enabled: app.Enabled,
	}

	return bus, nil
}

func parseTheme(primary, secondary, accent string) (clientbus.Theme, error) {
	p, err := hexcolor.Parse(primary)
	if err != nil {
		return clientbus.Theme{}, fmt.Errorf("parse primaryColor: %w", err)
	}

	s, err := hexcolor.Parse(secondary)
	if err != nil {
		return clientbus.Theme{}, fmt.Errorf("parse secondaryColor: %w", err)
	}

	a, err := hexcolor.Parse(accent)
	if err != nil {
		return clientbus.Theme{}, fmt.Errorf("parse accentColor: %w", err)
	}

	return clientbus.Theme{
		Primary:   p,
		Secondary: s,
		Accent:    a,
	}, nil
}
