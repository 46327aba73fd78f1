// Package all binds all the routes into the specified app.
package all

import (
	"github.com/studygate/studygate/app/domain/articleapp"
	"github.com/studygate/studygate/app/domain/authapp"
	"github.com/studygate/studygate/app/domain/checkapp"
	"github.com/studygate/studygate/app/domain/clientapp"
	"github.com/studygate/studygate/app/domain/countryapp"
	"github.com/studygate/studygate/app/domain/dashboardapp"
	"github.com/studygate/studygate/app/domain/leadapp"
	"github.com/studygate/studygate/app/domain/programapp"
	"github.com/studygate/studygate/app/domain/settingsapp"
	"github.com/studygate/studygate/app/domain/siteapp"
	"github.com/studygate/studygate/app/domain/testimonialapp"
	"github.com/studygate/studygate/app/domain/universityapp"
	"github.com/studygate/studygate/app/sdk/mux"
	"github.com/studygate/studygate/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {

	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
		RDB:   cfg.RDB,
	})

	authapp.Routes(app, authapp.Config{
		Auth: cfg.AuthConfig.Auth,
	})

	siteapp.Routes(app, siteapp.Config{
		Log:             cfg.Log,
		ClientBus:       cfg.BusConfig.ClientBus,
		SettingsBus:     cfg.BusConfig.SettingsBus,
		ContactBus:      cfg.BusConfig.ContactBus,
		CountryBus:      cfg.BusConfig.CountryBus,
		UniversityBus:   cfg.BusConfig.UniversityBus,
		ProgramBus:      cfg.BusConfig.ProgramBus,
		ArticleBus:      cfg.BusConfig.ArticleBus,
		TestimonialBus:  cfg.BusConfig.TestimonialBus,
		ConsultationBus: cfg.BusConfig.ConsultationBus,
		MessageBus:      cfg.BusConfig.MessageBus,
	})

	countryapp.Routes(app, countryapp.Config{
		Auth:       cfg.AuthConfig.Auth,
		CountryBus: cfg.BusConfig.CountryBus,
	})

	universityapp.Routes(app, universityapp.Config{
		Auth:          cfg.AuthConfig.Auth,
		UniversityBus: cfg.BusConfig.UniversityBus,
	})

	programapp.Routes(app, programapp.Config{
		Auth:       cfg.AuthConfig.Auth,
		ProgramBus: cfg.BusConfig.ProgramBus,
	})

	articleapp.Routes(app, articleapp.Config{
		Auth:       cfg.AuthConfig.Auth,
		ArticleBus: cfg.BusConfig.ArticleBus,
	})

	testimonialapp.Routes(app, testimonialapp.Config{
		Auth:           cfg.AuthConfig.Auth,
		TestimonialBus: cfg.BusConfig.TestimonialBus,
	})

	leadapp.Routes(app, leadapp.Config{
		Auth:            cfg.AuthConfig.Auth,
		ConsultationBus: cfg.BusConfig.ConsultationBus,
		MessageBus:      cfg.BusConfig.MessageBus,
	})

	settingsapp.Routes(app, settingsapp.Config{
		Auth:        cfg.AuthConfig.Auth,
		SettingsBus: cfg.BusConfig.SettingsBus,
		ContactBus:  cfg.BusConfig.ContactBus,
	})

	dashboardapp.Routes(app, dashboardapp.Config{
		Auth:         cfg.AuthConfig.Auth,
		DashboardBus: cfg.BusConfig.DashboardBus,
	})

	clientapp.Routes(app, clientapp.Config{
		Auth:         cfg.AuthConfig.Auth,
		ClientBus:    cfg.BusConfig.ClientBus,
		ProvisionBus: cfg.BusConfig.ProvisionBus,
	})
}
