package siteapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log             *logger.Logger
	ClientBus       *clientbus.Core
	SettingsBus     *settingsbus.Core
	ContactBus      *contactbus.Core
	CountryBus      *countrybus.Core
	UniversityBus   *universitybus.Core
	ProgramBus      *programbus.Core
	ArticleBus      *articlebus.Core
	TestimonialBus  *testimonialbus.Core
	ConsultationBus *consultationbus.Core
	MessageBus      *messagebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	tenant := mid.TenantResolve(cfg.Log, cfg.ClientBus)

	api := newApp(cfg)

	app.HandlerFunc(http.MethodGet, version, "/site/settings", api.querySettings, tenant)
	app.HandlerFunc(http.MethodGet, version, "/site/contact", api.queryContact, tenant)

	app.HandlerFunc(http.MethodGet, version, "/site/countries", api.queryCountries, tenant)
	app.HandlerFunc(http.MethodGet, version, "/site/countries/{slug}", api.queryCountryBySlug, tenant)

	app.HandlerFunc(http.MethodGet, version, "/site/universities", api.queryUniversities, tenant)
	app.HandlerFunc(http.MethodGet, version, "/site/universities/{slug}", api.queryUniversityBySlug, tenant)

	app.HandlerFunc(http.MethodGet, version, "/site/programs", api.queryPrograms, tenant)
	app.HandlerFunc(http.MethodGet, version, "/site/programs/{slug}", api.queryProgramBySlug, tenant)

	app.HandlerFunc(http.MethodGet, version, "/site/articles", api.queryArticles, tenant)
	app.HandlerFunc(http.MethodGet, version, "/site/articles/{slug}", api.queryArticleBySlug, tenant)

	app.HandlerFunc(http.MethodGet, version, "/site/testimonials", api.queryTestimonials, tenant)

	app.HandlerFunc(http.MethodPost, version, "/site/consultations", api.createConsultation, tenant)
	app.HandlerFunc(http.MethodPost, version, "/site/messages", api.createMessage, tenant)
}
