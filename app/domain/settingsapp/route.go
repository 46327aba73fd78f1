package settingsapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth        *auth.Auth
	SettingsBus *settingsbus.Core
	ContactBus  *contactbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.SettingsBus, cfg.ContactBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/settings", api.querySettings, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/settings", api.updateSettings, authen, ruleAdmin)
	app.HandlerFunc(http.MethodGet, version, "/admin/contact", api.queryContact, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/contact", api.updateContact, authen, ruleAdmin)
}
