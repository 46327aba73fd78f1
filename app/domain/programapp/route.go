package programapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth       *auth.Auth
	ProgramBus *programbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.ProgramBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/programs", api.query, authen, ruleAdmin)
	app.HandlerFunc(http.MethodGet, version, "/admin/programs/{program_id}", api.queryByID, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPost, version, "/admin/programs", api.create, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/programs/{program_id}", api.update, authen, ruleAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/admin/programs/{program_id}", api.delete, authen, ruleAdmin)
}
