package dashboardapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/dashboardbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth         *auth.Auth
	DashboardBus *dashboardbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.DashboardBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/stats", api.queryStats, authen, ruleAdmin)
}
