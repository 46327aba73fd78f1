package articleapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth       *auth.Auth
	ArticleBus *articlebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.ArticleBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/articles", api.query, authen, ruleAdmin)
	app.HandlerFunc(http.MethodGet, version, "/admin/articles/{article_id}", api.queryByID, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPost, version, "/admin/articles", api.create, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/articles/{article_id}", api.update, authen, ruleAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/admin/articles/{article_id}", api.delete, authen, ruleAdmin)
}
