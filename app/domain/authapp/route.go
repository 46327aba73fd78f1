package authapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth *auth.Auth
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)

	api := newApp(cfg.Auth)

	app.HandlerFunc(http.MethodPost, version, "/auth/login", api.login)
	app.HandlerFunc(http.MethodDelete, version, "/auth/logout", api.logout, authen)
}
