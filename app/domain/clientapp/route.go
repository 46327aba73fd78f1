package clientapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/provisionbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth         *auth.Auth
	ClientBus    *clientbus.Core
	ProvisionBus *provisionbus.Core
}

// Routes adds specific routes for this group. Everything here is platform
// owner only.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleOwner := mid.Authorize(cfg.Auth, role.Owner)

	api := newApp(cfg.ClientBus, cfg.ProvisionBus)

	app.HandlerFunc(http.MethodGet, version, "/platform/clients", api.query, authen, ruleOwner)
	app.HandlerFunc(http.MethodGet, version, "/platform/clients/{client_id}", api.queryByID, authen, ruleOwner)
	app.HandlerFunc(http.MethodPost, version, "/platform/clients", api.provision, authen, ruleOwner)
	app.HandlerFunc(http.MethodPut, version, "/platform/clients/{client_id}", api.update, authen, ruleOwner)
	app.HandlerFunc(http.MethodDelete, version, "/platform/clients/{client_id}", api.delete, authen, ruleOwner)
}
