package leadapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth            *auth.Auth
	ConsultationBus *consultationbus.Core
	MessageBus      *messagebus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.ConsultationBus, cfg.MessageBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/consultations", api.queryConsultations, authen, ruleAdmin)
	app.HandlerFunc(http.MethodGet, version, "/admin/consultations/export", api.exportConsultations, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/consultations/{consultation_id}", api.updateConsultation, authen, ruleAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/admin/consultations/{consultation_id}", api.deleteConsultation, authen, ruleAdmin)

	app.HandlerFunc(http.MethodGet, version, "/admin/messages", api.queryMessages, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/messages/{message_id}", api.updateMessage, authen, ruleAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/admin/messages/{message_id}", api.deleteMessage, authen, ruleAdmin)
}
