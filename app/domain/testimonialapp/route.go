package testimonialapp

import (
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth           *auth.Auth
	TestimonialBus *testimonialbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "v1"

	authen := mid.Authenticate(cfg.Auth)
	ruleAdmin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.TestimonialBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/testimonials", api.query, authen, ruleAdmin)
	app.HandlerFunc(http.MethodGet, version, "/admin/testimonials/{testimonial_id}", api.queryByID, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPost, version, "/admin/testimonials", api.create, authen, ruleAdmin)
	app.HandlerFunc(http.MethodPut, version, "/admin/testimonials/{testimonial_id}", api.update, authen, ruleAdmin)
	app.HandlerFunc(http.MethodDelete, version, "/admin/testimonials/{testimonial_id}", api.delete, authen, ruleAdmin)
}
