// Package siteapp provides the public api behind each tenant site. Every
// route runs behind the tenant resolver, so handlers only ever see content
// belonging to the domain the request arrived on.
package siteapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/articlebus"
	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/domain/messagebus"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/business/types/slug"
)

type app struct {
	settingsBus     *settingsbus.Core
	contactBus      *contactbus.Core
	countryBus      *countrybus.Core
	universityBus   *universitybus.Core
	programBus      *programbus.Core
	articleBus      *articlebus.Core
	testimonialBus  *testimonialbus.Core
	consultationBus *consultationbus.Core
	messageBus      *messagebus.Core
}

func newApp(cfg Config) *app {
	return &app{
		settingsBus:     cfg.SettingsBus,
		contactBus:      cfg.ContactBus,
		countryBus:      cfg.CountryBus,
		universityBus:   cfg.UniversityBus,
		programBus:      cfg.ProgramBus,
		articleBus:      cfg.ArticleBus,
		testimonialBus:  cfg.TestimonialBus,
		consultationBus: cfg.ConsultationBus,
		messageBus:      cfg.MessageBus,
	}
}

func (a *app) querySettings(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	set, err := a.settingsBus.QueryByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, settingsbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querysettings: clientID[%s]: %s", clientID, err)
	}

	return toAppSettings(set)
}

func (a *app) queryContact(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	ci, err := a.contactBus.QueryByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, contactbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querycontact: clientID[%s]: %s", clientID, err)
	}

	return toAppContactInfo(ci)
}

func (a *app) queryCountries(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	ctrys, err := a.countryBus.Query(ctx, clientID, countrybus.DefaultOrderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.countryBus.Count(ctx, clientID)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppCountries(ctrys), total, page)
}

func (a *app) queryCountryBySlug(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	slg, err := slug.Parse(web.Param(r, "slug"))
	if err != nil {
		return errs.NewFieldErrors("slug", err)
	}

	ctry, err := a.countryBus.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		if errors.Is(err, countrybus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyslug: slug[%s]: %s", slg, err)
	}

	return toAppCountry(ctry)
}

func (a *app) queryUniversities(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseUniversityFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	unis, err := a.universityBus.Query(ctx, clientID, filter, universitybus.DefaultOrderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.universityBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppUniversities(unis), total, page)
}

func (a *app) queryUniversityBySlug(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	slg, err := slug.Parse(web.Param(r, "slug"))
	if err != nil {
		return errs.NewFieldErrors("slug", err)
	}

	uni, err := a.universityBus.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		if errors.Is(err, universitybus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyslug: slug[%s]: %s", slg, err)
	}

	return toAppUniversity(uni)
}

func (a *app) queryPrograms(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseProgramFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	prgs, err := a.programBus.Query(ctx, clientID, filter, programbus.DefaultOrderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.programBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppPrograms(prgs), total, page)
}

func (a *app) queryProgramBySlug(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	slg, err := slug.Parse(web.Param(r, "slug"))
	if err != nil {
		return errs.NewFieldErrors("slug", err)
	}

	prg, err := a.programBus.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		if errors.Is(err, programbus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyslug: slug[%s]: %s", slg, err)
	}

	return toAppProgram(prg)
}

// queryArticles lists only published posts. The admin api is the one that
// sees drafts.
func (a *app) queryArticles(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	published := true
	filter := articlebus.QueryFilter{
		Published: &published,
	}

	arts, err := a.articleBus.Query(ctx, clientID, filter, articlebus.DefaultOrderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.articleBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppArticles(arts), total, page)
}

func (a *app) queryArticleBySlug(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	slg, err := slug.Parse(web.Param(r, "slug"))
	if err != nil {
		return errs.NewFieldErrors("slug", err)
	}

	art, err := a.articleBus.QueryBySlug(ctx, clientID, slg)
	if err != nil {
		if errors.Is(err, articlebus.ErrNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Errorf(errs.InternalOnlyLog, "querybyslug: slug[%s]: %s", slg, err)
	}

	if !art.Published {
		return errs.New(errs.NotFound, articlebus.ErrNotFound)
	}

	return toAppArticle(art)
}

func (a *app) queryTestimonials(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	tsts, err := a.testimonialBus.Query(ctx, clientID, testimonialbus.DefaultOrderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.testimonialBus.Count(ctx, clientID)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppTestimonials(tsts), total, page)
}

// createConsultation captures a consultation request from the public form.
// The lead always lands with a pending status no matter what the body says.
func (a *app) createConsultation(ctx context.Context, r *http.Request) web.Encoder {
	var app NewConsultation
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	nc, err := toBusNewConsultation(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	con, err := a.consultationBus.Create(ctx, clientID, nc)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: nc[%+v]: %s", nc, err)
	}

	return toAppConsultation(con)
}

// createMessage captures a contact form submission.
func (a *app) createMessage(ctx context.Context, r *http.Request) web.Encoder {
	var app NewMessage
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	nm, err := toBusNewMessage(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	msg, err := a.messageBus.Create(ctx, clientID, nm)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: nm[%+v]: %s", nm, err)
	}

	return toAppMessage(msg)
}
