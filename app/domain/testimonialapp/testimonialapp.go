// Package testimonialapp provides the admin api for managing testimonials.
package testimonialapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/testimonialbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	testimonialBus *testimonialbus.Core
}

func newApp(testimonialBus *testimonialbus.Core) *app {
	return &app{
		testimonialBus: testimonialBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTestimonial
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	nt, err := toBusNewTestimonial(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tst, err := a.testimonialBus.Create(ctx, clientID, nt)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "create: nt[%+v]: %s", nt, err)
	}

	return toAppTestimonial(tst)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateTestimonial
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tst, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	ut, err := toBusUpdateTestimonial(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updTst, err := a.testimonialBus.Update(ctx, tst, ut)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "update: testimonialID[%s] ut[%+v]: %s", tst.ID, ut, err)
	}

	return toAppTestimonial(updTst)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	tst, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.testimonialBus.Delete(ctx, tst); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: testimonialID[%s]: %s", tst.ID, err)
	}

	return nil
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, testimonialbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	tsts, err := a.testimonialBus.Query(ctx, clientID, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.testimonialBus.Count(ctx, clientID)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppTestimonials(tsts), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	tst, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppTestimonial(tst)
}

func (a *app) queryByIDFromRequest(ctx context.Context, r *http.Request) (testimonialbus.Testimonial, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return testimonialbus.Testimonial{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	testimonialID, err := uuid.Parse(web.Param(r, "testimonial_id"))
	if err != nil {
		return testimonialbus.Testimonial{}, errs.NewFieldErrors("testimonial_id", err)
	}

	tst, err := a.testimonialBus.QueryByID(ctx, clientID, testimonialID)
	if err != nil {
		if errors.Is(err, testimonialbus.ErrNotFound) {
			return testimonialbus.Testimonial{}, errs.New(errs.NotFound, err)
		}
		return testimonialbus.Testimonial{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: testimonialID[%s]: %s", testimonialID, err)
	}

	return tst, nil
}
