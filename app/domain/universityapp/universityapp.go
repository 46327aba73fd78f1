// Package universityapp provides the admin api for managing universities.
package universityapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/universitybus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	universityBus *universitybus.Core
}

func newApp(universityBus *universitybus.Core) *app {
	return &app{
		universityBus: universityBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewUniversity
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	nu, err := toBusNewUniversity(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uni, err := a.universityBus.Create(ctx, clientID, nu)
	if err != nil {
		if errors.Is(err, universitybus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, universitybus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: nu[%+v]: %s", nu, err)
	}

	return toAppUniversity(uni)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUniversity
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uni, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	uu, err := toBusUpdateUniversity(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updUni, err := a.universityBus.Update(ctx, uni, uu)
	if err != nil {
		if errors.Is(err, universitybus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, universitybus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: universityID[%s] uu[%+v]: %s", uni.ID, uu, err)
	}

	return toAppUniversity(updUni)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	uni, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.universityBus.Delete(ctx, uni); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: universityID[%s]: %s", uni.ID, err)
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

	filter, err := parseFilter(qp)
	if err != nil {
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, universitybus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	unis, err := a.universityBus.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.universityBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppUniversities(unis), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	uni, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppUniversity(uni)
}

func (a *app) queryByIDFromRequest(ctx context.Context, r *http.Request) (universitybus.University, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return universitybus.University{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	universityID, err := uuid.Parse(web.Param(r, "university_id"))
	if err != nil {
		return universitybus.University{}, errs.NewFieldErrors("university_id", err)
	}

	uni, err := a.universityBus.QueryByID(ctx, clientID, universityID)
	if err != nil {
		if errors.Is(err, universitybus.ErrNotFound) {
			return universitybus.University{}, errs.New(errs.NotFound, err)
		}
		return universitybus.University{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: universityID[%s]: %s", universityID, err)
	}

	return uni, nil
}
