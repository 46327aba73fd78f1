// Package countryapp provides the admin api for managing destinations.
package countryapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	countryBus *countrybus.Core
}

func newApp(countryBus *countrybus.Core) *app {
	return &app{
		countryBus: countryBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewCountry
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	nc, err := toBusNewCountry(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ctry, err := a.countryBus.Create(ctx, clientID, nc)
	if err != nil {
		if errors.Is(err, countrybus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, countrybus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: nc[%+v]: %s", nc, err)
	}

	return toAppCountry(ctry)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateCountry
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ctry, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	uc, err := toBusUpdateCountry(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updCtry, err := a.countryBus.Update(ctx, ctry, uc)
	if err != nil {
		if errors.Is(err, countrybus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, countrybus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: countryID[%s] uc[%+v]: %s", ctry.ID, uc, err)
	}

	return toAppCountry(updCtry)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	ctry, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.countryBus.Delete(ctx, ctry); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: countryID[%s]: %s", ctry.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, countrybus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	ctrys, err := a.countryBus.Query(ctx, clientID, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.countryBus.Count(ctx, clientID)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppCountries(ctrys), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	ctry, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppCountry(ctry)
}

// queryByIDFromRequest resolves the path id to a country owned by the
// caller's tenant. Rows from other tenants read as not found.
func (a *app) queryByIDFromRequest(ctx context.Context, r *http.Request) (countrybus.Country, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return countrybus.Country{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	countryID, err := uuid.Parse(web.Param(r, "country_id"))
	if err != nil {
		return countrybus.Country{}, errs.NewFieldErrors("country_id", err)
	}

	ctry, err := a.countryBus.QueryByID(ctx, clientID, countryID)
	if err != nil {
		if errors.Is(err, countrybus.ErrNotFound) {
			return countrybus.Country{}, errs.New(errs.NotFound, err)
		}
		return countrybus.Country{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: countryID[%s]: %s", countryID, err)
	}

	return ctry, nil
}
