// Package programapp provides the admin api for managing study programs.
package programapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/programbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	programBus *programbus.Core
}

func newApp(programBus *programbus.Core) *app {
	return &app{
		programBus: programBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewProgram
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	np, err := toBusNewProgram(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prg, err := a.programBus.Create(ctx, clientID, np)
	if err != nil {
		if errors.Is(err, programbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, programbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: np[%+v]: %s", np, err)
	}

	return toAppProgram(prg)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateProgram
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	prg, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	up, err := toBusUpdateProgram(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updPrg, err := a.programBus.Update(ctx, prg, up)
	if err != nil {
		if errors.Is(err, programbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, programbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: programID[%s] up[%+v]: %s", prg.ID, up, err)
	}

	return toAppProgram(updPrg)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	prg, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.programBus.Delete(ctx, prg); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: programID[%s]: %s", prg.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, programbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	prgs, err := a.programBus.Query(ctx, clientID, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.programBus.Count(ctx, clientID, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppPrograms(prgs), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	prg, appErr := a.queryByIDFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppProgram(prg)
}

func (a *app) queryByIDFromRequest(ctx context.Context, r *http.Request) (programbus.Program, *errs.Error) {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return programbus.Program{}, errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	programID, err := uuid.Parse(web.Param(r, "program_id"))
	if err != nil {
		return programbus.Program{}, errs.NewFieldErrors("program_id", err)
	}

	prg, err := a.programBus.QueryByID(ctx, clientID, programID)
	if err != nil {
		if errors.Is(err, programbus.ErrNotFound) {
			return programbus.Program{}, errs.New(errs.NotFound, err)
		}
		return programbus.Program{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: programID[%s]: %s", programID, err)
	}

	return prg, nil
}
