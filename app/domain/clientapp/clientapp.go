// Package clientapp provides the platform owner api for managing tenants.
package clientapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/query"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/provisionbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	clientBus    *clientbus.Core
	provisionBus *provisionbus.Core
}

func newApp(clientBus *clientbus.Core, provisionBus *provisionbus.Core) *app {
	return &app{
		clientBus:    clientBus,
		provisionBus: provisionBus,
	}
}

// provision stands up a new tenant end to end. The response reports whether
// the deployment trigger succeeded; the tenant rows exist either way.
func (a *app) provision(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nt, err := toBusNewTenant(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tenant, err := a.provisionBus.Provision(ctx, nt)
	if err != nil {
		if errors.Is(err, provisionbus.ErrEmailTaken) {
			return errs.New(errs.Aborted, provisionbus.ErrEmailTaken)
		}
		if errors.Is(err, provisionbus.ErrDomainTaken) {
			return errs.New(errs.Aborted, provisionbus.ErrDomainTaken)
		}
		return errs.Errorf(errs.InternalOnlyLog, "provision: domain[%s]: %s", app.Domain, err)
	}

	return toAppTenant(tenant)
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, clientbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	clients, err := a.clientBus.Query(ctx, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.clientBus.Count(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppClients(clients), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	client, appErr := a.clientFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	return toAppClient(client)
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateClient
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	client, appErr := a.clientFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	uc, err := toBusUpdateClient(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updClient, err := a.clientBus.Update(ctx, client, uc)
	if err != nil {
		if errors.Is(err, clientbus.ErrUniqueDomain) {
			return errs.New(errs.Aborted, clientbus.ErrUniqueDomain)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: clientID[%s] uc[%+v]: %s", client.ID, uc, err)
	}

	return toAppClient(updClient)
}

// delete removes the tenant and every scoped row under it via the schema's
// cascading foreign keys.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	client, appErr := a.clientFromRequest(ctx, r)
	if appErr != nil {
		return appErr
	}

	if err := a.clientBus.Delete(ctx, client); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: clientID[%s]: %s", client.ID, err)
	}

	return nil
}

func (a *app) clientFromRequest(ctx context.Context, r *http.Request) (clientbus.Client, *errs.Error) {
	clientID, err := uuid.Parse(web.Param(r, "client_id"))
	if err != nil {
		return clientbus.Client{}, errs.NewFieldErrors("client_id", err)
	}

	client, err := a.clientBus.QueryByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, clientbus.ErrNotFound) {
			return clientbus.Client{}, errs.New(errs.NotFound, err)
		}
		return clientbus.Client{}, errs.Errorf(errs.InternalOnlyLog, "querybyid: clientID[%s]: %s", clientID, err)
	}

	return client, nil
}
