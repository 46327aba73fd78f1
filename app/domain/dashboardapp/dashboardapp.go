// Package dashboardapp provides the admin dashboard stats api.
package dashboardapp

import (
	"context"
	"net/http"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/domain/dashboardbus"
	"github.com/studygate/studygate/business/sdk/web"
)

type app struct {
	dashboardBus *dashboardbus.Core
}

func newApp(dashboardBus *dashboardbus.Core) *app {
	return &app{
		dashboardBus: dashboardBus,
	}
}

func (a *app) queryStats(ctx context.Context, r *http.Request) web.Encoder {
	clientID, err := mid.GetClientID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "client id missing in context: %s", err)
	}

	stats, err := a.dashboardBus.QueryStats(ctx, clientID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "querystats: clientID[%s]: %s", clientID, err)
	}

	return toAppStats(stats)
}
