package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/foundation/logger"
)

// TenantResolve maps the request Host to a client and stores the client id
// in the context. Public routes carry no token, so the domain is the only
// tenant signal they have.
func TenantResolve(log *logger.Logger, clientBus *clientbus.Core) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			domain := auth.ExtractDomain(r.Host)

			client, err := clientBus.ResolveDomain(ctx, domain)
			if err != nil {
				if errors.Is(err, clientbus.ErrDomainNotFound) {
					log.Info(ctx, "tenantresolve: unknown domain", "host", r.Host)
					return errs.Errorf(errs.NotFound, "unknown site: %s", domain)
				}
				return errs.Errorf(errs.Internal, "resolve domain: %s", err)
			}

			ctx = setClientID(ctx, client.ID)

			return next(ctx, r)
		}

		return h
	}

	return m
}
