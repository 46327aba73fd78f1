package mid

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/metrics"
	"github.com/studygate/studygate/business/sdk/web"
)

// Panics recovers a panicking handler into an internal error response so a
// single bad request cannot take the service down. The recovered value and
// stack are kept server side; the panic counter feeds the metrics endpoint.
func Panics() web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) (resp web.Encoder) {
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					resp = errs.Errorf(errs.InternalOnlyLog, "PANIC [%v] TRACE[%s]", rec, string(trace))

					metrics.AddPanics(ctx)
				}
			}()

			return next(ctx, r)
		}

		return h
	}

	return m
}
