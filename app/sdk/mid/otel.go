package mid

import (
	"context"
	"net/http"

	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/foundation/otel"
	"go.opentelemetry.io/otel/trace"
)

// Otel injects the tracer into the request context so the handlers and the
// business layer underneath can attach spans to the request trace.
func Otel(tracer trace.Tracer) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			ctx = otel.InjectTracing(ctx, tracer)

			return next(ctx, r)
		}

		return h
	}

	return m
}
