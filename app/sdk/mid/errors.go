package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/sdk/web"
	"github.com/studygate/studygate/foundation/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform
// way. Unexpected errors (status >= 500) are logged.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			if errs.IsError(err) {
				appErr := errs.GetError(err)

				log.Error(ctx, "handled error during request",
					"err", err,
					"source_err_file", appErr.FileName,
					"source_err_func", appErr.FuncName)

				if appErr.Code == errs.InternalOnlyLog {
					appErr = errs.New(errs.Internal, errors.New("internal server error"))
				}

				return appErr
			}

			log.Error(ctx, "unhandled error during request", "err", err)

			return errs.New(errs.Unknown, errors.New("unknown error"))
		}

		return h
	}

	return m
}
