package mid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/app/sdk/mid"
	"github.com/studygate/studygate/business/sdk/web"
)

func TestPanics_RecoversToError(t *testing.T) {
	handler := mid.Panics()(func(ctx context.Context, r *http.Request) web.Encoder {
		panic("boom")
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/anything", nil)
	resp := handler(context.Background(), r)

	er, ok := resp.(*errs.Error)
	require.True(t, ok, "a panic must surface as an error response")
	assert.Equal(t, errs.InternalOnlyLog, er.Code)
	assert.Contains(t, er.Message, "boom")
}

func TestPanics_PassesThrough(t *testing.T) {
	want := errs.Errorf(errs.InvalidArgument, "bad input")

	handler := mid.Panics()(func(ctx context.Context, r *http.Request) web.Encoder {
		return want
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/anything", nil)
	resp := handler(context.Background(), r)

	assert.Equal(t, want, resp)
}
