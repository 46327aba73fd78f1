package checkapp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/foundation/logger"
)

func TestReadiness_RedisDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectQuery("SELECT true").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	// Port 1 is never listening so the ping fails immediately. A healthy
	// database is not enough: sessions live in redis, so auth is down
	// without it.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	api := newApp("test", log, sqlx.NewDb(db, "postgres"), rdb)

	r := httptest.NewRequest(http.MethodGet, "/v1/readiness", nil)
	resp := api.readiness(context.Background(), r)

	er, ok := resp.(*errs.Error)
	require.True(t, ok, "expected an error response")
	assert.Equal(t, errs.Internal, er.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
