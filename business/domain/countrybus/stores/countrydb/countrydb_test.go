package countrydb

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/domain/countrybus"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/types/slug"
	"github.com/studygate/studygate/foundation/logger"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *Store) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	store := NewStore(log, sqlxDB)

	return sqlxDB, mock, store
}

var countryColumns = []string{
	"country_id", "client_id", "name", "name_ar", "slug",
	"description", "image_url", "created_at", "updated_at",
}

func TestQuery_ScopedToTenant(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	clientID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(countryColumns).
		AddRow(uuid.New().String(), clientID.String(), "Canada", "كندا", "canada", "Study in Canada", nil, now, now).
		AddRow(uuid.New().String(), clientID.String(), "United Kingdom", "المملكة المتحدة", "uk", nil, nil, now, now)

	mock.ExpectQuery(`(?s)SELECT.+FROM.+countries.+WHERE.+client_id`).
		WithArgs(clientID.String(), 0, 10).
		WillReturnRows(rows)

	ctrys, err := store.Query(context.Background(), clientID, countrybus.DefaultOrderBy, page.MustParse("1", "10"))
	require.NoError(t, err)

	assert.Len(t, ctrys, 2)
	assert.Equal(t, "canada", ctrys[0].Slug.String())
	assert.Equal(t, clientID, ctrys[0].ClientID)
	assert.Equal(t, "", ctrys[1].Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByID_NotFound(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	clientID := uuid.New()
	countryID := uuid.New()

	// Zero rows back means the id does not exist inside this tenant, even if
	// it exists under another one.
	mock.ExpectQuery(`(?s)SELECT.+FROM.+countries.+WHERE.+country_id.+client_id`).
		WithArgs(countryID.String(), clientID.String()).
		WillReturnRows(sqlmock.NewRows(countryColumns))

	_, err := store.QueryByID(context.Background(), clientID, countryID)
	assert.ErrorIs(t, err, countrybus.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryBySlug(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	clientID := uuid.New()
	countryID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(countryColumns).
		AddRow(countryID.String(), clientID.String(), "Canada", "كندا", "canada", nil, nil, now, now)

	mock.ExpectQuery(`(?s)SELECT.+FROM.+countries.+WHERE.+slug.+client_id`).
		WithArgs("canada", clientID.String()).
		WillReturnRows(rows)

	ctry, err := store.QueryBySlug(context.Background(), clientID, slug.MustParse("canada"))
	require.NoError(t, err)

	assert.Equal(t, countryID, ctry.ID)
	assert.Equal(t, "Canada", ctry.Name.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ZeroRowsIsNotFound(t *testing.T) {
	db, mock, store := setupMockDB(t)
	defer db.Close()

	clientID := uuid.New()
	countryID := uuid.New()

	mock.ExpectExec(`(?s)DELETE.+FROM.+countries.+WHERE.+country_id.+client_id`).
		WithArgs(countryID.String(), clientID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), countrybus.Country{ID: countryID, ClientID: clientID})
	assert.ErrorIs(t, err, countrybus.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
