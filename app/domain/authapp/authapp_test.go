package authapp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/app/sdk/auth"
	"github.com/studygate/studygate/app/sdk/errs"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/foundation/logger"
)

// fakeStorer keeps admins in memory keyed by email.
type fakeStorer struct {
	byEmail map[string]adminbus.Admin
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{byEmail: make(map[string]adminbus.Admin)}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (adminbus.Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, adm adminbus.Admin) error {
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, adm adminbus.Admin) error {
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, adm adminbus.Admin) error {
	delete(f.byEmail, adm.Email.Address)
	return nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, adminID uuid.UUID) (adminbus.Admin, error) {
	for _, adm := range f.byEmail {
		if adm.ID == adminID {
			return adm, nil
		}
	}
	return adminbus.Admin{}, adminbus.ErrNotFound
}

func (f *fakeStorer) QueryByEmail(ctx context.Context, email mail.Address) (adminbus.Admin, error) {
	adm, exists := f.byEmail[email.Address]
	if !exists {
		return adminbus.Admin{}, adminbus.ErrNotFound
	}
	return adm, nil
}

func (f *fakeStorer) QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]adminbus.Admin, error) {
	var adms []adminbus.Admin
	for _, adm := range f.byEmail {
		if adm.ClientID == clientID {
			adms = append(adms, adm)
		}
	}
	return adms, nil
}

// =============================================================================

func newTestApp(t *testing.T) (*app, *adminbus.Core) {
	t.Helper()

	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	adminBus := adminbus.NewCore(newFakeStorer())

	// The session store and key lookup are never reached on a failed
	// authentication, which is all these tests exercise.
	ath := auth.New(auth.Config{
		Log:      log,
		AdminBus: adminBus,
		Issuer:   "test",
	})

	return newApp(ath), adminBus
}

func loginRequest(t *testing.T, email, pass string) *http.Request {
	t.Helper()

	body := []byte(`{"email":"` + email + `","password":"` + pass + `"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	return r
}

func TestLogin_DisabledAccountIsDistinct(t *testing.T) {
	ctx := context.Background()
	api, adminBus := newTestApp(t)

	email := mail.Address{Address: "admin@acme.com"}

	adm, err := adminBus.Create(ctx, adminbus.NewAdmin{
		ClientID: uuid.New(),
		Email:    email,
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	enabled := false
	_, err = adminBus.Update(ctx, adm, adminbus.UpdateAdmin{Enabled: &enabled})
	require.NoError(t, err)

	// Correct password against a disabled account must not collapse into
	// the generic bad-credentials response.
	resp := api.login(ctx, loginRequest(t, email.Address, "s3cret!"))

	er, ok := resp.(*errs.Error)
	require.True(t, ok, "expected an error response")
	assert.Equal(t, errs.Unauthenticated, er.Code)
	assert.Equal(t, adminbus.ErrDisabled.Error(), er.Message)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	api, adminBus := newTestApp(t)

	email := mail.Address{Address: "admin@acme.com"}

	_, err := adminBus.Create(ctx, adminbus.NewAdmin{
		ClientID: uuid.New(),
		Email:    email,
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	resp := api.login(ctx, loginRequest(t, email.Address, "wrong"))

	er, ok := resp.(*errs.Error)
	require.True(t, ok, "expected an error response")
	assert.Equal(t, errs.Unauthenticated, er.Code)
	assert.Equal(t, adminbus.ErrAuthenticationFailure.Error(), er.Message)
}
