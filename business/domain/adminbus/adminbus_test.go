package adminbus

import (
	"context"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/business/types/role"
	"golang.org/x/crypto/bcrypt"
)

// fakeStorer keeps admins in memory keyed by email.
type fakeStorer struct {
	byEmail map[string]Admin
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{byEmail: make(map[string]Admin)}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, adm Admin) error {
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, adm Admin) error {
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, adm Admin) error {
	delete(f.byEmail, adm.Email.Address)
	return nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, adminID uuid.UUID) (Admin, error) {
	for _, adm := range f.byEmail {
		if adm.ID == adminID {
			return adm, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (f *fakeStorer) QueryByEmail(ctx context.Context, email mail.Address) (Admin, error) {
	adm, exists := f.byEmail[email.Address]
	if !exists {
		return Admin{}, ErrNotFound
	}
	return adm, nil
}

func (f *fakeStorer) QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]Admin, error) {
	var adms []Admin
	for _, adm := range f.byEmail {
		if adm.ClientID == clientID {
			adms = append(adms, adm)
		}
	}
	return adms, nil
}

// =============================================================================

func TestCreate(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	adm, err := core.Create(ctx, NewAdmin{
		ClientID: uuid.New(),
		Email:    mail.Address{Address: "admin@acme.com"},
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, adm.ID)
	assert.True(t, adm.Enabled)
	assert.Equal(t, role.Admin, adm.Role())

	err = bcrypt.CompareHashAndPassword(adm.PasswordHash, []byte("s3cret!"))
	assert.NoError(t, err, "stored hash must verify against the raw password")
}

func TestRole_OwnerOnZeroClient(t *testing.T) {
	adm := Admin{ClientID: uuid.Nil}
	assert.Equal(t, role.Owner, adm.Role())

	adm.ClientID = uuid.New()
	assert.Equal(t, role.Admin, adm.Role())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	email := mail.Address{Address: "admin@acme.com"}

	created, err := core.Create(ctx, NewAdmin{
		ClientID: uuid.New(),
		Email:    email,
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	adm, err := core.Authenticate(ctx, email, "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, created.ID, adm.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	email := mail.Address{Address: "admin@acme.com"}

	_, err := core.Create(ctx, NewAdmin{
		Email:    email,
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	_, err = core.Authenticate(ctx, email, "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	_, err := core.Authenticate(ctx, mail.Address{Address: "ghost@acme.com"}, "s3cret!")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

func TestAuthenticate_Disabled(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	email := mail.Address{Address: "admin@acme.com"}

	adm, err := core.Create(ctx, NewAdmin{
		Email:    email,
		Password: password.MustParse("s3cret!"),
	})
	require.NoError(t, err)

	disabled := false
	_, err = core.Update(ctx, adm, UpdateAdmin{Enabled: &disabled})
	require.NoError(t, err)

	_, err = core.Authenticate(ctx, email, "s3cret!")
	assert.ErrorIs(t, err, ErrDisabled)
}
