package provisionbus

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/domain/adminbus"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/domain/contactbus"
	"github.com/studygate/studygate/business/domain/settingsbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/password"
	"github.com/studygate/studygate/foundation/logger"
)

// fakeTx satisfies the transaction contract without a database.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit() error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	if tx.committed {
		return sql.ErrTxDone
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx *fakeTx
}

func (b *fakeBeginner) Begin() (sqldb.CommitRollbacker, error) {
	b.tx = &fakeTx{}
	return b.tx, nil
}

// =============================================================================

type fakeClientStorer struct {
	byDomain map[string]clientbus.Client
}

func (f *fakeClientStorer) NewWithTx(tx sqldb.CommitRollbacker) (clientbus.Storer, error) {
	return f, nil
}

func (f *fakeClientStorer) Create(ctx context.Context, cl clientbus.Client) error {
	if _, exists := f.byDomain[cl.Domain]; exists {
		return clientbus.ErrUniqueDomain
	}
	f.byDomain[cl.Domain] = cl
	return nil
}

func (f *fakeClientStorer) Update(ctx context.Context, cl clientbus.Client) error {
	f.byDomain[cl.Domain] = cl
	return nil
}

func (f *fakeClientStorer) Delete(ctx context.Context, cl clientbus.Client) error {
	delete(f.byDomain, cl.Domain)
	return nil
}

func (f *fakeClientStorer) Query(ctx context.Context, orderBy order.By, page page.Page) ([]clientbus.Client, error) {
	return nil, nil
}

func (f *fakeClientStorer) Count(ctx context.Context) (int, error) {
	return len(f.byDomain), nil
}

func (f *fakeClientStorer) QueryByID(ctx context.Context, clientID uuid.UUID) (clientbus.Client, error) {
	for _, cl := range f.byDomain {
		if cl.ID == clientID {
			return cl, nil
		}
	}
	return clientbus.Client{}, clientbus.ErrNotFound
}

func (f *fakeClientStorer) QueryByDomain(ctx context.Context, domain string) (clientbus.Client, error) {
	cl, exists := f.byDomain[domain]
	if !exists {
		return clientbus.Client{}, clientbus.ErrDomainNotFound
	}
	return cl, nil
}

type fakeAdminStorer struct {
	byEmail map[string]adminbus.Admin
}

func (f *fakeAdminStorer) NewWithTx(tx sqldb.CommitRollbacker) (adminbus.Storer, error) {
	return f, nil
}

func (f *fakeAdminStorer) Create(ctx context.Context, adm adminbus.Admin) error {
	if _, exists := f.byEmail[adm.Email.Address]; exists {
		return adminbus.ErrUniqueEmail
	}
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeAdminStorer) Update(ctx context.Context, adm adminbus.Admin) error {
	f.byEmail[adm.Email.Address] = adm
	return nil
}

func (f *fakeAdminStorer) Delete(ctx context.Context, adm adminbus.Admin) error {
	delete(f.byEmail, adm.Email.Address)
	return nil
}

func (f *fakeAdminStorer) QueryByID(ctx context.Context, adminID uuid.UUID) (adminbus.Admin, error) {
	for _, adm := range f.byEmail {
		if adm.ID == adminID {
			return adm, nil
		}
	}
	return adminbus.Admin{}, adminbus.ErrNotFound
}

func (f *fakeAdminStorer) QueryByEmail(ctx context.Context, email mail.Address) (adminbus.Admin, error) {
	adm, exists := f.byEmail[email.Address]
	if !exists {
		return adminbus.Admin{}, adminbus.ErrNotFound
	}
	return adm, nil
}

func (f *fakeAdminStorer) QueryByClientID(ctx context.Context, clientID uuid.UUID) ([]adminbus.Admin, error) {
	return nil, nil
}

type fakeSettingsStorer struct {
	byClient map[uuid.UUID]settingsbus.Settings
}

func (f *fakeSettingsStorer) NewWithTx(tx sqldb.CommitRollbacker) (settingsbus.Storer, error) {
	return f, nil
}

func (f *fakeSettingsStorer) Create(ctx context.Context, set settingsbus.Settings) error {
	f.byClient[set.ClientID] = set
	return nil
}

func (f *fakeSettingsStorer) Upsert(ctx context.Context, set settingsbus.Settings) error {
	f.byClient[set.ClientID] = set
	return nil
}

func (f *fakeSettingsStorer) QueryByClientID(ctx context.Context, clientID uuid.UUID) (settingsbus.Settings, error) {
	return f.byClient[clientID], nil
}

type fakeContactStorer struct {
	byClient map[uuid.UUID]contactbus.ContactInfo
}

func (f *fakeContactStorer) NewWithTx(tx sqldb.CommitRollbacker) (contactbus.Storer, error) {
	return f, nil
}

func (f *fakeContactStorer) Create(ctx context.Context, ci contactbus.ContactInfo) error {
	f.byClient[ci.ClientID] = ci
	return nil
}

func (f *fakeContactStorer) Upsert(ctx context.Context, ci contactbus.ContactInfo) error {
	f.byClient[ci.ClientID] = ci
	return nil
}

func (f *fakeContactStorer) QueryByClientID(ctx context.Context, clientID uuid.UUID) (contactbus.ContactInfo, error) {
	return f.byClient[clientID], nil
}

type fakeDeployer struct {
	err        error
	deployment clientbus.Deployment
}

func (d *fakeDeployer) Deploy(ctx context.Context, client clientbus.Client) (clientbus.Deployment, error) {
	if d.err != nil {
		return clientbus.Deployment{}, d.err
	}
	return d.deployment, nil
}

// =============================================================================

type harness struct {
	core     *Core
	beginner *fakeBeginner
	clients  *fakeClientStorer
	admins   *fakeAdminStorer
	settings *fakeSettingsStorer
	contacts *fakeContactStorer
}

func newHarness(deployer Deployer) *harness {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	clients := &fakeClientStorer{byDomain: make(map[string]clientbus.Client)}
	admins := &fakeAdminStorer{byEmail: make(map[string]adminbus.Admin)}
	settings := &fakeSettingsStorer{byClient: make(map[uuid.UUID]settingsbus.Settings)}
	contacts := &fakeContactStorer{byClient: make(map[uuid.UUID]contactbus.ContactInfo)}
	beginner := &fakeBeginner{}

	core := NewCore(log, beginner,
		clientbus.NewCore(log, clients),
		adminbus.NewCore(admins),
		settingsbus.NewCore(settings),
		contactbus.NewCore(contacts),
		deployer,
	)

	return &harness{
		core:     core,
		beginner: beginner,
		clients:  clients,
		admins:   admins,
		settings: settings,
		contacts: contacts,
	}
}

func newTenantFixture() NewTenant {
	return NewTenant{
		SiteName: name.MustParse("Acme Abroad"),
		Domain:   "acme-abroad.com",
		Email:    mail.Address{Address: "owner@acme-abroad.com"},
		Password: password.MustParse("s3cret!"),
	}
}

func TestProvision(t *testing.T) {
	ctx := context.Background()

	deployer := &fakeDeployer{
		deployment: clientbus.Deployment{
			ProjectID: "prj-1",
			URL:       "https://acme-abroad.sites.example.com",
		},
	}
	h := newHarness(deployer)

	tenant, err := h.core.Provision(ctx, newTenantFixture())
	require.NoError(t, err)

	assert.Equal(t, DeployStatusDeployed, tenant.DeployStatus)
	assert.Equal(t, "prj-1", tenant.Client.Deployment.ProjectID)
	assert.Equal(t, tenant.Client.ID, tenant.Admin.ClientID)

	assert.True(t, h.beginner.tx.committed, "tenant rows must commit")

	// Settings and contact info are seeded under the new client.
	set := h.settings.byClient[tenant.Client.ID]
	assert.Equal(t, tenant.Client.ID, set.ClientID)

	ci := h.contacts.byClient[tenant.Client.ID]
	assert.Equal(t, []string{"owner@acme-abroad.com"}, ci.Emails)
}

func TestProvision_DeployFailure(t *testing.T) {
	ctx := context.Background()

	h := newHarness(&fakeDeployer{err: errors.New("provider down")})

	tenant, err := h.core.Provision(ctx, newTenantFixture())
	require.NoError(t, err, "a failed deploy trigger must not fail provisioning")

	assert.Equal(t, DeployStatusFailed, tenant.DeployStatus)
	assert.True(t, h.beginner.tx.committed, "tenant rows must exist despite the failed trigger")
	assert.Empty(t, tenant.Client.Deployment.ProjectID)
}

func TestProvision_EmailTaken(t *testing.T) {
	ctx := context.Background()

	h := newHarness(&fakeDeployer{})

	nt := newTenantFixture()
	h.admins.byEmail[nt.Email.Address] = adminbus.Admin{ID: uuid.New()}

	_, err := h.core.Provision(ctx, nt)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, h.clients.byDomain, "no client row may exist for a rejected run")
}

func TestProvision_DomainTaken(t *testing.T) {
	ctx := context.Background()

	h := newHarness(&fakeDeployer{})

	nt := newTenantFixture()
	h.clients.byDomain[nt.Domain] = clientbus.Client{ID: uuid.New(), Domain: nt.Domain}

	_, err := h.core.Provision(ctx, nt)
	assert.ErrorIs(t, err, ErrDomainTaken)
	assert.True(t, h.beginner.tx.rolledBack, "the transaction must roll back")
}
