package clientbus

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/foundation/logger"
)

// fakeStorer keeps clients in memory keyed by domain.
type fakeStorer struct {
	byDomain map[string]Client
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{byDomain: make(map[string]Client)}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, cl Client) error {
	if _, exists := f.byDomain[cl.Domain]; exists {
		return ErrUniqueDomain
	}
	f.byDomain[cl.Domain] = cl
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, cl Client) error {
	f.byDomain[cl.Domain] = cl
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, cl Client) error {
	delete(f.byDomain, cl.Domain)
	return nil
}

func (f *fakeStorer) Query(ctx context.Context, orderBy order.By, page page.Page) ([]Client, error) {
	var clients []Client
	for _, cl := range f.byDomain {
		clients = append(clients, cl)
	}
	return clients, nil
}

func (f *fakeStorer) Count(ctx context.Context) (int, error) {
	return len(f.byDomain), nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, clientID uuid.UUID) (Client, error) {
	for _, cl := range f.byDomain {
		if cl.ID == clientID {
			return cl, nil
		}
	}
	return Client{}, ErrNotFound
}

func (f *fakeStorer) QueryByDomain(ctx context.Context, domain string) (Client, error) {
	cl, exists := f.byDomain[domain]
	if !exists {
		return Client{}, ErrDomainNotFound
	}
	return cl, nil
}

func newTestCore() *Core {
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
	return NewCore(log, newFakeStorer())
}

// =============================================================================

func TestCreate_NormalizesDomain(t *testing.T) {
	ctx := context.Background()
	core := newTestCore()

	cl, err := core.Create(ctx, NewClient{
		Name:   name.MustParse("Acme Abroad"),
		Domain: "  ACME-Abroad.COM ",
	})
	require.NoError(t, err)

	assert.Equal(t, "acme-abroad.com", cl.Domain)
	assert.True(t, cl.Enabled)
}

func TestResolveDomain(t *testing.T) {
	ctx := context.Background()
	core := newTestCore()

	created, err := core.Create(ctx, NewClient{
		Name:   name.MustParse("Acme Abroad"),
		Domain: "acme-abroad.com",
	})
	require.NoError(t, err)

	// Host casing must not matter.
	cl, err := core.ResolveDomain(ctx, "ACME-ABROAD.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, cl.ID)

	_, err = core.ResolveDomain(ctx, "unknown.example.com")
	assert.ErrorIs(t, err, ErrDomainNotFound)
}

func TestCreate_DuplicateDomain(t *testing.T) {
	ctx := context.Background()
	core := newTestCore()

	nc := NewClient{
		Name:   name.MustParse("Acme Abroad"),
		Domain: "acme-abroad.com",
	}

	_, err := core.Create(ctx, nc)
	require.NoError(t, err)

	_, err = core.Create(ctx, nc)
	assert.ErrorIs(t, err, ErrUniqueDomain)
}
