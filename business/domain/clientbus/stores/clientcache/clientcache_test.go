package clientcache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
)

// fakeStorer keeps clients in memory keyed by id and domain.
type fakeStorer struct {
	byID     map[uuid.UUID]clientbus.Client
	byDomain map[string]uuid.UUID
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{
		byID:     make(map[uuid.UUID]clientbus.Client),
		byDomain: make(map[string]uuid.UUID),
	}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (clientbus.Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, cl clientbus.Client) error {
	f.byID[cl.ID] = cl
	f.byDomain[cl.Domain] = cl.ID
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, cl clientbus.Client) error {
	if prev, exists := f.byID[cl.ID]; exists {
		delete(f.byDomain, prev.Domain)
	}
	f.byID[cl.ID] = cl
	f.byDomain[cl.Domain] = cl.ID
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, cl clientbus.Client) error {
	delete(f.byDomain, cl.Domain)
	delete(f.byID, cl.ID)
	return nil
}

func (f *fakeStorer) Query(ctx context.Context, orderBy order.By, page page.Page) ([]clientbus.Client, error) {
	var cls []clientbus.Client
	for _, cl := range f.byID {
		cls = append(cls, cl)
	}
	return cls, nil
}

func (f *fakeStorer) Count(ctx context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, clientID uuid.UUID) (clientbus.Client, error) {
	cl, exists := f.byID[clientID]
	if !exists {
		return clientbus.Client{}, clientbus.ErrNotFound
	}
	return cl, nil
}

func (f *fakeStorer) QueryByDomain(ctx context.Context, domain string) (clientbus.Client, error) {
	id, exists := f.byDomain[domain]
	if !exists {
		return clientbus.Client{}, clientbus.ErrNotFound
	}
	return f.byID[id], nil
}

// =============================================================================

func TestUpdate_InvalidatesOldDomain(t *testing.T) {
	ctx := context.Background()
	log := logger.New(io.Discard, logger.LevelInfo, "TEST", nil)

	storer := newFakeStorer()
	store := NewStore(log, storer, time.Minute*5)

	cl := clientbus.Client{
		ID:     uuid.New(),
		Domain: "acme-abroad.com",
	}
	require.NoError(t, store.Create(ctx, cl))

	// Prime the cache with the original domain.
	got, err := store.QueryByDomain(ctx, "acme-abroad.com")
	require.NoError(t, err)
	require.Equal(t, cl.ID, got.ID)

	cl.Domain = "acme-global.com"
	require.NoError(t, store.Update(ctx, cl))

	// The old domain must stop resolving right away, not when the cache
	// TTL runs out.
	_, err = store.QueryByDomain(ctx, "acme-abroad.com")
	assert.ErrorIs(t, err, clientbus.ErrNotFound)

	got, err = store.QueryByDomain(ctx, "acme-global.com")
	require.NoError(t, err)
	assert.Equal(t, cl.ID, got.ID)
}
