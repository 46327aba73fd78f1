package countrybus

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/business/types/name"
	"github.com/studygate/studygate/business/types/slug"
)

type slugKey struct {
	clientID uuid.UUID
	slug     string
}

// fakeStorer keeps countries in memory and enforces the per tenant slug
// constraint the way the database unique index does.
type fakeStorer struct {
	ctrys  map[uuid.UUID]Country
	bySlug map[slugKey]uuid.UUID
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{
		ctrys:  make(map[uuid.UUID]Country),
		bySlug: make(map[slugKey]uuid.UUID),
	}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, ctry Country) error {
	key := slugKey{ctry.ClientID, ctry.Slug.String()}
	if _, exists := f.bySlug[key]; exists {
		return ErrUniqueSlug
	}
	f.ctrys[ctry.ID] = ctry
	f.bySlug[key] = ctry.ID
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, ctry Country) error {
	f.ctrys[ctry.ID] = ctry
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, ctry Country) error {
	delete(f.bySlug, slugKey{ctry.ClientID, ctry.Slug.String()})
	delete(f.ctrys, ctry.ID)
	return nil
}

func (f *fakeStorer) Query(ctx context.Context, clientID uuid.UUID, orderBy order.By, page page.Page) ([]Country, error) {
	var ctrys []Country
	for _, ctry := range f.ctrys {
		if ctry.ClientID == clientID {
			ctrys = append(ctrys, ctry)
		}
	}
	return ctrys, nil
}

func (f *fakeStorer) Count(ctx context.Context, clientID uuid.UUID) (int, error) {
	count := 0
	for _, ctry := range f.ctrys {
		if ctry.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, clientID uuid.UUID, countryID uuid.UUID) (Country, error) {
	ctry, exists := f.ctrys[countryID]
	if !exists || ctry.ClientID != clientID {
		return Country{}, ErrNotFound
	}
	return ctry, nil
}

func (f *fakeStorer) QueryBySlug(ctx context.Context, clientID uuid.UUID, slg slug.Slug) (Country, error) {
	id, exists := f.bySlug[slugKey{clientID, slg.String()}]
	if !exists {
		return Country{}, ErrNotFound
	}
	return f.ctrys[id], nil
}

// =============================================================================

func newCountryFixture() NewCountry {
	return NewCountry{
		Name:   name.MustParse("Canada"),
		NameAr: name.MustParse("كندا"),
		Slug:   slug.MustParse("canada"),
	}
}

func TestCreate_BindsTrustedTenant(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	clientID := uuid.New()

	ctry, err := core.Create(ctx, clientID, newCountryFixture())
	require.NoError(t, err)

	assert.Equal(t, clientID, ctry.ClientID)
	assert.NotEqual(t, uuid.Nil, ctry.ID)
}

func TestCreate_SlugUniquePerTenantOnly(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	tenantA := uuid.New()
	tenantB := uuid.New()

	_, err := core.Create(ctx, tenantA, newCountryFixture())
	require.NoError(t, err)

	// Same slug under another tenant is allowed.
	_, err = core.Create(ctx, tenantB, newCountryFixture())
	require.NoError(t, err)

	// Same slug under the same tenant is not.
	_, err = core.Create(ctx, tenantA, newCountryFixture())
	assert.ErrorIs(t, err, ErrUniqueSlug)
}

func TestQueryBySlug_ScopedToTenant(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	tenantA := uuid.New()
	tenantB := uuid.New()

	created, err := core.Create(ctx, tenantA, newCountryFixture())
	require.NoError(t, err)

	ctry, err := core.QueryBySlug(ctx, tenantA, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ctry.ID)

	_, err = core.QueryBySlug(ctx, tenantB, created.Slug)
	assert.ErrorIs(t, err, ErrNotFound)
}
