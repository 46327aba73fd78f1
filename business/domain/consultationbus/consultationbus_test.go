package consultationbus

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
	"github.com/studygate/studygate/business/types/phone"
)

// fakeStorer keeps consultations in memory and honors the tenant filter the
// way the real store does.
type fakeStorer struct {
	cons map[uuid.UUID]Consultation
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{cons: make(map[uuid.UUID]Consultation)}
}

func (f *fakeStorer) NewWithTx(tx sqldb.CommitRollbacker) (Storer, error) {
	return f, nil
}

func (f *fakeStorer) Create(ctx context.Context, con Consultation) error {
	f.cons[con.ID] = con
	return nil
}

func (f *fakeStorer) Update(ctx context.Context, con Consultation) error {
	f.cons[con.ID] = con
	return nil
}

func (f *fakeStorer) Delete(ctx context.Context, con Consultation) error {
	delete(f.cons, con.ID)
	return nil
}

func (f *fakeStorer) Query(ctx context.Context, clientID uuid.UUID, filter QueryFilter, orderBy order.By, page page.Page) ([]Consultation, error) {
	var cons []Consultation
	for _, con := range f.cons {
		if con.ClientID == clientID {
			cons = append(cons, con)
		}
	}
	return cons, nil
}

func (f *fakeStorer) Count(ctx context.Context, clientID uuid.UUID, filter QueryFilter) (int, error) {
	count := 0
	for _, con := range f.cons {
		if con.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStorer) QueryByID(ctx context.Context, clientID uuid.UUID, consultationID uuid.UUID) (Consultation, error) {
	con, exists := f.cons[consultationID]
	if !exists || con.ClientID != clientID {
		return Consultation{}, ErrNotFound
	}
	return con, nil
}

// =============================================================================

func TestCreate_StartsPending(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	clientID := uuid.New()

	con, err := core.Create(ctx, clientID, NewConsultation{
		FullName:    name.MustParse("Sara Ahmed"),
		Phone:       phone.MustParse("+971501234567"),
		Destination: "Canada",
	})
	require.NoError(t, err)

	assert.Equal(t, clientID, con.ClientID)
	assert.Equal(t, StatusPending, con.Status)
	assert.NotEqual(t, uuid.Nil, con.ID)
}

func TestQueryByID_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	tenantA := uuid.New()
	tenantB := uuid.New()

	con, err := core.Create(ctx, tenantA, NewConsultation{
		FullName: name.MustParse("Sara Ahmed"),
		Phone:    phone.MustParse("+971501234567"),
	})
	require.NoError(t, err)

	_, err = core.QueryByID(ctx, tenantA, con.ID)
	require.NoError(t, err)

	_, err = core.QueryByID(ctx, tenantB, con.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_Status(t *testing.T) {
	ctx := context.Background()
	core := NewCore(newFakeStorer())

	con, err := core.Create(ctx, uuid.New(), NewConsultation{
		FullName: name.MustParse("Sara Ahmed"),
		Phone:    phone.MustParse("+971501234567"),
	})
	require.NoError(t, err)

	status := StatusContacted
	upd, err := core.Update(ctx, con, UpdateConsultation{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, StatusContacted, upd.Status)
	assert.False(t, upd.UpdatedAt.Before(con.UpdatedAt))
}

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"PENDING", "CONTACTED", "COMPLETED"} {
		status, err := ParseStatus(value)
		require.NoError(t, err)
		assert.Equal(t, value, status.String())
	}

	_, err := ParseStatus("ARCHIVED")
	assert.Error(t, err)
}
