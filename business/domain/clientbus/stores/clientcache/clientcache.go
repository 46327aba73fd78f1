// Package clientcache contains client related CRUD functionality with a
// sturdyc cache in front of the database store. Domain resolution runs on
// every public request so the host to client lookup is the hot path.
package clientcache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studygate/studygate/business/domain/clientbus"
	"github.com/studygate/studygate/business/sdk/order"
	"github.com/studygate/studygate/business/sdk/page"
	"github.com/studygate/studygate/business/sdk/sqldb"
	"github.com/studygate/studygate/foundation/logger"
	"github.com/viccon/sturdyc"
)

// Store manages the set of APIs for client data and caching.
type Store struct {
	log    *logger.Logger
	storer clientbus.Storer
	cache  *sturdyc.Client[clientbus.Client]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer clientbus.Storer, ttl time.Duration) *Store {
	const capacity = 10000
	const numShards = 10
	const evictionPercentage = 10

	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[clientbus.Client](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the storer value with a
// storer value that is currently inside a transaction. The cache is shared
// so committed writes keep invalidating the same entries.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (clientbus.Storer, error) {
	storer, err := s.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log:    s.log,
		storer: storer,
		cache:  s.cache,
	}

	return &store, nil
}

// Create inserts a new client into the database.
func (s *Store) Create(ctx context.Context, cl clientbus.Client) error {
	return s.storer.Create(ctx, cl)
}

// Update replaces a client document in the database and drops the cached
// resolution for its domain. When the domain itself changes the prior
// domain is invalidated too, otherwise it would keep resolving to the
// tenant until the TTL runs out.
func (s *Store) Update(ctx context.Context, cl clientbus.Client) error {
	if prev, err := s.storer.QueryByID(ctx, cl.ID); err == nil && prev.Domain != cl.Domain {
		s.cache.Delete(domainKey(prev.Domain))
	}

	if err := s.storer.Update(ctx, cl); err != nil {
		return err
	}

	s.cache.Delete(domainKey(cl.Domain))

	return nil
}

// Delete removes a client from the database and the cache.
func (s *Store) Delete(ctx context.Context, cl clientbus.Client) error {
	if err := s.storer.Delete(ctx, cl); err != nil {
		return err
	}

	s.cache.Delete(domainKey(cl.Domain))

	return nil
}

// Query retrieves a list of existing clients from the database.
func (s *Store) Query(ctx context.Context, orderBy order.By, page page.Page) ([]clientbus.Client, error) {
	return s.storer.Query(ctx, orderBy, page)
}

// Count returns the total number of clients in the DB.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.storer.Count(ctx)
}

// QueryByID gets the specified client from the database.
func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID) (clientbus.Client, error) {
	return s.storer.QueryByID(ctx, clientID)
}

// QueryByDomain resolves a domain through the cache, falling back to the
// database store. Misses are not cached so a newly provisioned tenant is
// resolvable immediately.
func (s *Store) QueryByDomain(ctx context.Context, domain string) (clientbus.Client, error) {
	fetch := func(ctx context.Context) (clientbus.Client, error) {
		return s.storer.QueryByDomain(ctx, domain)
	}

	return s.cache.GetOrFetch(ctx, domainKey(domain), fetch)
}

func domainKey(domain string) string {
	return "domain:" + domain
}
