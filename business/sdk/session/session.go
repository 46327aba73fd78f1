// Package session provides the server side session store for admin and
// platform owner logins. Sessions live in redis under an absolute TTL so the
// expiry decision is never left to the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/studygate/studygate/foundation/logger"
)

// Lifetime is the fixed session window measured from issuance. The window
// does not slide on activity.
const Lifetime = 30 * time.Minute

// Set of error variables for session operations.
var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Session represents an authenticated admin or platform owner. A zero
// ClientID marks a platform owner session.
type Session struct {
	ID       uuid.UUID `json:"id"`
	AdminID  uuid.UUID `json:"admin_id"`
	ClientID uuid.UUID `json:"client_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// Expired reports whether the fixed window measured from IssuedAt has
// elapsed at the given moment.
func (s Session) Expired(now time.Time) bool {
	return now.Sub(s.IssuedAt) > Lifetime
}

// Config is the required properties to use the session store.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Open constructs a redis client based on the configuration.
func Open(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// StatusCheck returns nil if it can successfully talk to redis.
func StatusCheck(ctx context.Context, rdb *redis.Client) error {
	return rdb.Ping(ctx).Err()
}

// Store manages the set of APIs for session access.
type Store struct {
	log *logger.Logger
	rdb *redis.Client
}

// NewStore constructs the api for session access.
func NewStore(log *logger.Logger, rdb *redis.Client) *Store {
	return &Store{
		log: log,
		rdb: rdb,
	}
}

// Create persists a new session with the absolute TTL.
func (s *Store) Create(ctx context.Context, sn Session) error {
	data, err := json.Marshal(sn)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(sn.ID), data, Lifetime).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// QueryByID retrieves the session if it still exists. The TTL in redis is
// authoritative; the issuance age is re-checked as well so a stale replica
// can never extend the window.
func (s *Store) QueryByID(ctx context.Context, sessionID uuid.UUID) (Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sn Session
	if err := json.Unmarshal(data, &sn); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	if sn.Expired(time.Now()) {
		return Session{}, ErrExpired
	}

	return sn, nil
}

// Delete removes the session immediately. Used by logout.
func (s *Store) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}
