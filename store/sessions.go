package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/models"
)

// Mirror is the slice of the Redis client the cart mirror needs.
// *redis.Client satisfies it.
type Mirror interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// SessionManager hands out one Store per session id and mirrors each cart
// to Redis so a returning session gets its cart back. The mirror is the
// durable side of InitializeCart: restore goes through it, so re-restoring
// the same payload can never duplicate lines.
type SessionManager struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	rdb     Mirror
	ttl     time.Duration
	log     *zap.Logger
}

// sessionEntry delays publication of a store until it is fully set up.
// Concurrent Gets for the same sid all wait on the once, so no caller can
// mutate the cart before the mirror subscriber is registered.
type sessionEntry struct {
	once sync.Once
	st   *Store
}

// NewSessionManager builds a manager. rdb may be nil, in which case carts
// live only in process memory (used by tests).
func NewSessionManager(rdb Mirror, ttl time.Duration, log *zap.Logger) *SessionManager {
	return &SessionManager{
		entries: make(map[string]*sessionEntry),
		rdb:     rdb,
		ttl:     ttl,
		log:     log,
	}
}

// Get returns the store for sid, creating and restoring it on first use.
// The subscriber is registered before the store is handed to anyone, so
// every mutation reaches the mirror.
func (m *SessionManager) Get(ctx context.Context, sid string) *Store {
	m.mu.Lock()
	entry, ok := m.entries[sid]
	if !ok {
		entry = &sessionEntry{}
		m.entries[sid] = entry
	}
	m.mu.Unlock()

	entry.once.Do(func() {
		st := New()
		st.Subscribe(func(snap Snapshot) {
			m.persist(sid, snap.Cart)
		})
		if restored := m.restore(ctx, sid); len(restored) > 0 {
			st.InitializeCart(restored)
		}
		entry.st = st
	})
	return entry.st
}

func cartKey(sid string) string { return "cart:" + sid }

func (m *SessionManager) restore(ctx context.Context, sid string) []models.CartLine {
	if m.rdb == nil {
		return nil
	}
	raw, err := m.rdb.Get(ctx, cartKey(sid)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			m.log.Warn("cart restore failed", zap.String("sid", sid), zap.Error(err))
		}
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		m.log.Warn("cart restore payload corrupt", zap.String("sid", sid), zap.Error(err))
		return nil
	}
	return lines
}

func (m *SessionManager) persist(sid string, cart []models.CartLine) {
	if m.rdb == nil {
		return
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		m.log.Warn("cart marshal failed", zap.String("sid", sid), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.rdb.Set(ctx, cartKey(sid), raw, m.ttl).Err(); err != nil {
		m.log.Warn("cart mirror write failed", zap.String("sid", sid), zap.Error(err))
	}
}
