package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domcart "example.com/naturemart/app/internal/domain/cart"
	"example.com/naturemart/app/internal/domain/currency"
)

type cartSession struct {
	store    *domcart.Store
	lastSeen time.Time
}

// CartRepository keeps one cart Store per session id. A session that has
// not been used for longer than ttl is gone, and at most maxSessions are
// open at once. Zero disables either limit.
type CartRepository struct {
	mu          sync.Mutex
	rates       currency.Rates
	maxSessions int
	ttl         time.Duration
	sessions    map[string]*cartSession
	now         func() time.Time
}

func NewCartRepository(rates currency.Rates, maxSessions int, ttl time.Duration) *CartRepository {
	return &CartRepository{
		rates:       rates,
		maxSessions: maxSessions,
		ttl:         ttl,
		sessions:    make(map[string]*cartSession),
		now:         time.Now,
	}
}

// Create returns domcart.ErrSessionLimit when the registry is full even after
// expired sessions are dropped.
func (r *CartRepository) Create(ctx context.Context) (string, *domcart.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.dropExpired(now)
		if len(r.sessions) >= r.maxSessions {
			return "", nil, domcart.ErrSessionLimit
		}
	}

	id := uuid.NewString()
	store := domcart.NewStore(r.rates)
	r.sessions[id] = &cartSession{store: store, lastSeen: now}
	return id, store, nil
}

// Get also marks the session as used.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domcart.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, domcart.ErrSessionNotFound
	}
	if r.expired(sess, now) {
		delete(r.sessions, sessionID)
		return nil, domcart.ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess.store, nil
}

func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domcart.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *CartRepository) expired(sess *cartSession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(sess.lastSeen) > r.ttl
}

func (r *CartRepository) dropExpired(now time.Time) {
	for id, sess := range r.sessions {
		if r.expired(sess, now) {
			delete(r.sessions, id)
		}
	}
}
