package memory

import (
	"time"

	"sentiment-dashboard/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps sessions for ttl after their last save and
// purges expired ones every ttl/6 (at least once a minute).
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	cleanup := ttl / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

// Save stores a copy so callers can keep mutating their own value.
func (r *SessionRepository) Save(session store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(store.Session), true
	}
	return store.Session{}, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
