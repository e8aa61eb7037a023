package memory

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

type userRecord struct {
	user  *domain.User
	order int
}

type userTable struct {
	mu   sync.RWMutex
	byID map[string]*userRecord
	seq  int
}

func (t *userTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// InsertUser keeps the first user stored under an id; later inserts with the
// same id are ignored.
func (s *Store) InsertUser(u *domain.User) (bool, error) {
	if u == nil {
		return false, fmt.Errorf("insert user: %w: nil user", domain.ErrInvalidArgument)
	}
	if u.ID == "" {
		return false, fmt.Errorf("insert user: %w: empty id", domain.ErrInvalidArgument)
	}

	t := &s.users
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byID[u.ID]; exists {
		return false, nil
	}
	t.seq++
	t.byID[u.ID] = &userRecord{user: u.Clone(), order: t.seq}
	return true, nil
}

func (s *Store) GetUser(id string) (*domain.User, bool) {
	t := &s.users
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return rec.user.Clone(), true
}

// Users returns copies of all users in insertion order.
func (s *Store) Users() []*domain.User {
	t := &s.users
	t.mu.RLock()
	recs := make([]*userRecord, 0, len(t.byID))
	for _, rec := range t.byID {
		recs = append(recs, rec)
	}
	t.mu.RUnlock()

	slices.SortFunc(recs, func(a, b *userRecord) int { return cmp.Compare(a.order, b.order) })
	out := make([]*domain.User, len(recs))
	for i, rec := range recs {
		out[i] = rec.user.Clone()
	}
	return out
}
