package memory

import (
	"fmt"
	"sync"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

type projectRecord struct {
	project *domain.Project
}

type projectTable struct {
	mu   sync.RWMutex
	byID map[int64]*projectRecord
}

func (t *projectTable) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// SaveProject inserts p or overwrites the project stored under p.ID.
func (s *Store) SaveProject(p *domain.Project) error {
	if p == nil {
		return fmt.Errorf("save project: %w: nil project", domain.ErrInvalidArgument)
	}

	t := &s.projects
	t.mu.Lock()
	defer t.mu.Unlock()

	t.byID[p.ID] = &projectRecord{project: p.Clone()}
	return nil
}

func (s *Store) GetProject(id int64) (*domain.Project, bool) {
	t := &s.projects
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return rec.project.Clone(), true
}

// UpdateProject hands fn a working copy; the copy replaces the stored project
// only when fn returns true.
func (s *Store) UpdateProject(id int64, fn func(p *domain.Project) bool) bool {
	t := &s.projects
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.byID[id]
	if !ok {
		return false
	}
	working := rec.project.Clone()
	if !fn(working) {
		return false
	}
	// the id is the map key and cannot be changed through an update
	working.ID = id
	rec.project = working
	return true
}

// RemoveProjectIf deletes the project when fn, run on a copy under the
// project lock, returns true. It returns the copy fn saw, or
// nil when the project does not exist.
func (s *Store) RemoveProjectIf(id int64, fn func(p *domain.Project) bool) (*domain.Project, bool) {
	t := &s.projects
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	snapshot := rec.project.Clone()
	if !fn(snapshot.Clone()) {
		return snapshot, false
	}
	delete(t.byID, id)
	return snapshot, true
}

func (s *Store) RemoveProject(id int64) {
	t := &s.projects
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.byID, id)
}
