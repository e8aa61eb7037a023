package memory

import (
	"slices"
	"sync"
)

type roleIndex struct {
	mu    sync.RWMutex
	lists map[string][]int64
}

func newRoleIndex() roleIndex {
	return roleIndex{lists: make(map[string][]int64)}
}

func (ix *roleIndex) len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.lists)
}

func (ix *roleIndex) ensure(userID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, ok := ix.lists[userID]; !ok {
		ix.lists[userID] = []int64{}
	}
}

// appendID never deduplicates.
func (ix *roleIndex) appendID(userID string, projectID int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.lists[userID] = append(ix.lists[userID], projectID)
}

// removeID deletes the first element equal to projectID. It matches on the
// stored value, never on a list position.
func (ix *roleIndex) removeID(userID string, projectID int64) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ids, ok := ix.lists[userID]
	if !ok {
		return
	}
	if i := slices.Index(ids, projectID); i >= 0 {
		ix.lists[userID] = slices.Delete(ids, i, i+1)
	}
}

func (ix *roleIndex) ids(userID string) []int64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return append([]int64{}, ix.lists[userID]...)
}

func (s *Store) EnsureManagerEntry(managerID string) { s.managers.ensure(managerID) }

func (s *Store) EnsureBuilderEntry(builderID string) { s.builders.ensure(builderID) }

func (s *Store) AppendToManagerIndex(managerID string, projectID int64) {
	s.managers.appendID(managerID, projectID)
}

func (s *Store) AppendToBuilderIndex(builderID string, projectID int64) {
	s.builders.appendID(builderID, projectID)
}

func (s *Store) RemoveFromManagerIndex(managerID string, projectID int64) {
	s.managers.removeID(managerID, projectID)
}

func (s *Store) RemoveFromBuilderIndex(builderID string, projectID int64) {
	s.builders.removeID(builderID, projectID)
}

func (s *Store) ManagerProjectIDs(managerID string) []int64 { return s.managers.ids(managerID) }

func (s *Store) BuilderProjectIDs(builderID string) []int64 { return s.builders.ids(builderID) }
