// Package memory provides the in-process entity store. Users, projects and
// the two role indices live in separate maps, each guarded by its own lock;
// nothing is persisted.
package memory

import (
	"github.com/builderportfolio/portfolio-system/internal/core/ports"
)

var _ ports.EntityStore = (*Store)(nil)

// Store is safe for concurrent use. Operations touching several maps are not
// atomic across them.
type Store struct {
	users    userTable
	projects projectTable
	managers roleIndex
	builders roleIndex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    userTable{byID: make(map[string]*userRecord)},
		projects: projectTable{byID: make(map[int64]*projectRecord)},
		managers: newRoleIndex(),
		builders: newRoleIndex(),
	}
}

// Stats is a point-in-time count of stored entities.
type Stats struct {
	Users    int
	Projects int
	Managers int
	Builders int
}

// Stats reads each map in turn; the counts may come from different instants.
func (s *Store) Stats() Stats {
	return Stats{
		Users:    s.users.len(),
		Projects: s.projects.len(),
		Managers: s.managers.len(),
		Builders: s.builders.len(),
	}
}
