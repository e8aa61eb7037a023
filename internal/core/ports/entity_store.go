package ports

import (
	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// UserRepository stores users keyed by their minted id.
type UserRepository interface {
	// InsertUser stores u unless its id is already taken, in which case the
	// existing user is kept and inserted is false. A nil user or empty id
	// fails with domain.ErrInvalidArgument.
	InsertUser(u *domain.User) (inserted bool, err error)
	GetUser(id string) (*domain.User, bool)
	// Users returns a snapshot of every stored user in insertion order.
	Users() []*domain.User
}

// ProjectRepository stores projects keyed by id.
type ProjectRepository interface {
	// SaveProject inserts or overwrites p.
	SaveProject(p *domain.Project) error
	GetProject(id int64) (*domain.Project, bool)
	// UpdateProject runs fn against the stored project while holding the
	// project lock. The change is kept only when fn returns true. It
	// reports false when the project does not exist or fn declined.
	UpdateProject(id int64, fn func(p *domain.Project) bool) bool
	RemoveProject(id int64)
	// RemoveProjectIf deletes the project only when fn approves it, with
	// the check and the delete under one lock. It returns a copy of the
	// project as it was, or nil when it does not exist.
	RemoveProjectIf(id int64, fn func(p *domain.Project) bool) (*domain.Project, bool)
}

// RoleIndex maps managers and builders to the ids of their projects.
// Lists keep insertion order, allow duplicates and may hold ids of projects
// that no longer exist.
type RoleIndex interface {
	EnsureManagerEntry(managerID string)
	EnsureBuilderEntry(builderID string)
	AppendToManagerIndex(managerID string, projectID int64)
	AppendToBuilderIndex(builderID string, projectID int64)
	// RemoveFromManagerIndex drops the first occurrence of projectID by value.
	RemoveFromManagerIndex(managerID string, projectID int64)
	RemoveFromBuilderIndex(builderID string, projectID int64)
	// ManagerProjectIDs never returns nil; unknown ids yield an empty list.
	ManagerProjectIDs(managerID string) []int64
	BuilderProjectIDs(builderID string) []int64
}

// EntityStore groups the independent maps. No operation spans more than one
// of them atomically.
type EntityStore interface {
	UserRepository
	ProjectRepository
	RoleIndex
}
