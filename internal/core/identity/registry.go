// Package identity mints auto-incrementing identifiers for users, clients
// and projects.
package identity

import (
	"strconv"

	"go.uber.org/atomic"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// Kind selects one of the registry's counters.
type Kind int

const (
	KindManager Kind = iota
	KindBuilder
	KindClient
	KindProject
)

// Registry holds one independent counter per entity kind. Every counter
// starts at zero and the first minted value is 1.
type Registry struct {
	managers *atomic.Int64
	builders *atomic.Int64
	clients  *atomic.Int64
	projects *atomic.Int64
}

var _ domain.IDGenerator = (*Registry)(nil)

// NewRegistry returns a registry with all counters at zero.
func NewRegistry() *Registry {
	return &Registry{
		managers: atomic.NewInt64(0),
		builders: atomic.NewInt64(0),
		clients:  atomic.NewInt64(0),
		projects: atomic.NewInt64(0),
	}
}

// NextUserID mints "M<n>" for managers and "B<n>" for every other role.
func (r *Registry) NextUserID(role domain.Role) string {
	counter := r.builders
	if role == domain.RoleManager {
		counter = r.managers
	}
	return role.Prefix() + strconv.FormatInt(counter.Inc(), 10)
}

func (r *Registry) NextClientID() int64 { return r.clients.Inc() }

func (r *Registry) NextProjectID() int64 { return r.projects.Inc() }

// Seed sets the counter for kind so that the next minted value is value+1.
func (r *Registry) Seed(kind Kind, value int64) {
	if c := r.counter(kind); c != nil {
		c.Store(value)
	}
}

// Current returns the last value minted for kind.
func (r *Registry) Current(kind Kind) int64 {
	if c := r.counter(kind); c != nil {
		return c.Load()
	}
	return 0
}

// Reset zeros every counter.
func (r *Registry) Reset() {
	for _, c := range []*atomic.Int64{r.managers, r.builders, r.clients, r.projects} {
		c.Store(0)
	}
}

func (r *Registry) counter(kind Kind) *atomic.Int64 {
	switch kind {
	case KindManager:
		return r.managers
	case KindBuilder:
		return r.builders
	case KindClient:
		return r.clients
	case KindProject:
		return r.projects
	}
	return nil
}
