package ports

import (
	"context"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// ClientInput holds client contact details.
type ClientInput struct {
	Name  string
	Email string
	Phone string
}

// CreateProjectInput carries all data needed to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   domain.Date
	EndDate     domain.Date
	Status      domain.ProjectStatus
	Client      ClientInput
	BuilderID   string
	ManagerID   string
}

// ProjectService defines the project lifecycle use cases. Authorization
// failures are reported as false, never as errors.
type ProjectService interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (int64, error)
	GetProject(ctx context.Context, projectID int64) (*domain.Project, bool)
	ListForManager(ctx context.Context, managerID string) []*domain.Project
	ListForBuilder(ctx context.Context, builderID string) []*domain.Project
	UpdateProjectStatus(ctx context.Context, builderID string, projectID int64, status domain.ProjectStatus) bool
	DeleteProject(ctx context.Context, managerID string, projectID int64) bool
}
