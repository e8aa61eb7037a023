package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
	"github.com/builderportfolio/portfolio-system/internal/core/ports"
	"github.com/builderportfolio/portfolio-system/internal/metrics"
)

// ProjectService runs the project lifecycle against the entity store.
type ProjectService struct {
	store  ports.EntityStore
	ids    domain.IDGenerator
	opts   options
	logger zerolog.Logger
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(store ports.EntityStore, ids domain.IDGenerator, logger zerolog.Logger, opts ...Option) *ProjectService {
	return &ProjectService{
		store:  store,
		ids:    ids,
		opts:   buildOptions(opts),
		logger: logger.With().Str("component", componentProjects).Logger(),
	}
}

// CreateProject stores a new project and appends its id to the manager's and
// the builder's index lists. Neither user id is checked against the user
// store.
func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (int64, error) {
	if in.ManagerID == "" {
		return 0, fmt.Errorf("create project: %w: manager id is required", domain.ErrInvalidArgument)
	}
	if in.BuilderID == "" {
		return 0, fmt.Errorf("create project: %w: builder id is required", domain.ErrInvalidArgument)
	}
	if !in.Status.Valid() {
		return 0, fmt.Errorf("create project: %w: unknown status %q", domain.ErrInvalidArgument, in.Status)
	}

	client := domain.NewClient(s.ids, domain.ClientDraft{
		Name:  in.Client.Name,
		Email: in.Client.Email,
		Phone: in.Client.Phone,
	})
	project := domain.NewProject(s.ids, domain.ProjectDraft{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		Client:      client,
		BuilderID:   in.BuilderID,
		ManagerID:   in.ManagerID,
	})

	if err := s.store.SaveProject(project); err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	s.store.AppendToManagerIndex(in.ManagerID, project.ID)
	s.store.AppendToBuilderIndex(in.BuilderID, project.ID)

	s.opts.metrics.ObserveProjectCreated()
	log := loggerFrom(ctx, s.logger, componentProjects)
	log.Info().
		Int64("project_id", project.ID).
		Str("manager_id", in.ManagerID).
		Str("builder_id", in.BuilderID).
		Msg("project created")

	return project.ID, nil
}

// GetProject returns a copy of the stored project.
func (s *ProjectService) GetProject(_ context.Context, projectID int64) (*domain.Project, bool) {
	return s.store.GetProject(projectID)
}

// ListForManager resolves the manager's index in insertion order. Ids whose
// project no longer exists are skipped.
func (s *ProjectService) ListForManager(_ context.Context, managerID string) []*domain.Project {
	return s.resolve(s.store.ManagerProjectIDs(managerID))
}

// ListForBuilder is the builder-side counterpart of ListForManager.
func (s *ProjectService) ListForBuilder(_ context.Context, builderID string) []*domain.Project {
	return s.resolve(s.store.BuilderProjectIDs(builderID))
}

// UpdateProjectStatus assigns status when builderID is the project's assigned
// builder. Any status may follow any other, including itself.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, builderID string, projectID int64, status domain.ProjectStatus) bool {
	log := loggerFrom(ctx, s.logger, componentProjects).With().
		Int64("project_id", projectID).
		Str("builder_id", builderID).
		Logger()

	if !status.Valid() {
		log.Warn().Str("status", string(status)).Msg("status update rejected: unknown status")
		s.opts.metrics.ObserveStatusUpdate(metrics.ResultRejected)
		return false
	}

	found := false
	updated := s.store.UpdateProject(projectID, func(p *domain.Project) bool {
		found = true
		if p.AssignedBuilder != builderID {
			return false
		}
		p.Status = status
		return true
	})

	switch {
	case !found:
		log.Warn().Msg("status update failed: project not found")
		s.opts.metrics.ObserveStatusUpdate(metrics.ResultNotFound)
	case !updated:
		log.Warn().Msg("status update denied: builder not assigned")
		s.opts.metrics.ObserveStatusUpdate(metrics.ResultForbidden)
	default:
		log.Info().Str("status", string(status)).Msg("project status updated")
		s.opts.metrics.ObserveStatusUpdate(metrics.ResultOK)
	}
	return updated
}

// DeleteProject removes the project when managerID is its assigned manager,
// then drops its id from both index lists. The ownership check and the
// removal are one step, so concurrent deletes of one project succeed once.
// The index removals that follow are separate; readers skip ids left
// dangling in between.
func (s *ProjectService) DeleteProject(ctx context.Context, managerID string, projectID int64) bool {
	log := loggerFrom(ctx, s.logger, componentProjects).With().
		Int64("project_id", projectID).
		Str("manager_id", managerID).
		Logger()

	found := false
	project, removed := s.store.RemoveProjectIf(projectID, func(p *domain.Project) bool {
		found = true
		return p.AssignedManager == managerID
	})
	switch {
	case !found:
		log.Warn().Msg("delete failed: project not found")
		s.opts.metrics.ObserveDeletion(metrics.ResultNotFound)
		return false
	case !removed:
		log.Warn().Msg("delete denied: manager not assigned")
		s.opts.metrics.ObserveDeletion(metrics.ResultForbidden)
		return false
	}

	s.store.RemoveFromManagerIndex(managerID, projectID)
	if project.AssignedBuilder != "" {
		s.store.RemoveFromBuilderIndex(project.AssignedBuilder, projectID)
	}

	s.opts.metrics.ObserveDeletion(metrics.ResultOK)
	log.Info().Msg("project deleted")
	return true
}

func (s *ProjectService) resolve(ids []int64) []*domain.Project {
	out := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.store.GetProject(id); ok {
			out = append(out, p)
		}
	}
	return out
}
