package console

import (
	"context"
	"fmt"
)

func (s *Shell) builderMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderMenu(s.out, s.styles, "Builder Menu",
			"Update Project", "View My Projects", "View My Details", "Logout")

		choice, err := s.in.number("")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.updateProject(ctx)
		case 2:
			renderProjects(s.out, s.projects.ListForBuilder(ctx, s.session.User().ID))
		case 3:
			s.showDetails()
		case 4:
			return nil
		default:
			s.fail("Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) updateProject(ctx context.Context) error {
	builderID := s.session.User().ID
	renderProjects(s.out, s.projects.ListForBuilder(ctx, builderID))

	id, err := s.in.projectID("Project ID:")
	if err != nil {
		return err
	}
	status, err := s.in.status(fmt.Sprintf("New Status (%s):", statusChoices()))
	if err != nil {
		return err
	}

	if s.projects.UpdateProjectStatus(ctx, builderID, id, status) {
		fmt.Fprintln(s.out, "Updated Successfully")
	} else {
		s.fail("Failed to Update - Invalid Authentication")
	}
	return nil
}
