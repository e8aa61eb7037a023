package console

import (
	"context"
	"fmt"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
	"github.com/builderportfolio/portfolio-system/internal/core/ports"
)

func (s *Shell) managerMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderMenu(s.out, s.styles, "Manager Menu",
			"Add Project", "Delete Project", "View Projects", "View My Details", "Logout")

		choice, err := s.in.number("")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.addProject(ctx)
		case 2:
			err = s.deleteProject(ctx)
		case 3:
			renderProjects(s.out, s.projects.ListForManager(ctx, s.session.User().ID))
		case 4:
			s.showDetails()
		case 5:
			return nil
		default:
			s.fail("Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addProject(ctx context.Context) error {
	name, err := s.in.text("Project Name:")
	if err != nil {
		return err
	}
	description, err := s.in.text("Description:")
	if err != nil {
		return err
	}
	start, err := s.in.date("Start Date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	end, err := s.in.date("End Date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	clientName, err := s.in.text("Client Name:")
	if err != nil {
		return err
	}
	clientEmail, err := s.in.text("Client Email:")
	if err != nil {
		return err
	}
	clientPhone, err := s.in.text("Client Phone:")
	if err != nil {
		return err
	}
	status, err := s.in.status(fmt.Sprintf("Status (%s):", statusChoices()))
	if err != nil {
		return err
	}
	builderID, err := s.in.text("Builder ID:")
	if err != nil {
		return err
	}

	form := projectForm{
		Name:        name,
		StartDate:   start.Time(),
		EndDate:     end.Time(),
		ClientName:  clientName,
		ClientEmail: clientEmail,
		BuilderID:   builderID,
	}
	if err := s.forms.Validate(form); err != nil {
		s.fail("Invalid input: " + err.Error())
		return nil
	}

	if builder, ok := s.accounts.Fetch(ctx, builderID); !ok || builder.Role != domain.RoleBuilder {
		s.fail(fmt.Sprintf("Builder with id %s does not exist!!", builderID))
		return nil
	}

	id, err := s.projects.CreateProject(ctx, ports.CreateProjectInput{
		Name:        name,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		Client: ports.ClientInput{
			Name:  clientName,
			Email: clientEmail,
			Phone: clientPhone,
		},
		BuilderID: builderID,
		ManagerID: s.session.User().ID,
	})
	if err != nil {
		return fmt.Errorf("console: create project: %w", err)
	}

	fmt.Fprintln(s.out, "Project Created")
	fmt.Fprintf(s.out, "Project ID: %d\n", id)
	return nil
}

func (s *Shell) deleteProject(ctx context.Context) error {
	id, err := s.in.projectID("Project ID:")
	if err != nil {
		return err
	}
	if s.projects.DeleteProject(ctx, s.session.User().ID, id) {
		fmt.Fprintln(s.out, "Deleted Project Successfully")
	} else {
		s.fail("Failed to delete the Project")
	}
	return nil
}
