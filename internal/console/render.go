package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

type styles struct {
	title lipgloss.Style
	err   lipgloss.Style
}

// newStyles binds styles to out, so a pipe or buffer gets plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("#fb4934")),
	}
}

func renderMenu(out io.Writer, st styles, title string, options ...string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.title.Render(title))
	for i, opt := range options {
		fmt.Fprintf(out, "%d. %s\n", i+1, opt)
	}
}

func renderUser(out io.Writer, u *domain.User) {
	fmt.Fprintf(out, "ID:         %s\n", u.ID)
	fmt.Fprintf(out, "Name:       %s\n", u.Name)
	fmt.Fprintf(out, "Email:      %s\n", u.Email)
	fmt.Fprintf(out, "Phone:      %s\n", u.Phone)
	fmt.Fprintf(out, "Experience: %d years\n", u.Experience)
	fmt.Fprintf(out, "Role:       %s\n", u.Role)
}

func renderProjects(out io.Writer, projects []*domain.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return
	}
	for _, p := range projects {
		renderProject(out, p)
	}
}

func renderProject(out io.Writer, p *domain.Project) {
	fmt.Fprintf(out, "Project #%d: %s\n", p.ID, p.Name)
	fmt.Fprintf(out, "  Description: %s\n", p.Description)
	fmt.Fprintf(out, "  Dates:       %s to %s\n", p.StartDate, p.EndDate)
	fmt.Fprintf(out, "  Status:      %s\n", p.Status)
	fmt.Fprintf(out, "  Client:      %s (%s, %s)\n", p.Client.Name, p.Client.Email, p.Client.Phone)
	fmt.Fprintf(out, "  Builder:     %s\n", p.AssignedBuilder)
	fmt.Fprintf(out, "  Manager:     %s\n", p.AssignedManager)
}
