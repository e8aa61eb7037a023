// Package console is the interactive front end of the portfolio tracker: a
// line-based menu loop over the account and project services.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
	"github.com/builderportfolio/portfolio-system/internal/core/ports"
)

// Shell runs the menus for one operator. It is not safe for concurrent use.
type Shell struct {
	accounts ports.AccountService
	projects ports.ProjectService

	in      *prompter
	out     io.Writer
	styles  styles
	forms   *formValidator
	session Session
	logger  zerolog.Logger
}

func NewShell(accounts ports.AccountService, projects ports.ProjectService, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		accounts: accounts,
		projects: projects,
		in:       newPrompter(in, out),
		out:      out,
		styles:   newStyles(out),
		forms:    newFormValidator(),
		logger:   logger,
	}
}

// Run shows the main menu until the operator exits or input ends. Running
// out of input is a normal exit, not an error.
func (s *Shell) Run(ctx context.Context) error {
	err := s.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if s.session.Active() {
		s.endSession()
	}
	fmt.Fprintln(s.out, "Exiting...")
	return err
}

func (s *Shell) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderMenu(s.out, s.styles, "Main Menu", "Register", "Login", "Exit")

		choice, err := s.in.number("")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.register(ctx)
		case 2:
			err = s.login(ctx)
		case 3:
			return nil
		default:
			s.fail("Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) register(ctx context.Context) error {
	name, err := s.in.text("Enter User name:")
	if err != nil {
		return err
	}
	email, err := s.in.text("Enter Email:")
	if err != nil {
		return err
	}
	phone, err := s.in.text("Enter Phone:")
	if err != nil {
		return err
	}
	role, err := s.in.number("Role: 1.Project Manager  2.Builder")
	if err != nil {
		return err
	}
	experience, err := s.in.number("Experience:")
	if err != nil {
		return err
	}
	password, err := s.in.text("Password:")
	if err != nil {
		return err
	}

	form := registrationForm{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Experience: experience,
		Password:   password,
	}
	if err := s.forms.Validate(form); err != nil {
		s.fail("Invalid input: " + err.Error())
		return nil
	}

	id, err := s.accounts.Register(ctx, ports.RegisterInput{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Experience:   form.Experience,
		Password:     form.Password,
		RoleSelector: role,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		s.fail(err.Error())
		return nil
	case errors.Is(err, domain.ErrInvalidArgument):
		s.fail("Invalid role")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(s.out, "Registered Successfully")
	fmt.Fprintf(s.out, "User ID: %s\n", id)

	user, ok := s.accounts.Fetch(ctx, id)
	if !ok {
		return fmt.Errorf("console: registered user %s not found", id)
	}
	return s.enter(ctx, user)
}

func (s *Shell) login(ctx context.Context) error {
	userID, err := s.in.text("Enter User ID:")
	if err != nil {
		return err
	}
	password, err := s.in.text("Enter Password:")
	if err != nil {
		return err
	}

	user, err := s.accounts.Authenticate(ctx, userID, password)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		s.fail(fmt.Sprintf("User not found with id %s", userID))
		return nil
	case err != nil:
		return err
	case user == nil:
		s.fail("Invalid password")
		return nil
	}

	fmt.Fprintln(s.out, "Login successful")
	return s.enter(ctx, user)
}

// enter starts a session for user and runs the menu of its role until logout.
func (s *Shell) enter(ctx context.Context, user *domain.User) error {
	s.session.Login(user, s.logger)
	log := s.session.Logger()
	log.Info().Stringer("role", user.Role).Msg("session started")

	ctx = log.WithContext(ctx)
	var err error
	if user.IsManager() {
		err = s.managerMenu(ctx)
	} else {
		err = s.builderMenu(ctx)
	}
	if err != nil {
		return err
	}

	s.endSession()
	fmt.Fprintln(s.out, "Logged out")
	return nil
}

func (s *Shell) endSession() {
	log := s.session.Logger()
	log.Info().Msg("session ended")
	s.session.Logout()
}

func (s *Shell) showDetails() {
	renderUser(s.out, s.session.User())
}

func (s *Shell) fail(msg string) {
	fmt.Fprintln(s.out, s.styles.err.Render(msg))
}
