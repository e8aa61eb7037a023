package console

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builderportfolio/portfolio-system/internal/core/identity"
	"github.com/builderportfolio/portfolio-system/internal/core/service"
	"github.com/builderportfolio/portfolio-system/internal/infrastructure/memory"
)

type harness struct {
	store *memory.Store
	out   bytes.Buffer
	logs  bytes.Buffer
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// run feeds input to a fresh shell backed by real services.
func run(t *testing.T, input string, opts ...service.Option) *harness {
	t.Helper()
	h := &harness{store: memory.NewStore()}
	ids := identity.NewRegistry()
	accounts := service.NewAccountService(h.store, ids, zerolog.Nop(), opts...)
	projects := service.NewProjectService(h.store, ids, zerolog.Nop(), opts...)

	shell := NewShell(accounts, projects, strings.NewReader(input), &h.out, zerolog.New(&h.logs))
	require.NoError(t, shell.Run(context.Background()))
	return h
}

func assertInOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	rest := out
	for _, p := range parts {
		i := strings.Index(rest, p)
		if !assert.GreaterOrEqual(t, i, 0, "missing %q (in order) in output:\n%s", p, out) {
			return
		}
		rest = rest[i+len(p):]
	}
}

var (
	registerBuilder = []string{"1", "Ravi", "r@x.com", "9000000001", "2", "4", "pw"}
	registerManager = []string{"1", "Asha", "a@x.com", "9000000000", "1", "12", "pw"}
	bridgeProject   = []string{"1", "Bridge", "desc", "2025-01-01", "2025-12-31", "C", "c@x.com", "000", "upcoming", "B1"}
)

func lines(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

func TestShell_Lifecycle(t *testing.T) {
	input := script(lines(
		registerBuilder, []string{"4"},
		registerManager, bridgeProject, []string{"3", "5"},
		[]string{"2", "B1", "pw", "1", "1", "in progress", "2", "4"},
		[]string{"2", "M1", "pw", "2", "1", "3", "5"},
		[]string{"3"},
	)...)

	h := run(t, input)

	assertInOrder(t, h.out.String(),
		"Registered Successfully", "User ID: B1", "Builder Menu", "Logged out",
		"User ID: M1", "Manager Menu",
		"Project Created", "Project ID: 1",
		"Project #1: Bridge", "Status:      UPCOMING", "Builder:     B1", "Manager:     M1",
		"Logged out",
		"Login successful", "Builder Menu", "Project #1: Bridge", "Updated Successfully",
		"Status:      IN_PROGRESS", "Logged out",
		"Login successful", "Manager Menu", "Deleted Project Successfully", "No projects found", "Logged out",
		"Exiting...",
	)
	assert.Equal(t, memory.Stats{Users: 2, Projects: 0, Managers: 1, Builders: 1}, h.store.Stats())
}

func TestShell_ExitAndEOF(t *testing.T) {
	t.Run("exit choice", func(t *testing.T) {
		h := run(t, script("3"))
		assert.Contains(t, h.out.String(), "Main Menu")
		assert.Contains(t, h.out.String(), "Exiting...")
	})

	t.Run("empty input", func(t *testing.T) {
		h := run(t, "")
		assert.Contains(t, h.out.String(), "Exiting...")
	})

	t.Run("input ends inside a form", func(t *testing.T) {
		h := run(t, script("1", "Asha", "a@x.com"))
		assert.Contains(t, h.out.String(), "Exiting...")
		assert.Empty(t, h.store.Users())
	})

	t.Run("input ends inside a role menu", func(t *testing.T) {
		h := run(t, script(registerManager...))
		assertInOrder(t, h.out.String(), "Manager Menu", "Exiting...")
		assert.Contains(t, h.logs.String(), "session ended")
	})
}

func TestShell_Run_CanceledContext(t *testing.T) {
	store := memory.NewStore()
	ids := identity.NewRegistry()
	var out bytes.Buffer
	shell := NewShell(
		service.NewAccountService(store, ids, zerolog.Nop()),
		service.NewProjectService(store, ids, zerolog.Nop()),
		strings.NewReader(script("3")), &out, zerolog.Nop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, shell.Run(ctx), context.Canceled)
}

func TestShell_InvalidMenuInput(t *testing.T) {
	h := run(t, script("9", "abc", "3"))
	assertInOrder(t, h.out.String(), "Invalid choice", "Main Menu", "Enter a valid number:", "Exiting...")
}

func TestShell_Register(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		input := script(lines(registerManager, []string{"5"},
			[]string{"1", "Other", "a@x.com", "1", "2", "1", "pw2", "3"})...)
		h := run(t, input)
		assert.Contains(t, h.out.String(), "User already exists with ID: M1")
		assert.Len(t, h.store.Users(), 1)
	})

	t.Run("invalid email", func(t *testing.T) {
		h := run(t, script("1", "Asha", "not-an-email", "900", "1", "3", "pw", "3"))
		assert.Contains(t, h.out.String(), "Invalid input: email must be a valid email")
		assert.Empty(t, h.store.Users())
	})

	t.Run("negative experience and empty password", func(t *testing.T) {
		h := run(t, script("1", "Asha", "a@x.com", "900", "1", "-2", "", "3"))
		assert.Contains(t, h.out.String(), "experience must be at least 0; password is required")
		assert.Empty(t, h.store.Users())
	})

	t.Run("unknown role selector lenient", func(t *testing.T) {
		h := run(t, script("1", "Odd", "o@x.com", "900", "7", "1", "pw", "4", "3"))
		assertInOrder(t, h.out.String(), "User ID: B1", "Builder Menu")
	})

	t.Run("unknown role selector strict", func(t *testing.T) {
		h := run(t, script("1", "Odd", "o@x.com", "900", "7", "1", "pw", "3"), service.WithStrictRoles(true))
		assert.Contains(t, h.out.String(), "Invalid role")
		assert.Empty(t, h.store.Users())
	})

	t.Run("non-numeric experience re-prompts", func(t *testing.T) {
		h := run(t, script("1", "Asha", "a@x.com", "900", "1", "ten", "10", "pw", "5", "3"))
		assertInOrder(t, h.out.String(), "Experience:", "Enter a valid number:", "User ID: M1")
	})
}

func TestShell_Login(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		h := run(t, script("2", "M9", "pw", "3"))
		assert.Contains(t, h.out.String(), "User not found with id M9")
	})

	t.Run("wrong password", func(t *testing.T) {
		h := run(t, script(lines(registerManager, []string{"5", "2", "M1", "nope", "3"})...))
		assert.Contains(t, h.out.String(), "Invalid password")
		assert.NotContains(t, h.out.String(), "Login successful")
	})

	t.Run("details hide the password", func(t *testing.T) {
		h := run(t, script(lines(registerManager, []string{"5", "2", "M1", "pw", "4", "5", "3"})...))
		assertInOrder(t, h.out.String(), "Login successful", "ID:         M1", "Name:       Asha", "Experience: 12 years", "Role:       manager")
		assert.NotContains(t, h.out.String(), "pw\n")
	})
}

func TestShell_AddProject(t *testing.T) {
	t.Run("unknown builder", func(t *testing.T) {
		input := script(lines(registerManager,
			[]string{"1", "Bridge", "desc", "2025-01-01", "2025-12-31", "C", "c@x.com", "000", "UPCOMING", "B7", "5", "3"})...)
		h := run(t, input)
		assert.Contains(t, h.out.String(), "Builder with id B7 does not exist!!")
		assert.Zero(t, h.store.Stats().Projects)
	})

	t.Run("manager id is not a builder", func(t *testing.T) {
		input := script(lines(registerManager,
			[]string{"1", "Bridge", "desc", "2025-01-01", "2025-12-31", "C", "c@x.com", "000", "UPCOMING", "M1", "5", "3"})...)
		h := run(t, input)
		assert.Contains(t, h.out.String(), "Builder with id M1 does not exist!!")
	})

	t.Run("bad date and status re-prompt", func(t *testing.T) {
		input := script(lines(registerBuilder, []string{"4"}, registerManager,
			[]string{"1", "Bridge", "desc", "2025-13-01", "2025-01-01", "2025-12-31", "C", "c@x.com", "000", "paused", "completed", "B1", "5", "3"})...)
		h := run(t, input)
		assertInOrder(t, h.out.String(),
			"Enter a valid date (YYYY-MM-DD):",
			"Enter a valid status (UPCOMING / IN_PROGRESS / COMPLETED):",
			"Project Created",
		)
		p, ok := h.store.GetProject(1)
		require.True(t, ok)
		assert.Equal(t, "COMPLETED", string(p.Status))
	})

	t.Run("end before start", func(t *testing.T) {
		input := script(lines(registerBuilder, []string{"4"}, registerManager,
			[]string{"1", "Bridge", "desc", "2025-12-31", "2025-01-01", "C", "c@x.com", "000", "upcoming", "B1", "5", "3"})...)
		h := run(t, input)
		assert.Contains(t, h.out.String(), "Invalid input: end date must not be before start date")
		assert.Zero(t, h.store.Stats().Projects)
	})
}

func TestShell_ForeignProjects(t *testing.T) {
	otherBuilder := []string{"1", "Mira", "m@x.com", "9000000002", "2", "3", "pw"}
	otherManager := []string{"1", "Dev", "d@x.com", "9000000003", "1", "8", "pw"}

	input := script(lines(
		registerBuilder, []string{"4"},
		registerManager, bridgeProject, []string{"5"},
		otherBuilder, []string{"1", "1", "completed", "2", "4"},
		otherManager, []string{"2", "1", "2", "99", "5"},
		[]string{"3"},
	)...)
	h := run(t, input)

	assertInOrder(t, h.out.String(),
		"User ID: B2", "Failed to Update - Invalid Authentication", "No projects found",
		"User ID: M2", "Failed to delete the Project", "Failed to delete the Project",
	)
	p, ok := h.store.GetProject(1)
	require.True(t, ok)
	assert.Equal(t, "UPCOMING", string(p.Status))
}

func TestShell_SessionLogging(t *testing.T) {
	input := script(lines(registerBuilder, []string{"4"}, registerManager, bridgeProject, []string{"5", "3"})...)
	h := run(t, input)

	var created map[string]any
	sc := bufio.NewScanner(&h.logs)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if entry["message"] == "project created" {
			created = entry
		}
	}
	require.NotNil(t, created, "project creation was not logged through the session logger")
	assert.Equal(t, "M1", created["user_id"])
	assert.Equal(t, "projects", created["component"])
	assert.NotEmpty(t, created["session_id"])
}
