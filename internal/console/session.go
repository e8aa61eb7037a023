package console

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// Session tracks the signed-in user of one shell. Each login gets a fresh id
// so log entries of one sitting can be grouped.
type Session struct {
	id     string
	user   *domain.User
	logger zerolog.Logger
}

func (s *Session) Login(user *domain.User, base zerolog.Logger) {
	s.id = uuid.NewString()
	s.user = user
	s.logger = base.With().
		Str("session_id", s.id).
		Str("user_id", user.ID).
		Logger()
}

func (s *Session) Logout() {
	s.id = ""
	s.user = nil
	s.logger = zerolog.Nop()
}

// User returns the signed-in user, or nil.
func (s *Session) User() *domain.User { return s.user }

func (s *Session) ID() string { return s.id }

func (s *Session) Active() bool { return s.user != nil }

// Logger carries the session and user ids. It is a no-op logger while
// nobody is signed in.
func (s *Session) Logger() zerolog.Logger {
	if !s.Active() {
		return zerolog.Nop()
	}
	return s.logger
}
