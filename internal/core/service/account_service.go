package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
	"github.com/builderportfolio/portfolio-system/internal/core/ports"
	"github.com/builderportfolio/portfolio-system/internal/metrics"
)

// AccountService implements registration and login.
type AccountService struct {
	store  ports.EntityStore
	ids    domain.IDGenerator
	opts   options
	logger zerolog.Logger

	// registerMu makes the email scan and the insert one step, so two
	// concurrent registrations with the same email cannot both succeed.
	registerMu sync.Mutex
}

var _ ports.AccountService = (*AccountService)(nil)

func NewAccountService(store ports.EntityStore, ids domain.IDGenerator, logger zerolog.Logger, opts ...Option) *AccountService {
	return &AccountService{
		store:  store,
		ids:    ids,
		opts:   buildOptions(opts),
		logger: logger.With().Str("component", componentAccounts).Logger(),
	}
}

// Register creates a user and bootstraps its role index entry. The email is
// compared by exact equality against every stored user.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	log := loggerFrom(ctx, s.logger, componentAccounts)
	log.Info().Str("email", in.Email).Msg("registration attempt")

	role, err := domain.RoleFromSelector(in.RoleSelector, s.opts.strictRoles)
	if err != nil {
		log.Warn().Int("role_selector", in.RoleSelector).Msg("registration rejected: unknown role")
		return "", fmt.Errorf("register: %w", err)
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if existing := s.findByEmail(in.Email); existing != nil {
		log.Warn().Str("existing_id", existing.ID).Msg("registration rejected: email already registered")
		s.opts.metrics.ObserveRegistrationConflict()
		return "", &domain.DuplicateAccountError{ExistingID: existing.ID}
	}

	user := domain.NewUser(s.ids, domain.UserDraft{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Experience: in.Experience,
		Password:   in.Password,
		Role:       role,
	})

	inserted, err := s.store.InsertUser(user)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if !inserted {
		// the id generator handed out an id that is already stored
		log.Error().Str("user_id", user.ID).Msg("registration rejected: user id already stored")
		return "", &domain.DuplicateAccountError{ExistingID: user.ID}
	}
	log.Info().Str("user_id", user.ID).Msg("user inserted")

	if role == domain.RoleManager {
		s.store.EnsureManagerEntry(user.ID)
	} else {
		s.store.EnsureBuilderEntry(user.ID)
	}

	s.opts.metrics.ObserveRegistration(role.String())
	log.Info().Str("user_id", user.ID).Stringer("role", role).Msg("registration successful")
	return user.ID, nil
}

// Authenticate looks the user up by id and compares the plaintext password.
// An unknown id is an error; a wrong password returns (nil, nil).
func (s *AccountService) Authenticate(ctx context.Context, userID, password string) (*domain.User, error) {
	log := loggerFrom(ctx, s.logger, componentAccounts).With().Str("user_id", userID).Logger()
	log.Info().Msg("login attempt")

	user, ok := s.store.GetUser(userID)
	if !ok {
		log.Warn().Msg("login failed: user not found")
		s.opts.metrics.ObserveLogin(metrics.ResultNotFound)
		return nil, fmt.Errorf("authenticate %s: %w", userID, domain.ErrAccountNotFound)
	}

	if user.Password != password {
		log.Warn().Msg("login failed: invalid password")
		s.opts.metrics.ObserveLogin(metrics.ResultWrongPassword)
		return nil, nil
	}

	s.opts.metrics.ObserveLogin(metrics.ResultOK)
	log.Info().Msg("login successful")
	return user, nil
}

// Fetch is a plain lookup without any credential check.
func (s *AccountService) Fetch(_ context.Context, userID string) (*domain.User, bool) {
	return s.store.GetUser(userID)
}

func (s *AccountService) findByEmail(email string) *domain.User {
	for _, u := range s.store.Users() {
		if u.Email == email {
			return u
		}
	}
	return nil
}
