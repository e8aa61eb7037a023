package ports

import (
	"context"

	"github.com/builderportfolio/portfolio-system/internal/core/domain"
)

// RegisterInput is the DTO passed from the presentation layer to AccountService.
// RoleSelector is the raw menu choice: 1 selects a project manager.
type RegisterInput struct {
	Name         string
	Email        string
	Phone        string
	Experience   int
	Password     string
	RoleSelector int
}

type AccountService interface {
	// Register returns the new user's id. A taken email yields a
	// *domain.DuplicateAccountError.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Authenticate returns domain.ErrAccountNotFound for unknown ids and
	// (nil, nil) when the password does not match.
	Authenticate(ctx context.Context, userID, password string) (*domain.User, error)
	Fetch(ctx context.Context, userID string) (*domain.User, bool)
}
