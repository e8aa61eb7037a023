package domain

import (
	"fmt"
	"strings"
)

// Role identifies the capacity a user acts in.
type Role int

const (
	RoleManager Role = 1
	RoleBuilder Role = 2
)

// Prefix returns the identifier prefix minted for users of this role.
func (r Role) Prefix() string {
	if r == RoleManager {
		return "M"
	}
	return "B"
}

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleBuilder:
		return "builder"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// RoleFromSelector converts the raw menu selector into a Role.
//
// In lenient mode every value other than the manager selector falls through
// to RoleBuilder, so 999 registers a builder. Strict mode only accepts the
// two known selectors and reports anything else as ErrInvalidArgument.
func RoleFromSelector(selector int, strict bool) (Role, error) {
	switch Role(selector) {
	case RoleManager:
		return RoleManager, nil
	case RoleBuilder:
		return RoleBuilder, nil
	}
	if strict {
		return 0, fmt.Errorf("%w: unknown role selector %d", ErrInvalidArgument, selector)
	}
	return RoleBuilder, nil
}

// RoleOfID infers the role from a minted user id ("M1" → manager).
func RoleOfID(id string) (Role, bool) {
	switch {
	case strings.HasPrefix(id, RoleManager.Prefix()):
		return RoleManager, true
	case strings.HasPrefix(id, RoleBuilder.Prefix()):
		return RoleBuilder, true
	}
	return 0, false
}

// UserDraft carries the profile fields of a user that has not been minted yet.
type UserDraft struct {
	Name       string
	Email      string
	Phone      string
	Experience int
	Password   string
	Role       Role
}

// User models a registered project manager or builder.
// The password is kept in plaintext and compared by exact equality.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience int    `json:"experience"`
	Password   string `json:"-"`
	Role       Role   `json:"role"`
}

// NewUser mints a user id for the draft's role and returns the new user.
func NewUser(ids IDGenerator, draft UserDraft) *User {
	return &User{
		ID:         ids.NextUserID(draft.Role),
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Experience: draft.Experience,
		Password:   draft.Password,
		Role:       draft.Role,
	}
}

// IsManager reports whether the user registered as a project manager.
func (u *User) IsManager() bool { return u.Role == RoleManager }

// Clone returns a copy that shares no memory with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
