package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateAccount = errors.New("user already exists")
var ErrAccountNotFound = errors.New("user not found")
var ErrInvalidArgument = errors.New("invalid argument")

// DuplicateAccountError is returned by registration when the email is taken.
// It matches ErrDuplicateAccount with errors.Is.
type DuplicateAccountError struct {
	ExistingID string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("User already exists with ID: %s", e.ExistingID)
}

func (e *DuplicateAccountError) Is(target error) bool {
	return target == ErrDuplicateAccount
}
