package domain

// IDGenerator mints identities for new entities. Implementations must be
// safe for concurrent use; two calls never return the same value for the
// same kind.
type IDGenerator interface {
	// NextUserID returns the role prefix followed by the next value of
	// that role's counter, e.g. "M1", "B3".
	NextUserID(role Role) string
	NextClientID() int64
	NextProjectID() int64
}
