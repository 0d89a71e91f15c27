package scoringdb

import "errors"

// Sentinel errors for the repository layer. These signal database state;
// the service layer decides whether they are domain failures.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
