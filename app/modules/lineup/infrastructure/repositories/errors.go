package lineupdb

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)
