package lineupservice

import "errors"

var (
	ErrMissingGameID = errors.New("game id is required")
	ErrMissingTeamID = errors.New("team id is required")
	ErrEmptyImport   = errors.New("import file is empty")
)
