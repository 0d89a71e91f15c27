// Package sharedtypes holds identifier types used across module boundaries.
package sharedtypes

import "github.com/google/uuid"

// GameID identifies a single game.
type GameID string

func (id GameID) String() string { return string(id) }

// NewGameID returns a fresh random game identifier.
func NewGameID() GameID { return GameID(uuid.New().String()) }

// TeamID identifies a team.
type TeamID string

func (id TeamID) String() string { return string(id) }

// MemberID identifies a registered team member. Guest players entered by
// free-text name have no MemberID.
type MemberID string

func (id MemberID) String() string { return string(id) }

// EventID is the persisted batting event primary key.
type EventID int64
