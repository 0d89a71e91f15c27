package scoringservice

import "errors"

// Domain errors for the scoring service. Handlers treat these as normal
// outcomes (publish a failure event, ack the message) rather than retrying.
var (
	// ErrMissingResult indicates the plate appearance had no result label.
	ErrMissingResult = errors.New("missing batting result")

	// ErrInvalidResult indicates an unknown result label.
	ErrInvalidResult = errors.New("invalid batting result")

	// ErrInvalidInning indicates an inning number below 1.
	ErrInvalidInning = errors.New("invalid inning number")

	// ErrTooManyOutRunners indicates more than two runners were selected as
	// put out on a single play.
	ErrTooManyOutRunners = errors.New("at most two runners can be put out on one play")

	// ErrOutRunnersNotAllowed indicates out-runner selection on a result
	// that is not a ground-ball-type out.
	ErrOutRunnersNotAllowed = errors.New("out-runner selection requires a ground-ball out")

	// ErrUnknownOutRunner indicates a selected out-runner is not an active
	// runner for the half-inning.
	ErrUnknownOutRunner = errors.New("selected out-runner is not on base")
)
