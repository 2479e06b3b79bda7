package internal

import "errors"

// Domain error kinds. Rule code wraps these with fmt.Errorf("...: %w") so
// handlers can map them to status codes with errors.Is.
var (
	ErrNotParticipant = errors.New("actor is not in this party")
	ErrNotHost        = errors.New("host-only action")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrWrongPhase     = errors.New("action not valid in this phase")
	ErrInvalidAction  = errors.New("invalid action")
	ErrNotFound       = errors.New("not found")
	ErrBanned         = errors.New("player is banned from this party")
)
