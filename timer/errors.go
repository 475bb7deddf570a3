package timer

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	// ErrInvalidArgument is returned when a duration is not a positive number
	// of seconds.
	ErrInvalidArgument = &apperr.Error{
		Message: "invalid duration: %d seconds (must be greater than zero)",
	}

	// ErrInvalidTransition is returned when a command is not allowed in the
	// current phase.
	ErrInvalidTransition = &apperr.Error{
		Message: "cannot %s while the timer is %s",
	}

	// ErrAlreadyActive is returned when a scheduler is activated twice.
	ErrAlreadyActive = &apperr.Error{
		Message: "tick scheduler is already active",
	}
)
