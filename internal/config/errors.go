package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseDuration = &apperr.Error{
		Message: "invalid duration format: %s (use a number of minutes or a value like 1h30m)",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --duration value",
	}

	errInvalidDuration = &apperr.Error{
		Message: "timer duration must be between %v and %v, got %v",
	}

	errDurationPrecision = &apperr.Error{
		Message: "timer duration must be a whole number of seconds, got %v",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be one of %s)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown alert sound: %s",
	}
)
