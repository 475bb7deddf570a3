package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minDuration = 1 * time.Second
	maxDuration = 720 * time.Minute // 12 hours

	// Volume is an exponent applied to base 2.
	minVolume = -5.0
	maxVolume = 5.0

	logLevels = []string{"debug", "info", "warn", "error"}

	soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	d := c.Timer.Duration

	if d < minDuration || d > maxDuration {
		return errInvalidDuration.Fmt(minDuration, maxDuration, d)
	}

	if d%time.Second != 0 {
		return errDurationPrecision.Fmt(d)
	}

	if c.Sound.Volume < minVolume || c.Sound.Volume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume, c.Sound.Volume)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level, strings.Join(logLevels, ", "))
	}

	if c.Sound.Enabled {
		if _, err := c.AlertSoundPath(); err != nil {
			return err
		}
	}

	return nil
}

// AlertSoundPath resolves the configured alert to a file. It returns an
// empty string for the built-in tone. Names without a directory are looked
// up in the sounds directory, with or without an extension.
func (c *Config) AlertSoundPath() (string, error) {
	sound := strings.TrimSpace(c.Sound.Alert)

	if sound == "" || sound == AlertTone {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(sound))

	if ext != "" && !slices.Contains(soundExts, ext) {
		return "", errInvalidSoundFormat.Fmt(sound)
	}

	var candidates []string

	switch {
	case filepath.IsAbs(sound) || strings.ContainsRune(sound, filepath.Separator):
		candidates = append(candidates, sound)
	case ext != "":
		candidates = append(candidates, filepath.Join(c.System.SoundsDir, sound))
	default:
		for _, e := range soundExts {
			candidates = append(
				candidates,
				filepath.Join(c.System.SoundsDir, sound+e),
			)
		}
	}

	for _, path := range candidates {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", errUnknownSound.Fmt(sound)
}

// IsSoundFile reports whether name has an extension pomo can play.
func IsSoundFile(name string) bool {
	return slices.Contains(soundExts, strings.ToLower(filepath.Ext(name)))
}
