// Package alert plays the sound that accompanies a running countdown
package alert

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

const (
	sampleRate beep.SampleRate = 44100

	// buffer a tenth of a second so that Stop is heard promptly
	bufferSize = 10

	// the built-in tone is a soft tick once a second
	toneFrequency = 1000
	toneOn        = 25 * time.Millisecond
	toneOff       = 975 * time.Millisecond
	toneVolume    = -2

	resampleQuality = 4
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open alert sound",
	}

	errEmptySound = errors.New("sound file has no samples")

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the speaker",
	}
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// source produces a fresh alert stream and a function that releases it.
type source func() (beep.Streamer, func(), error)

// Player loops an alert sound on the system speaker between Start and Stop.
// It is meant to be driven from a single goroutine.
type Player struct {
	source  source
	release func()
	log     *slog.Logger
	volume  float64
}

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the playback volume as a power of two (0 is unchanged).
func WithVolume(v float64) Option {
	return func(p *Player) {
		p.volume = v
	}
}

// WithLogger sets the logger that receives playback failures.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		p.log = l
	}
}

// NewPlayer creates a player for the sound file at path, or for the
// built-in tone when path is empty. The speaker is initialised on first use.
func NewPlayer(path string, opts ...Option) (*Player, error) {
	p := &Player{
		log:    slog.Default(),
		source: toneSource,
	}

	if path != "" {
		// fail early on files that cannot be played
		_, release, err := fileSource(path)
		if err != nil {
			return nil, err
		}

		release()

		p.source = func() (beep.Streamer, func(), error) {
			return fileSource(path)
		}
	}

	for _, opt := range opts {
		opt(p)
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/bufferSize))
	})

	if speakerErr != nil {
		return nil, errSpeakerInit.Wrap(speakerErr)
	}

	return p, nil
}

// Start begins looping the alert sound. Any sound already playing is
// replaced.
func (p *Player) Start() {
	p.Stop()

	s, release, err := p.source()
	if err != nil {
		p.log.Error("alert playback failed", slog.Any("error", err))
		return
	}

	p.release = release

	if p.volume != 0 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   p.volume,
		}
	}

	speaker.Play(s)

	p.log.Debug("alert started")
}

// Stop silences the speaker and releases the current stream.
func (p *Player) Stop() {
	speaker.Clear()

	if p.release != nil {
		p.release()
		p.release = nil

		p.log.Debug("alert stopped")
	}
}

// Nop is an alert sink that makes no sound.
type Nop struct{}

func (Nop) Start() {}

func (Nop) Stop() {}

// toneSource returns an endless series of short ticks.
func toneSource() (beep.Streamer, func(), error) {
	tone, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, nil, err
	}

	gap, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, nil, err
	}

	s := beep.Iterate(func() beep.Streamer {
		return beep.Seq(
			&effects.Volume{
				Streamer: beep.Take(sampleRate.N(toneOn), tone),
				Base:     2,
				Volume:   toneVolume,
			},
			&effects.Volume{
				Streamer: beep.Take(sampleRate.N(toneOff), gap),
				Silent:   true,
			},
		)
	})

	return s, func() {}, nil
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return vorbis.Decode(f)
		}, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return mp3.Decode(f)
		}, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(f)
		}, nil
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		}, nil
	}

	return nil, errInvalidSoundFormat.Fmt(path)
}

// loop repeats stream indefinitely. The loop ends when the stream fails to
// decode instead of seeking back to the start forever.
func loop(stream beep.StreamSeeker) (beep.Streamer, error) {
	if stream.Len() == 0 {
		return nil, errOpenSound.Wrap(errEmptySound)
	}

	looped, err := beep.Loop2(stream)
	if err != nil {
		return nil, errOpenSound.Wrap(err)
	}

	return looped, nil
}

// fileSource decodes the sound file at path and loops it until it is
// released or fails to decode, resampled to the speaker rate.
func fileSource(path string) (beep.Streamer, func(), error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errOpenSound.Wrap(err)
	}

	stream, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, errOpenSound.Wrap(err)
	}

	looped, err := loop(stream)
	if err != nil {
		_ = stream.Close()
		return nil, nil, err
	}

	release := func() {
		_ = stream.Close()
	}

	if format.SampleRate == sampleRate {
		return looped, release, nil
	}

	resampled := beep.Resample(resampleQuality, format.SampleRate, sampleRate, looped)

	return resampled, release, nil
}
