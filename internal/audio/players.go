package audio

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoDevice is returned when a player has nothing to play on.
var ErrNoDevice = errors.New("no audio device")

// Beeper is anything that can ring the terminal bell.
type Beeper interface {
	Beep() error
}

// TerminalPlayer plays step sounds on the terminal bell. A terminal has no
// music channel, so music intents only record the track for the HUD.
type TerminalPlayer struct {
	beeper Beeper
	track  Intent
	muted  bool
}

// NewTerminalPlayer creates a player for the given bell. beeper may be nil.
func NewTerminalPlayer(beeper Beeper) *TerminalPlayer {
	return &TerminalPlayer{beeper: beeper, track: IntentStopMusic}
}

// Play implements Player.
func (p *TerminalPlayer) Play(intent Intent) error {
	if intent.IsMusic() {
		p.track = intent
		return nil
	}
	if p.beeper == nil {
		return ErrNoDevice
	}
	return p.beeper.Beep()
}

// NowPlaying returns a display name for the current track, or "" when silent.
func (p *TerminalPlayer) NowPlaying() string {
	if p.track == IntentStopMusic {
		return ""
	}
	return cases.Title(language.English).String(trackName(p.track))
}

func trackName(i Intent) string {
	switch i {
	case IntentBackgroundMusic:
		return "dungeon theme"
	case IntentBossMusic:
		return "boss theme"
	case IntentVictoryMusic:
		return "victory fanfare"
	default:
		return ""
	}
}

// Recorder captures intents in order. Useful for tests and replays.
type Recorder struct {
	Intents []Intent
}

// Play implements Player.
func (r *Recorder) Play(intent Intent) error {
	r.Intents = append(r.Intents, intent)
	return nil
}

// Last returns the most recent intent and whether there was one.
func (r *Recorder) Last() (Intent, bool) {
	if len(r.Intents) == 0 {
		return 0, false
	}
	return r.Intents[len(r.Intents)-1], true
}

// Reset forgets all recorded intents.
func (r *Recorder) Reset() {
	r.Intents = nil
}
