// Package audio turns game audio intents into playback requests. The rule
// engine only emits intents; whether anything is actually heard is decided here.
package audio

import (
	"log/slog"
)

// Intent is a request for the audio collaborator.
type Intent int

const (
	IntentBackgroundMusic Intent = iota
	IntentBossMusic
	IntentVictoryMusic
	IntentStep
	IntentStopMusic
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentBackgroundMusic:
		return "background_music"
	case IntentBossMusic:
		return "boss_music"
	case IntentVictoryMusic:
		return "victory_music"
	case IntentStep:
		return "step"
	case IntentStopMusic:
		return "stop_music"
	default:
		return "unknown"
	}
}

// IsMusic returns true for intents that change the music track.
func (i Intent) IsMusic() bool {
	switch i {
	case IntentBackgroundMusic, IntentBossMusic, IntentVictoryMusic, IntentStopMusic:
		return true
	default:
		return false
	}
}

// Player plays a single intent. Errors mean the intent could not be honored.
type Player interface {
	Play(intent Intent) error
}

// Dispatcher forwards intents to a Player while sound is enabled.
// Playback failures are logged and swallowed; they never reach the caller.
type Dispatcher struct {
	player  Player
	enabled bool
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil player discards every intent.
func NewDispatcher(player Player, enabled bool, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{player: player, enabled: enabled, logger: logger}
}

// Dispatch plays the intent unless sound is disabled.
func (d *Dispatcher) Dispatch(intent Intent) {
	if !d.enabled || d.player == nil {
		return
	}
	if err := d.player.Play(intent); err != nil {
		d.logger.Debug("audio intent dropped", "intent", intent.String(), "error", err)
	}
}

// Enabled reports whether intents are currently forwarded.
func (d *Dispatcher) Enabled() bool {
	return d.enabled
}

// SetEnabled toggles sound. Turning sound on starts the background track;
// turning it off stops the music. Both go straight to the player.
func (d *Dispatcher) SetEnabled(enabled bool) {
	if enabled == d.enabled {
		return
	}
	if enabled {
		d.enabled = true
		d.Dispatch(IntentBackgroundMusic)
		return
	}
	d.Dispatch(IntentStopMusic)
	d.enabled = false
}

// Toggle flips the sound setting and returns the new value.
func (d *Dispatcher) Toggle() bool {
	d.SetEnabled(!d.enabled)
	return d.enabled
}
