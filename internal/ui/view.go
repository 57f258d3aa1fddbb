package ui

import (
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// Mode selects which screen the renderer draws.
type Mode int

const (
	ModeMenu Mode = iota
	ModeInstructions
	ModeDifficulty
	ModeExploration
	ModeCombat
	ModeGameOver
	ModeVictory
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInstructions:
		return "instructions"
	case ModeDifficulty:
		return "difficulty"
	case ModeExploration:
		return "exploration"
	case ModeCombat:
		return "combat"
	case ModeGameOver:
		return "game over"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Button is a clickable label. Its cells must match the hit-test rectangle.
type Button struct {
	Label    string
	X, Y, W  int
	Selected bool
	Accent   bool
}

// InventoryView describes the open inventory overlay.
type InventoryView struct {
	Selected int // Negative when nothing is selected
	Start    int
	PageSize int
}

// View is a read-only snapshot of everything one frame needs.
type View struct {
	Mode    Mode
	Buttons []Button

	Hero      *entity.Hero
	Dungeon   *world.Dungeon
	Enemy     *entity.Enemy
	Inventory *InventoryView // Nil when the overlay is hidden
	Tables    *item.Tables

	Log        []string
	Difficulty string
	NowPlaying string
	Frame      int
}
