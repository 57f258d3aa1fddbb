package game

import (
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/world"
)

const (
	// InventoryPageSize is the number of inventory rows visible at once.
	InventoryPageSize = 5

	// NoSelection marks an empty inventory selection.
	NoSelection = -1
)

// InventoryOverlay is the inventory panel drawn over exploration.
type InventoryOverlay struct {
	Visible  bool
	Selected int // NoSelection, or an index into the hero's inventory
	Start    int // First visible row
}

// Session holds everything that changes while the program runs.
type Session struct {
	State      State
	Difficulty gamedata.DifficultyDef

	Hero    *entity.Hero
	Dungeon *world.Dungeon
	Engaged *entity.Enemy // Set only while in StateCombat

	Log       *CombatLog
	Inventory InventoryOverlay

	MenuCursor       int // Index into MenuButtons
	DifficultyCursor int // Index into the content's difficulty table
	Frame            int // Ticks since launch, drives animation
	Quit             bool
}

// Level returns the current dungeon level, starting at 1.
func (s *Session) Level() int {
	return s.Dungeon.Level
}

// closeInventory hides the overlay and clears the selection.
func (s *Session) closeInventory() {
	s.Inventory = InventoryOverlay{Selected: NoSelection}
}
