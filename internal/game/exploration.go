package game

import (
	"context"

	"github.com/samdwyer/dungeonescape/internal/audio"
	"github.com/samdwyer/dungeonescape/internal/grid"
)

const (
	// healPerStep is applied when the hero steps onto a healing tile.
	healPerStep = 15
	// healPerTick is applied every tick the hero stands on a healing tile.
	healPerTick = 1
)

func (m *Machine) handleExploration(ctx context.Context, ev Event) {
	s := m.session
	if s.Inventory.Visible {
		switch ev.Action {
		case ActionToggleInventory:
			s.closeInventory()
		case ActionInventoryUp:
			m.inventoryUp()
		case ActionInventoryDown:
			m.inventoryDown()
		case ActionEquip:
			m.equipSelected(ctx)
		case ActionSell:
			m.sellSelected(ctx)
		}
		return
	}

	if ev.Action == ActionToggleInventory {
		m.openInventory()
		return
	}
	if d, ok := ev.Action.direction(); ok {
		m.moveHero(ctx, d)
	}
}

// moveHero steps the hero one tile, then resolves what the new tile holds:
// an enemy, a chest, or a healing zone, in that order.
func (m *Machine) moveHero(ctx context.Context, d grid.Direction) {
	s := m.session
	if !s.Hero.MoveBy(d, s.Dungeon.Bounds) {
		return
	}
	m.audio.Dispatch(audio.IntentStep)

	m.checkCollision(ctx)
	for _, c := range s.Dungeon.OpenChests(ctx, s.Hero) {
		m.logger.Debug("chest looted", "x", c.Pos.X, "y", c.Pos.Y, "items", len(c.Items))
	}
	if s.Dungeon.IsHealingZone(s.Hero.Pos) {
		s.Hero.Heal(healPerStep)
	}
}

// checkCollision engages the first enemy sharing the hero's tile.
func (m *Machine) checkCollision(ctx context.Context) {
	s := m.session
	if s.State != StateExploration {
		return
	}
	if e := s.Dungeon.EnemyAt(s.Hero.Pos); e != nil {
		m.engage(ctx, e)
	}
}
