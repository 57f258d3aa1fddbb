// Package entity provides the hero and the enemies that roam the dungeon.
package entity

import (
	"github.com/samdwyer/dungeonescape/internal/combat"
	"github.com/samdwyer/dungeonescape/internal/grid"
)

// Character holds the attributes shared by the hero and enemies.
type Character struct {
	Name     string
	Pos      grid.Position
	HP       int
	Strength int
	Defense  int
	Speed    int
	Moved    bool // Set when the character stepped this tick; used for walk animation
}

// Position returns the character's current tile.
func (c *Character) Position() grid.Position {
	return c.Pos
}

// MoveBy steps one tile in the given direction. Non-unit steps and steps
// leaving the bounds are rejected and leave the character in place.
func (c *Character) MoveBy(d grid.Direction, bounds grid.Bounds) bool {
	if !d.IsUnit() {
		return false
	}
	next := c.Pos.Add(d)
	if !bounds.Contains(next) {
		return false
	}
	c.Pos = next
	c.Moved = true
	return true
}

// ClearMoved resets the per-tick movement flag.
func (c *Character) ClearMoved() {
	c.Moved = false
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's display name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetStrength returns the strength stat.
func (c *Character) GetStrength() int { return c.Strength }

// GetDefense returns the defense stat.
func (c *Character) GetDefense() int { return c.Defense }

// TakeDamage reduces HP, never below zero, and returns actual damage taken.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
