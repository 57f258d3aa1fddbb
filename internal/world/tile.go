// Package world provides the dungeon level manager: enemy spawning, chests,
// healing zones and level progression.
package world

// Tile represents what a map cell shows beneath any character.
type Tile rune

const (
	// TileFloor is an empty floor tile.
	TileFloor Tile = '.'
	// TileHealing heals the hero standing on it.
	TileHealing Tile = '+'
	// TileChest is an unopened legendary chest.
	TileChest Tile = 'C'
	// TileChestOpen is a chest that has already been emptied.
	TileChestOpen Tile = 'c'
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
