package world

import (
	"math/rand"

	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
)

// chestsPerLevel is the number of legendary chests generated per level.
const chestsPerLevel = 3

// Chest is a legendary chest. It can be opened exactly once.
type Chest struct {
	Pos    grid.Position
	Opened bool
	Items  []item.Item // Fixed at generation
}

// GenerateChests creates chestsPerLevel chests on random interior tiles,
// each holding 1-8 Legendary items of at least the given level.
// Positions are independent and may coincide.
func GenerateChests(bounds grid.Bounds, gen *item.Generator, rng *rand.Rand, level int) []*Chest {
	chests := make([]*Chest, 0, chestsPerLevel)
	for i := 0; i < chestsPerLevel; i++ {
		items := gen.GenerateChestItems(level)
		chests = append(chests, &Chest{
			Pos:   bounds.RandomInterior(rng),
			Items: items,
		})
	}
	return chests
}
