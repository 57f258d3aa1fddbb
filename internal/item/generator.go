package item

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	// MinLevel and MaxLevel bound a freshly generated item level.
	MinLevel = 1
	MaxLevel = 5

	// A legendary chest holds between minChestItems and maxChestItems items.
	minChestItems = 1
	maxChestItems = 8
)

// Generator produces randomized equipment.
type Generator struct {
	tables *Tables
	rng    *rand.Rand
}

// NewGenerator creates a generator drawing from the given random source.
func NewGenerator(tables *Tables, rng *rand.Rand) *Generator {
	return &Generator{tables: tables, rng: rng}
}

// Tables returns the content tables the generator uses.
func (g *Generator) Tables() *Tables {
	return g.tables
}

// Generate picks a type, a rarity and a level in [1,5] uniformly at random.
func (g *Generator) Generate() Item {
	typ := Types[g.rng.Intn(len(Types))]
	rarity := Rarities[g.rng.Intn(len(Rarities))]
	level := MinLevel + g.rng.Intn(MaxLevel-MinLevel+1)
	return g.Build(typ, rarity, level)
}

// GenerateChestItems generates 1-8 items forced to Legendary rarity with
// a level of at least dungeonLevel.
func (g *Generator) GenerateChestItems(dungeonLevel int) []Item {
	n := minChestItems + g.rng.Intn(maxChestItems-minChestItems+1)
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		rolled := g.Generate()
		items = append(items, g.Build(rolled.Type, RarityLegendary, max(dungeonLevel, rolled.Level)))
	}
	return items
}

// Build constructs an item with a derived name, color and bonus.
func (g *Generator) Build(typ Type, rarity Rarity, level int) Item {
	return Item{
		ID:     g.newID(),
		Name:   FormatName(typ, rarity, level),
		Type:   typ,
		Rarity: rarity,
		Color:  g.tables.Color(rarity),
		Level:  level,
		Bonus:  g.tables.ScaledBonus(typ, rarity, level),
	}
}

// newID draws the item ID from the generator's random source so that a
// seeded session produces the same IDs every run.
func (g *Generator) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.New()
	}
	return id
}
