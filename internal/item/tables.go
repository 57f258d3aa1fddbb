package item

import (
	"fmt"

	"github.com/samdwyer/dungeonescape/internal/gamedata"
)

// basePriceUnit is multiplied by rarity and item level to get the sell price.
const basePriceUnit = 10

// Tables holds the content tables resolved onto the item enums.
type Tables struct {
	bonuses   [numTypes]Bonus
	statMult  [numRarities]float64
	priceMult [numRarities]int
	colors    [numRarities]string
}

// NewTables resolves validated content onto item types and rarities.
// Every type and rarity must be present exactly once.
func NewTables(content *gamedata.Content) (*Tables, error) {
	t := &Tables{}
	var haveType [numTypes]bool
	var haveRarity [numRarities]bool

	for _, def := range content.ItemTypes() {
		typ, err := ParseType(def.Name)
		if err != nil {
			return nil, err
		}
		t.bonuses[typ] = Bonus{
			Strength: def.Bonus.Strength,
			Defense:  def.Bonus.Defense,
			Speed:    def.Bonus.Speed,
		}
		haveType[typ] = true
	}
	for _, def := range content.Rarities() {
		r, err := ParseRarity(def.Name)
		if err != nil {
			return nil, err
		}
		t.statMult[r] = def.StatMultiplier
		t.priceMult[r] = def.PriceMultiplier
		t.colors[r] = def.Color
		haveRarity[r] = true
	}

	for _, typ := range Types {
		if !haveType[typ] {
			return nil, fmt.Errorf("%w: no table entry for %s", ErrUnknownType, typ)
		}
	}
	for _, r := range Rarities {
		if !haveRarity[r] {
			return nil, fmt.Errorf("%w: no table entry for %s", ErrUnknownRarity, r)
		}
	}
	return t, nil
}

// ScaledBonus returns floor(base * level * rarityMultiplier) for each stat.
func (t *Tables) ScaledBonus(typ Type, r Rarity, level int) Bonus {
	base := t.bonuses[typ]
	mult := t.statMult[r]
	scale := func(v int) int {
		return int(float64(v*level) * mult)
	}
	return Bonus{
		Strength: scale(base.Strength),
		Defense:  scale(base.Defense),
		Speed:    scale(base.Speed),
	}
}

// Color returns the display color for a rarity.
func (t *Tables) Color(r Rarity) string {
	return t.colors[r]
}

// SellPrice returns rarityPriceMultiplier * 10 * level.
func (t *Tables) SellPrice(it Item) int {
	return t.priceMult[it.Rarity] * basePriceUnit * it.Level
}
