package gamedata

// =============================================================================
// CONTENT TABLES
// =============================================================================
//
// content.json carries every fixed number the rule engine depends on:
//
//   difficulties: name -> enemy stat multiplier (table order is menu order)
//   itemTypes:    name -> base bonus per item level
//   rarities:     name -> stat multiplier, sell multiplier, display color
//
// Item bonus:  floor(base * level * rarity.statMultiplier)
// Sell price:  rarity.priceMultiplier * 10 * level
//
// The tables are validated at load time. A bad table is a startup error,
// never something the game works around mid-session.

// DifficultyDef defines a selectable difficulty.
type DifficultyDef struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// BonusDef is the per-level stat bonus of an item type.
type BonusDef struct {
	Strength int `json:"strength,omitempty"`
	Defense  int `json:"defense,omitempty"`
	Speed    int `json:"speed,omitempty"`
}

// IsZero returns true if the bonus grants nothing.
func (b BonusDef) IsZero() bool {
	return b.Strength == 0 && b.Defense == 0 && b.Speed == 0
}

// ItemTypeDef defines an equipment type and its base bonus.
type ItemTypeDef struct {
	Name  string   `json:"name"`
	Bonus BonusDef `json:"bonus"`
}

// RarityDef defines a rarity tier.
type RarityDef struct {
	Name            string  `json:"name"`
	StatMultiplier  float64 `json:"statMultiplier"`
	PriceMultiplier int     `json:"priceMultiplier"`
	Color           string  `json:"color"` // Hex color code (e.g., "#FFA500")
}

// ContentFile represents the structure of content.json.
type ContentFile struct {
	Difficulties []DifficultyDef `json:"difficulties"`
	ItemTypes    []ItemTypeDef   `json:"itemTypes"`
	Rarities     []RarityDef     `json:"rarities"`
}

// LoadContentFile loads the raw tables from the embedded content.json file.
func LoadContentFile() (ContentFile, error) {
	return Load[ContentFile]("content.json")
}
