package gamedata

import (
	"errors"
	"fmt"
)

// ErrInvalidContent is returned when a content table fails validation.
var ErrInvalidContent = errors.New("invalid content table")

// DefaultDifficulty is selected when the difficulty screen first opens.
const DefaultDifficulty = "Normal"

// Content holds validated content tables and provides lookup utilities.
type Content struct {
	file         ContentFile
	difficulties map[string]*DifficultyDef
	itemTypes    map[string]*ItemTypeDef
	rarities     map[string]*RarityDef
}

// NewContent validates the tables and builds a lookup registry.
func NewContent(file ContentFile) (*Content, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}
	c := &Content{
		file:         file,
		difficulties: make(map[string]*DifficultyDef, len(file.Difficulties)),
		itemTypes:    make(map[string]*ItemTypeDef, len(file.ItemTypes)),
		rarities:     make(map[string]*RarityDef, len(file.Rarities)),
	}
	for i := range file.Difficulties {
		c.difficulties[file.Difficulties[i].Name] = &file.Difficulties[i]
	}
	for i := range file.ItemTypes {
		c.itemTypes[file.ItemTypes[i].Name] = &file.ItemTypes[i]
	}
	for i := range file.Rarities {
		c.rarities[file.Rarities[i].Name] = &file.Rarities[i]
	}
	return c, nil
}

// LoadContent loads and validates the embedded content.json.
func LoadContent() (*Content, error) {
	file, err := LoadContentFile()
	if err != nil {
		return nil, err
	}
	return NewContent(file)
}

// MustLoadContent loads the content tables, panicking on error.
func MustLoadContent() *Content {
	c, err := LoadContent()
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the tables for structural faults.
func (f ContentFile) Validate() error {
	if len(f.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties", ErrInvalidContent)
	}
	if len(f.ItemTypes) == 0 {
		return fmt.Errorf("%w: no item types", ErrInvalidContent)
	}
	if len(f.Rarities) == 0 {
		return fmt.Errorf("%w: no rarities", ErrInvalidContent)
	}

	seen := make(map[string]bool)
	for _, d := range f.Difficulties {
		if d.Name == "" || seen["difficulty/"+d.Name] {
			return fmt.Errorf("%w: difficulty name %q missing or duplicated", ErrInvalidContent, d.Name)
		}
		seen["difficulty/"+d.Name] = true
		if d.Multiplier <= 0 {
			return fmt.Errorf("%w: difficulty %s multiplier %v", ErrInvalidContent, d.Name, d.Multiplier)
		}
	}
	for _, t := range f.ItemTypes {
		if t.Name == "" || seen["type/"+t.Name] {
			return fmt.Errorf("%w: item type name %q missing or duplicated", ErrInvalidContent, t.Name)
		}
		seen["type/"+t.Name] = true
		if t.Bonus.Strength < 0 || t.Bonus.Defense < 0 || t.Bonus.Speed < 0 || t.Bonus.IsZero() {
			return fmt.Errorf("%w: item type %s has bonus %+v", ErrInvalidContent, t.Name, t.Bonus)
		}
	}
	for _, r := range f.Rarities {
		if r.Name == "" || seen["rarity/"+r.Name] {
			return fmt.Errorf("%w: rarity name %q missing or duplicated", ErrInvalidContent, r.Name)
		}
		seen["rarity/"+r.Name] = true
		if r.StatMultiplier <= 0 || r.PriceMultiplier <= 0 {
			return fmt.Errorf("%w: rarity %s multipliers %v/%d", ErrInvalidContent, r.Name, r.StatMultiplier, r.PriceMultiplier)
		}
		if _, err := ParseHexColor(r.Color); err != nil {
			return fmt.Errorf("%w: rarity %s: %v", ErrInvalidContent, r.Name, err)
		}
	}
	return nil
}

// Difficulties returns the difficulty definitions in menu order.
func (c *Content) Difficulties() []DifficultyDef {
	return c.file.Difficulties
}

// DifficultyByName returns the difficulty with the given name, or nil if not found.
func (c *Content) DifficultyByName(name string) *DifficultyDef {
	return c.difficulties[name]
}

// ItemTypes returns all item type definitions.
func (c *Content) ItemTypes() []ItemTypeDef {
	return c.file.ItemTypes
}

// ItemTypeByName returns the item type with the given name, or nil if not found.
func (c *Content) ItemTypeByName(name string) *ItemTypeDef {
	return c.itemTypes[name]
}

// Rarities returns all rarity definitions.
func (c *Content) Rarities() []RarityDef {
	return c.file.Rarities
}

// RarityByName returns the rarity with the given name, or nil if not found.
func (c *Content) RarityByName(name string) *RarityDef {
	return c.rarities[name]
}
