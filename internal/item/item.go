// Package item provides equipment items and the random item generator.
package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownType is returned when a content table names an unknown item type.
	ErrUnknownType = errors.New("unknown item type")
	// ErrUnknownRarity is returned when a content table names an unknown rarity.
	ErrUnknownRarity = errors.New("unknown rarity")
	// ErrIndexOutOfRange is returned for an inventory index that does not exist.
	ErrIndexOutOfRange = errors.New("inventory index out of range")
)

// Type is an equipment slot. Each type fills exactly one slot.
type Type int

const (
	TypeSword Type = iota
	TypeShield
	TypeBoots
	TypeGloves
	TypeRing

	numTypes = int(TypeRing) + 1
)

// Types lists every item type in slot order.
var Types = [numTypes]Type{TypeSword, TypeShield, TypeBoots, TypeGloves, TypeRing}

// String returns the item type name.
func (t Type) String() string {
	switch t {
	case TypeSword:
		return "Sword"
	case TypeShield:
		return "Shield"
	case TypeBoots:
		return "Boots"
	case TypeGloves:
		return "Gloves"
	case TypeRing:
		return "Ring"
	default:
		return "Unknown"
	}
}

// ParseType resolves an item type by name.
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Rarity is an item quality tier.
type Rarity int

const (
	RarityNormal Rarity = iota
	RarityRare
	RarityExcellent
	RarityLegendary

	numRarities = int(RarityLegendary) + 1
)

// Rarities lists every rarity from lowest to highest.
var Rarities = [numRarities]Rarity{RarityNormal, RarityRare, RarityExcellent, RarityLegendary}

// String returns the rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityNormal:
		return "Normal"
	case RarityRare:
		return "Rare"
	case RarityExcellent:
		return "Excellent"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// ParseRarity resolves a rarity by name.
func ParseRarity(name string) (Rarity, error) {
	for _, r := range Rarities {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, name)
}

// Bonus is the stat contribution of an equipped item.
type Bonus struct {
	Strength int
	Defense  int
	Speed    int
}

// Add returns the field-wise sum of two bonuses.
func (b Bonus) Add(o Bonus) Bonus {
	return Bonus{
		Strength: b.Strength + o.Strength,
		Defense:  b.Defense + o.Defense,
		Speed:    b.Speed + o.Speed,
	}
}

// Item is a piece of equipment. Items are values and never change after generation.
type Item struct {
	ID     uuid.UUID
	Name   string // "{type} {rarity} Lv{level}"
	Type   Type
	Rarity Rarity
	Color  string // Hex display color of the rarity
	Level  int
	Bonus  Bonus
}

// FormatName builds the display name for an item.
func FormatName(t Type, r Rarity, level int) string {
	return fmt.Sprintf("%s %s Lv%d", t, r, level)
}
