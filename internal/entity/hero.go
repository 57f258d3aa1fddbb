package entity

import (
	"fmt"

	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
)

const (
	// HeroMaxHP caps the hero's hit points.
	HeroMaxHP = 100

	baseStrength = 10
	baseDefense  = 5
	baseSpeed    = 5
)

// StartPosition is where the hero enters every level.
var StartPosition = grid.Position{X: 1, Y: 1}

// Stats is the derived stat block of the hero.
type Stats struct {
	Strength int
	Defense  int
	Speed    int
}

// Hero is the player character.
type Hero struct {
	Character
	Exp       int
	Money     int
	Inventory []item.Item
	Equipment map[item.Type]item.Item
}

// NewHero creates a hero with full HP and base stats at the start position.
func NewHero() *Hero {
	h := &Hero{
		Character: Character{Name: "Hero", Pos: StartPosition},
	}
	h.Reset()
	return h
}

// Reset restores HP, clears experience, inventory and equipment and
// recomputes stats from base.
func (h *Hero) Reset() {
	h.HP = HeroMaxHP
	h.Exp = 0
	h.Inventory = []item.Item{}
	h.Equipment = make(map[item.Type]item.Item)
	h.recompute()
}

// Heal restores HP up to HeroMaxHP and returns the amount actually healed.
func (h *Hero) Heal(amount int) int {
	if amount <= 0 || h.HP >= HeroMaxHP {
		return 0
	}
	actual := amount
	if h.HP+actual > HeroMaxHP {
		actual = HeroMaxHP - h.HP
	}
	h.HP += actual
	return actual
}

// GainExp adds experience points.
func (h *Hero) GainExp(amount int) {
	h.Exp += amount
}

// AddItems appends items to the end of the inventory.
func (h *Hero) AddItems(items ...item.Item) {
	h.Inventory = append(h.Inventory, items...)
}

// Equip places the item in its type's slot, replacing any previous item
// there, then recomputes stats from base.
func (h *Hero) Equip(it item.Item) {
	h.Equipment[it.Type] = it
	h.recompute()
}

// EquipAt equips the inventory item at index. The item stays in the inventory.
func (h *Hero) EquipAt(index int) (item.Item, error) {
	if index < 0 || index >= len(h.Inventory) {
		return item.Item{}, fmt.Errorf("equip %d of %d: %w", index, len(h.Inventory), item.ErrIndexOutOfRange)
	}
	it := h.Inventory[index]
	h.Equip(it)
	return it, nil
}

// Unequip empties a slot and recomputes stats.
func (h *Hero) Unequip(t item.Type) {
	delete(h.Equipment, t)
	h.recompute()
}

// Sell removes the inventory item at index and credits its sell price.
// Remaining items keep their order. Selling does not touch equipment.
func (h *Hero) Sell(index int, tables *item.Tables) (item.Item, int, error) {
	if index < 0 || index >= len(h.Inventory) {
		return item.Item{}, 0, fmt.Errorf("sell %d of %d: %w", index, len(h.Inventory), item.ErrIndexOutOfRange)
	}
	it := h.Inventory[index]
	h.Inventory = append(h.Inventory[:index:index], h.Inventory[index+1:]...)
	price := tables.SellPrice(it)
	h.Money += price
	return it, price, nil
}

// IsEquipped returns true if the given item occupies its slot.
func (h *Hero) IsEquipped(it item.Item) bool {
	equipped, ok := h.Equipment[it.Type]
	return ok && equipped.ID == it.ID
}

// EquippedItems returns equipped items in slot order.
func (h *Hero) EquippedItems() []item.Item {
	items := make([]item.Item, 0, len(h.Equipment))
	for _, t := range item.Types {
		if it, ok := h.Equipment[t]; ok {
			items = append(items, it)
		}
	}
	return items
}

// Stats returns the hero's current derived stats.
func (h *Hero) Stats() Stats {
	return Stats{Strength: h.Strength, Defense: h.Defense, Speed: h.Speed}
}

// PreviewEquip returns the stats the hero would have with the item in its
// slot instead of whatever is there now.
func (h *Hero) PreviewEquip(it item.Item) Stats {
	total := item.Bonus{}
	for t, equipped := range h.Equipment {
		if t != it.Type {
			total = total.Add(equipped.Bonus)
		}
	}
	return statsFrom(total.Add(it.Bonus))
}

// recompute derives stats from base plus the sum of equipped bonuses.
// Stats are never adjusted incrementally.
func (h *Hero) recompute() {
	total := item.Bonus{}
	for _, it := range h.Equipment {
		total = total.Add(it.Bonus)
	}
	s := statsFrom(total)
	h.Strength = s.Strength
	h.Defense = s.Defense
	h.Speed = s.Speed
}

func statsFrom(bonus item.Bonus) Stats {
	return Stats{
		Strength: baseStrength + bonus.Strength,
		Defense:  baseDefense + bonus.Defense,
		Speed:    baseSpeed + bonus.Speed,
	}
}
