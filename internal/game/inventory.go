package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonescape/internal/telemetry"
)

func (m *Machine) openInventory() {
	s := m.session
	s.Inventory = InventoryOverlay{Visible: true, Selected: NoSelection}
	if len(s.Hero.Inventory) > 0 {
		s.Inventory.Selected = 0
	}
}

func (m *Machine) inventoryUp() {
	inv := &m.session.Inventory
	if inv.Selected <= 0 {
		return
	}
	inv.Selected--
	if inv.Selected < inv.Start {
		inv.Start = inv.Selected
	}
}

func (m *Machine) inventoryDown() {
	inv := &m.session.Inventory
	if inv.Selected == NoSelection || inv.Selected >= len(m.session.Hero.Inventory)-1 {
		return
	}
	inv.Selected++
	if inv.Selected >= inv.Start+InventoryPageSize {
		inv.Start = inv.Selected - InventoryPageSize + 1
	}
}

// equipSelected equips the highlighted item and closes the overlay.
func (m *Machine) equipSelected(ctx context.Context) {
	s := m.session
	if s.Inventory.Selected == NoSelection {
		return
	}
	it, err := s.Hero.EquipAt(s.Inventory.Selected)
	if err != nil {
		m.logger.Warn("equip failed", "index", s.Inventory.Selected, "error", err)
		return
	}

	tracer := telemetry.Tracer("inventory")
	_, span := tracer.Start(ctx, "inventory.equip")
	span.SetAttributes(
		attribute.String("item", it.Name),
		attribute.String("slot", it.Type.String()),
	)
	span.End()

	m.logger.Info("item equipped", "item", it.Name)
	s.closeInventory()
}

// sellSelected sells the highlighted item and keeps the selection and the
// visible window inside the shrunken list.
func (m *Machine) sellSelected(ctx context.Context) {
	s := m.session
	inv := &s.Inventory
	if inv.Selected == NoSelection {
		return
	}
	it, price, err := s.Hero.Sell(inv.Selected, m.items.Tables())
	if err != nil {
		m.logger.Warn("sell failed", "index", inv.Selected, "error", err)
		return
	}

	tracer := telemetry.Tracer("inventory")
	_, span := tracer.Start(ctx, "inventory.sell")
	span.SetAttributes(
		attribute.String("item", it.Name),
		attribute.Int("price", price),
		attribute.Int("money", s.Hero.Money),
	)
	span.End()
	m.logger.Info("item sold", "item", it.Name, "price", price)

	n := len(s.Hero.Inventory)
	if inv.Selected >= n {
		inv.Selected = n - 1 // NoSelection when the list is now empty
	}
	if inv.Start > 0 && inv.Start+InventoryPageSize > n {
		inv.Start = max(0, n-InventoryPageSize)
	}
}
