package game

import "github.com/samdwyer/dungeonescape/internal/grid"

// Action is a discrete input already decoded from a device event.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleInventory
	ActionInventoryUp
	ActionInventoryDown
	ActionEquip
	ActionSell
	ActionAttack
	ActionConfirm
	ActionClick // Pointer press at (X, Y) in screen cells
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionToggleInventory:
		return "toggle_inventory"
	case ActionInventoryUp:
		return "inventory_up"
	case ActionInventoryDown:
		return "inventory_down"
	case ActionEquip:
		return "equip"
	case ActionSell:
		return "sell"
	case ActionAttack:
		return "attack"
	case ActionConfirm:
		return "confirm"
	case ActionClick:
		return "click"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one input delivered to the state machine.
type Event struct {
	Action Action
	X, Y   int // Only meaningful for ActionClick
}

// Press builds a non-positional event.
func Press(a Action) Event {
	return Event{Action: a}
}

// Click builds a pointer event at the given cell.
func Click(x, y int) Event {
	return Event{Action: ActionClick, X: x, Y: y}
}

// direction returns the grid step for a movement action.
func (a Action) direction() (grid.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return grid.Up, true
	case ActionMoveDown:
		return grid.Down, true
	case ActionMoveLeft:
		return grid.Left, true
	case ActionMoveRight:
		return grid.Right, true
	default:
		return grid.Direction{}, false
	}
}
