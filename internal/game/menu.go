package game

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the cell lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MenuButton identifies an entry on the title screen.
type MenuButton int

const (
	ButtonStart MenuButton = iota
	ButtonSound
	ButtonQuit
	ButtonInstructions
)

// MenuButtons lists the title screen entries top to bottom.
var MenuButtons = []MenuButton{ButtonStart, ButtonSound, ButtonQuit, ButtonInstructions}

// Label returns the button caption. The sound caption reflects the toggle.
func (b MenuButton) Label(soundEnabled bool) string {
	switch b {
	case ButtonStart:
		return "START"
	case ButtonSound:
		if soundEnabled {
			return "SOUND ON"
		}
		return "SOUND OFF"
	case ButtonQuit:
		return "QUIT"
	case ButtonInstructions:
		return "INSTRUCTIONS"
	default:
		return "?"
	}
}

// Screen layout shared by hit testing and the renderer.
const (
	buttonX       = 32
	buttonWidth   = 16
	menuTop       = 8
	difficultyTop = 7
	buttonSpacing = 2
)

// MenuButtonRect returns where a title screen button is drawn.
func MenuButtonRect(b MenuButton) Rect {
	return Rect{X: buttonX, Y: menuTop + int(b)*buttonSpacing, W: buttonWidth, H: 1}
}

// DifficultyButtonRect returns where the i-th difficulty button is drawn.
func DifficultyButtonRect(i int) Rect {
	return Rect{X: buttonX, Y: difficultyTop + i*buttonSpacing, W: buttonWidth, H: 1}
}

// StartButtonRect returns the difficulty screen's start button, placed
// below n difficulty buttons.
func StartButtonRect(n int) Rect {
	return Rect{X: buttonX, Y: difficultyTop + n*buttonSpacing + 1, W: buttonWidth, H: 1}
}

// menuButtonAt returns the title screen button under a cell.
func menuButtonAt(x, y int) (MenuButton, bool) {
	for _, b := range MenuButtons {
		if MenuButtonRect(b).Contains(x, y) {
			return b, true
		}
	}
	return 0, false
}
