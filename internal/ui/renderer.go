package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/world"
)

const (
	// cellWidth is the number of terminal columns per map tile.
	cellWidth = 2

	panelX     = 44
	panelWidth = 34
	hudY       = 16

	instructionsWidth = 70
)

// Instructions is the help text shown from the menu.
const Instructions = "Use the arrow keys to move through the dungeon. Walk into an enemy to " +
	"start a fight, then press SPACE to attack until one of you falls. " +
	"Chests (C) hold legendary gear. Stand on a healing tile (+) to recover HP. " +
	"Press I to open the inventory, W and S to browse, E to equip and D to sell. " +
	"Clear every level and defeat the boss on the last one to escape. " +
	"Press Q or ESC to quit at any time."

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDanger  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHero    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen Drawer
	title  cases.Caser
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen Drawer) *Renderer {
	return &Renderer{
		screen: screen,
		title:  cases.Title(language.English),
	}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	switch v.Mode {
	case ModeMenu:
		r.screen.DrawCentered(4, "DUNGEON ESCAPE", styleTitle)
		r.drawButtons(v.Buttons)
	case ModeInstructions:
		r.renderInstructions()
	case ModeDifficulty:
		r.screen.DrawCentered(3, "SELECT DIFFICULTY", styleTitle)
		r.drawButtons(v.Buttons)
	case ModeExploration:
		r.renderExploration(v)
	case ModeCombat:
		r.renderCombat(v)
	case ModeGameOver:
		r.screen.DrawCentered(8, "GAME OVER", styleDanger)
		r.screen.DrawCentered(11, "Press ENTER to return to the menu or Q to quit", styleDim)
	case ModeVictory:
		r.screen.DrawCentered(8, "CONGRATULATIONS! BOSS DEFEATED!", styleGood.Bold(true))
		r.screen.DrawCentered(11, "PRESS ENTER TO RETURN TO MENU", styleDim)
	}

	r.screen.Show()
}

func (r *Renderer) drawButtons(buttons []Button) {
	for _, b := range buttons {
		style := styleDefault
		if b.Accent {
			style = styleGood
		}
		if b.Selected {
			style = style.Reverse(true)
		}
		label := b.Label
		if pad := b.W - len(label); pad > 0 {
			label = strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
		}
		r.screen.DrawText(b.X, b.Y, label, style)
	}
}

func (r *Renderer) renderInstructions() {
	r.screen.DrawCentered(2, "HOW TO PLAY", styleTitle)
	y := 5
	for _, line := range strings.Split(wordwrap.String(Instructions, instructionsWidth), "\n") {
		r.screen.DrawText(4, y, line, styleDefault)
		y++
	}
	r.screen.DrawText(4, y+1, "Press ENTER to return to the menu.", styleDim)
}

func (r *Renderer) renderExploration(v View) {
	d := v.Dungeon
	for y := 0; y < d.Bounds.Rows; y++ {
		for x := 0; x < d.Bounds.Cols; x++ {
			tile := d.TileAt(grid.Position{X: x, Y: y})
			r.screen.SetContent(x*cellWidth, y, tile.Rune(), tileStyle(tile))
		}
	}

	for _, e := range d.Enemies {
		r.drawEnemy(e, v.Frame)
	}
	r.screen.SetContent(v.Hero.Pos.X*cellWidth, v.Hero.Pos.Y, '@', styleHero)

	r.renderHUD(v)
	if v.Inventory != nil {
		r.renderInventory(v)
	}
}

func (r *Renderer) drawEnemy(e *entity.Enemy, frame int) {
	glyph, style := 'e', styleEnemy
	switch {
	case e.IsBoss:
		glyph, style = 'B', styleBoss
	case e.Name == "Minion":
		glyph = 'm'
	}
	// Walking enemies alternate case while they move.
	if e.Moved && frame%2 == 1 && !e.IsBoss {
		glyph -= 'a' - 'A'
	}
	r.screen.SetContent(e.Pos.X*cellWidth, e.Pos.Y, glyph, style)
}

func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileHealing:
		return tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	case world.TileChest:
		return tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	case world.TileChestOpen:
		return tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

func (r *Renderer) renderHUD(v View) {
	h := v.Hero
	r.screen.DrawText(0, hudY, fmt.Sprintf("HP %d/%d  EXP %d  STR %d  DEF %d  SPD %d  Money %d",
		h.HP, entity.HeroMaxHP, h.Exp, h.Strength, h.Defense, h.Speed, h.Money), styleDefault)

	status := fmt.Sprintf("%s  Level %d/%d  Difficulty %s",
		r.title.String(v.Mode.String()), v.Dungeon.Level, world.MaxLevels, v.Difficulty)
	if v.NowPlaying != "" {
		status += "  Music " + v.NowPlaying
	}
	r.screen.DrawText(0, hudY+1, status, styleDim)

	if v.Dungeon.IsBossLevel() && v.Dungeon.Boss != nil {
		r.screen.DrawText(0, hudY+2, "DEFEAT THE BOSS!", styleDanger)
	}
	r.screen.DrawText(0, hudY+4, "arrows move · i inventory · q quit", styleDim)
}

func (r *Renderer) renderInventory(v View) {
	h, inv := v.Hero, v.Inventory
	y := 0
	r.screen.DrawText(panelX, y, "INVENTORY", styleTitle)
	y++

	if inv.Start > 0 {
		r.screen.DrawText(panelX, y, "  ...", styleDim)
	}
	y++
	if len(h.Inventory) == 0 {
		r.screen.DrawText(panelX, y, "  (empty)", styleDim)
	}
	end := min(inv.Start+inv.PageSize, len(h.Inventory))
	for i := inv.Start; i < end; i++ {
		it := h.Inventory[i]
		style := rarityStyle(it)
		prefix := "  "
		if i == inv.Selected {
			prefix = "> "
			style = style.Reverse(true)
		}
		line := prefix + it.Name
		if h.IsEquipped(it) {
			line += " [E]"
		}
		if v.Tables != nil {
			line += fmt.Sprintf(" %dg", v.Tables.SellPrice(it))
		}
		r.screen.DrawText(panelX, y+i-inv.Start, line, style)
	}
	y += inv.PageSize
	if end < len(h.Inventory) {
		r.screen.DrawText(panelX, y, "  ...", styleDim)
	}
	y += 2

	r.screen.DrawText(panelX, y, "EQUIPPED", styleTitle)
	y++
	for _, it := range h.EquippedItems() {
		r.screen.DrawText(panelX, y, fmt.Sprintf("  %-7s %s", it.Type, it.Name), rarityStyle(it))
		y++
	}

	if inv.Selected >= 0 && inv.Selected < len(h.Inventory) {
		y++
		r.renderPreview(panelX, y, h, h.Inventory[inv.Selected])
	}
	r.screen.DrawText(panelX, hudY+4, "w/s browse · e equip · d sell", styleDim)
}

// renderPreview shows how equipping it would change each stat.
func (r *Renderer) renderPreview(x, y int, h *entity.Hero, it item.Item) {
	current, next := h.Stats(), h.PreviewEquip(it)
	r.screen.DrawText(x, y, "IF EQUIPPED", styleTitle)
	rows := []struct {
		name      string
		cur, next int
	}{
		{"STR", current.Strength, next.Strength},
		{"DEF", current.Defense, next.Defense},
		{"SPD", current.Speed, next.Speed},
	}
	for i, row := range rows {
		delta := row.next - row.cur
		style := styleDim
		switch {
		case delta > 0:
			style = styleGood
		case delta < 0:
			style = styleDanger
		}
		r.screen.DrawText(x, y+1+i, fmt.Sprintf("  %s %d -> %d (%+d)", row.name, row.cur, row.next, delta), style)
	}
}

func rarityStyle(it item.Item) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.ColorOr(it.Color, tcell.ColorWhite))
}

func (r *Renderer) renderCombat(v View) {
	r.screen.DrawCentered(1, "TURN-BASED COMBAT!", styleDanger)

	r.screen.DrawText(4, 5, fmt.Sprintf("HERO HP: %d", v.Hero.HP), styleHero)
	if e := v.Enemy; e != nil {
		style := styleEnemy
		if e.IsBoss {
			style = styleDanger
		}
		r.screen.DrawText(4, 7, fmt.Sprintf("%s HP: %d", strings.ToUpper(e.Name), e.HP), style)
	}

	y := 4
	for _, msg := range v.Log {
		for _, line := range strings.Split(wordwrap.String(msg, panelWidth), "\n") {
			r.screen.DrawText(panelX, y, line, styleDefault)
			y++
		}
	}

	r.screen.DrawCentered(hudY+1, "PRESS SPACE TO ATTACK", styleTitle)
}
