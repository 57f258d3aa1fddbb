package ui

import (
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/world"
)

const fakeWidth, fakeHeight = 80, 24

// fakeScreen records drawn runes in a grid.
type fakeScreen struct {
	cells [fakeHeight][fakeWidth]rune
	shown int
}

func (f *fakeScreen) Clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = ' '
		}
	}
}

func (f *fakeScreen) Show() { f.shown++ }

func (f *fakeScreen) SetContent(x, y int, r rune, _ tcell.Style) {
	if x >= 0 && x < fakeWidth && y >= 0 && y < fakeHeight {
		f.cells[y][x] = r
	}
}

func (f *fakeScreen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		f.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func (f *fakeScreen) DrawCentered(y int, text string, style tcell.Style) {
	f.DrawText((fakeWidth-len([]rune(text)))/2, y, text, style)
}

func (f *fakeScreen) Size() (int, int) { return fakeWidth, fakeHeight }

func (f *fakeScreen) text() string {
	var b strings.Builder
	for _, row := range f.cells {
		b.WriteString(string(row[:]))
		b.WriteByte('\n')
	}
	return b.String()
}

func (f *fakeScreen) at(x, y int) rune { return f.cells[y][x] }

func newTestWorld(t *testing.T) (*entity.Hero, *world.Dungeon, *item.Generator) {
	t.Helper()
	tables, err := item.NewTables(gamedata.MustLoadContent())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	gen := item.NewGenerator(tables, rng)
	d := world.NewDungeon(grid.DefaultBounds(), rng, gen, slog.Default())
	return entity.NewHero(), d, gen
}

func TestRenderMenu(t *testing.T) {
	screen := &fakeScreen{}
	r := NewRenderer(screen)
	r.Render(View{
		Mode:    ModeMenu,
		Buttons: []Button{{Label: "START", X: 32, Y: 8, W: 16, Selected: true}},
	})

	assert.Equal(t, 1, screen.shown)
	assert.Contains(t, screen.text(), "DUNGEON ESCAPE")
	assert.Equal(t, 'S', screen.at(32+5, 8), "labels are centered in the button")
}

func TestRenderExploration(t *testing.T) {
	hero, d, gen := newTestWorld(t)
	boss := entity.NewEnemy("Enemy", grid.Position{X: 4, Y: 4}, entity.EnemyStats{HP: 10, Strength: 1}, rand.New(rand.NewSource(1)))
	boss.PromoteToBoss()
	d.Level = world.MaxLevels
	d.Enemies = []*entity.Enemy{boss}
	d.Boss = boss
	d.Chests = []*world.Chest{{Pos: grid.Position{X: 3, Y: 0}, Items: []item.Item{gen.Build(item.TypeRing, item.RarityLegendary, 3)}}}

	screen := &fakeScreen{}
	NewRenderer(screen).Render(View{Mode: ModeExploration, Hero: hero, Dungeon: d, Difficulty: "Normal"})

	assert.Equal(t, '@', screen.at(entity.StartPosition.X*cellWidth, entity.StartPosition.Y))
	assert.Equal(t, 'B', screen.at(4*cellWidth, 4))
	assert.Equal(t, 'C', screen.at(3*cellWidth, 0))
	zone := world.DefaultHealingZones[0]
	assert.Equal(t, '+', screen.at(zone.X*cellWidth, zone.Y))

	out := screen.text()
	assert.Contains(t, out, "HP 100/100")
	assert.Contains(t, out, "Exploration  Level 3/3")
	assert.Contains(t, out, "DEFEAT THE BOSS!")
	assert.NotContains(t, out, "INVENTORY")
}

func TestRenderInventoryOverlay(t *testing.T) {
	hero, d, gen := newTestWorld(t)
	sword := gen.Build(item.TypeSword, item.RarityRare, 2)
	ring := gen.Build(item.TypeRing, item.RarityNormal, 1)
	hero.AddItems(sword, ring)
	hero.Equip(ring)

	screen := &fakeScreen{}
	NewRenderer(screen).Render(View{
		Mode:      ModeExploration,
		Hero:      hero,
		Dungeon:   d,
		Tables:    gen.Tables(),
		Inventory: &InventoryView{Selected: 0, PageSize: 5},
	})

	out := screen.text()
	assert.Contains(t, out, "> Sword Rare Lv2 40g")
	assert.Contains(t, out, "Ring Normal Lv1 [E]")
	assert.Contains(t, out, "STR 11 -> 17 (+6)")
}

func TestRenderCombatWrapsLog(t *testing.T) {
	hero, _, _ := newTestWorld(t)
	enemy := entity.NewEnemy("Enemy", grid.Position{}, entity.EnemyStats{HP: 12}, rand.New(rand.NewSource(1)))

	screen := &fakeScreen{}
	NewRenderer(screen).Render(View{
		Mode:  ModeCombat,
		Hero:  hero,
		Enemy: enemy,
		Log:   []string{"Hero dealt 7 damage to Enemy!", "Enemy dealt 12 damage to Hero! The blow lands hard."},
	})

	out := screen.text()
	assert.Contains(t, out, "TURN-BASED COMBAT!")
	assert.Contains(t, out, "ENEMY HP: 12")
	assert.Contains(t, out, "Hero dealt 7 damage to Enemy!")
	for _, row := range strings.Split(out, "\n") {
		if len(row) > panelX {
			assert.LessOrEqual(t, len(strings.TrimRight(row[panelX:], " ")), panelWidth)
		}
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "exploration", ModeExploration.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
