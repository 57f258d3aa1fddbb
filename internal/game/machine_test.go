package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonescape/internal/audio"
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/world"
)

func newTestMachine(t *testing.T) (*Machine, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	m, err := NewMachine(Options{
		Content: gamedata.MustLoadContent(),
		Rand:    rand.New(rand.NewSource(7)),
		Audio:   audio.NewDispatcher(rec, true, nil),
	})
	require.NoError(t, err)
	return m, rec
}

// startExploring walks the menus with the keyboard and then empties the
// level so each test can place exactly what it needs.
func startExploring(t *testing.T, m *Machine) *Session {
	t.Helper()
	ctx := context.Background()
	m.HandleInput(ctx, Press(ActionConfirm))
	require.Equal(t, StateDifficultySelection, m.State())
	m.HandleInput(ctx, Press(ActionConfirm))
	require.Equal(t, StateExploration, m.State())

	s := m.Session()
	s.Dungeon.Clear()
	s.Dungeon.Chests = nil
	return s
}

func newEnemyAt(m *Machine, pos grid.Position, hp int) *entity.Enemy {
	return entity.NewEnemy("Enemy", pos, entity.EnemyStats{HP: hp, Strength: 5, Defense: 2, Speed: 1}, m.rng)
}

func testItem(t *testing.T, m *Machine, typ item.Type, level int) item.Item {
	t.Helper()
	return m.items.Build(typ, item.RarityNormal, level)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateMenu, "menu"},
		{StateDifficultySelection, "difficulty_selection"},
		{StateExploration, "exploration"},
		{StateCombat, "combat"},
		{StateGameOver, "game_over"},
		{StateVictory, "victory"},
		{StateInstructions, "instructions"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewMachine(t *testing.T) {
	m, _ := newTestMachine(t)
	s := m.Session()

	assert.Equal(t, StateMenu, s.State)
	assert.Equal(t, gamedata.DefaultDifficulty, s.Difficulty.Name)
	assert.Equal(t, 1.5, s.Difficulty.Multiplier)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, entity.HeroMaxHP, s.Hero.HP)
	assert.Equal(t, NoSelection, s.Inventory.Selected)
	assert.Nil(t, s.Engaged)
}

func TestNewMachineRequiresContent(t *testing.T) {
	_, err := NewMachine(Options{})
	assert.ErrorIs(t, err, gamedata.ErrInvalidContent)
}

func TestMenuButtons(t *testing.T) {
	ctx := context.Background()

	t.Run("instructions and back", func(t *testing.T) {
		m, _ := newTestMachine(t)
		r := MenuButtonRect(ButtonInstructions)
		m.HandleInput(ctx, Click(r.X+1, r.Y))
		assert.Equal(t, StateInstructions, m.State())
		m.HandleInput(ctx, Press(ActionConfirm))
		assert.Equal(t, StateMenu, m.State())
	})

	t.Run("sound toggle", func(t *testing.T) {
		m, rec := newTestMachine(t)
		r := MenuButtonRect(ButtonSound)
		m.HandleInput(ctx, Click(r.X, r.Y))
		assert.False(t, m.Audio().Enabled())
		assert.Equal(t, []audio.Intent{audio.IntentStopMusic}, rec.Intents)

		m.HandleInput(ctx, Click(r.X, r.Y))
		assert.True(t, m.Audio().Enabled())
		last, _ := rec.Last()
		assert.Equal(t, audio.IntentBackgroundMusic, last)
		assert.Equal(t, StateMenu, m.State())
	})

	t.Run("keyboard cursor wraps", func(t *testing.T) {
		m, _ := newTestMachine(t)
		m.HandleInput(ctx, Press(ActionMoveUp))
		assert.Equal(t, int(ButtonInstructions), m.Session().MenuCursor)
		m.HandleInput(ctx, Press(ActionMoveDown))
		m.HandleInput(ctx, Press(ActionMoveDown))
		m.HandleInput(ctx, Press(ActionMoveDown))
		m.HandleInput(ctx, Press(ActionConfirm))
		assert.True(t, m.Session().Quit)
	})

	t.Run("click outside buttons", func(t *testing.T) {
		m, _ := newTestMachine(t)
		m.HandleInput(ctx, Click(0, 0))
		assert.Equal(t, StateMenu, m.State())
		assert.False(t, m.Session().Quit)
	})
}

func TestDifficultySelection(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	start := MenuButtonRect(ButtonStart)
	m.HandleInput(ctx, Click(start.X, start.Y))
	require.Equal(t, StateDifficultySelection, m.State())

	hard := DifficultyButtonRect(2)
	m.HandleInput(ctx, Click(hard.X, hard.Y))
	assert.Equal(t, StateDifficultySelection, m.State())
	assert.Equal(t, "Hard", m.Session().Difficulty.Name)

	n := len(m.Content().Difficulties())
	startBtn := StartButtonRect(n)
	m.HandleInput(ctx, Click(startBtn.X, startBtn.Y))
	require.Equal(t, StateExploration, m.State())

	s := m.Session()
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, entity.StartPosition, s.Hero.Pos)
	assert.NotEmpty(t, s.Dungeon.Enemies)
	assert.LessOrEqual(t, len(s.Dungeon.Enemies), 3)
	for _, e := range s.Dungeon.Enemies {
		// floor((30+5) * 3.0) and floor((5+2) * 3.0)
		assert.Equal(t, 105, e.HP)
		assert.Equal(t, 21, e.Strength)
	}
}

func TestMovementAndStepSound(t *testing.T) {
	ctx := context.Background()
	m, rec := newTestMachine(t)
	s := startExploring(t, m)
	rec.Reset()

	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.Equal(t, grid.Position{X: 2, Y: 1}, s.Hero.Pos)
	assert.Equal(t, []audio.Intent{audio.IntentStep}, rec.Intents)

	s.Hero.Pos = grid.Position{X: 0, Y: 0}
	m.HandleInput(ctx, Press(ActionMoveUp))
	m.HandleInput(ctx, Press(ActionMoveLeft))
	assert.Equal(t, grid.Position{X: 0, Y: 0}, s.Hero.Pos)
	assert.Len(t, rec.Intents, 1, "blocked moves make no sound")
}

func TestMovementOpensChest(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)

	loot := []item.Item{testItem(t, m, item.TypeSword, 3), testItem(t, m, item.TypeRing, 3)}
	s.Dungeon.Chests = []*world.Chest{{Pos: grid.Position{X: 2, Y: 1}, Items: loot}}

	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.True(t, s.Dungeon.Chests[0].Opened)
	assert.Equal(t, loot, s.Hero.Inventory)

	m.HandleInput(ctx, Press(ActionMoveLeft))
	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.Len(t, s.Hero.Inventory, 2, "an opened chest never yields twice")
}

func TestHealing(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)
	zone := world.DefaultHealingZones[0]

	s.Hero.HP = 50
	s.Hero.Pos = grid.Position{X: zone.X - 1, Y: zone.Y}
	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.Equal(t, 65, s.Hero.HP)

	m.Update(ctx)
	assert.Equal(t, 66, s.Hero.HP)

	s.Hero.HP = entity.HeroMaxHP - 1
	m.Update(ctx)
	m.Update(ctx)
	assert.Equal(t, entity.HeroMaxHP, s.Hero.HP)
}

func TestUpdateOnlyActsWhileExploring(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := m.Session()
	s.Hero.HP = 40
	s.Hero.Pos = world.DefaultHealingZones[0]

	m.Update(ctx)
	assert.Equal(t, 40, s.Hero.HP)
	assert.Equal(t, 1, s.Frame)
}

func TestCollisionEngagesFirstEnemy(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)

	target := grid.Position{X: 2, Y: 1}
	first := newEnemyAt(m, target, 40)
	second := newEnemyAt(m, target, 40)
	s.Dungeon.Enemies = []*entity.Enemy{first, second}

	m.HandleInput(ctx, Press(ActionToggleInventory))
	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.Equal(t, entity.StartPosition, s.Hero.Pos, "movement is ignored while the inventory is open")

	m.HandleInput(ctx, Press(ActionToggleInventory))
	m.HandleInput(ctx, Press(ActionMoveRight))
	require.Equal(t, StateCombat, m.State())
	assert.Same(t, first, s.Engaged)

	m.HandleInput(ctx, Press(ActionMoveRight))
	assert.Equal(t, target, s.Hero.Pos, "movement is ignored in combat")
}

func TestCollisionOnTick(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)

	// Cornered and facing the wall, the enemy cannot wander off this tick.
	s.Hero.Pos = grid.Position{X: 0, Y: 0}
	e := newEnemyAt(m, s.Hero.Pos, 40)
	e.Direction = grid.Up
	s.Dungeon.Enemies = []*entity.Enemy{e}
	m.Update(ctx)
	assert.Equal(t, StateCombat, m.State())
	assert.Same(t, e, s.Engaged)
}

func TestKillingLastEnemyAdvancesLevel(t *testing.T) {
	ctx := context.Background()
	m, rec := newTestMachine(t)
	s := startExploring(t, m)

	e := newEnemyAt(m, grid.Position{X: 2, Y: 1}, 1)
	s.Dungeon.Enemies = []*entity.Enemy{e}
	m.HandleInput(ctx, Press(ActionMoveRight))
	require.Equal(t, StateCombat, m.State())
	rec.Reset()

	m.HandleInput(ctx, Press(ActionAttack))
	assert.Equal(t, StateExploration, m.State())
	assert.Nil(t, s.Engaged)
	assert.Equal(t, ExpPerKill, s.Hero.Exp)
	assert.Len(t, s.Hero.Inventory, 1, "every kill drops one item")
	assert.Zero(t, s.Log.Len())

	assert.Equal(t, 2, s.Level())
	assert.Equal(t, entity.StartPosition, s.Hero.Pos)
	assert.NotEmpty(t, s.Dungeon.Enemies)
	assert.Len(t, s.Dungeon.Chests, 3)
	assert.Equal(t, []audio.Intent{audio.IntentBackgroundMusic}, rec.Intents)
}

func TestKillWithEnemiesLeftStaysOnLevel(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)

	e := newEnemyAt(m, grid.Position{X: 2, Y: 1}, 1)
	other := newEnemyAt(m, grid.Position{X: 10, Y: 10}, 40)
	s.Dungeon.Enemies = []*entity.Enemy{e, other}
	m.HandleInput(ctx, Press(ActionMoveRight))
	m.HandleInput(ctx, Press(ActionAttack))

	assert.Equal(t, StateExploration, m.State())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, []*entity.Enemy{other}, s.Dungeon.Enemies)
}

func TestAdvancingToBossLevelPlaysBossMusic(t *testing.T) {
	ctx := context.Background()
	m, rec := newTestMachine(t)
	s := startExploring(t, m)
	s.Dungeon.Level = world.MaxLevels - 1

	s.Dungeon.Enemies = []*entity.Enemy{newEnemyAt(m, grid.Position{X: 2, Y: 1}, 1)}
	m.HandleInput(ctx, Press(ActionMoveRight))
	rec.Reset()
	m.HandleInput(ctx, Press(ActionAttack))

	assert.Equal(t, world.MaxLevels, s.Level())
	require.NotNil(t, s.Dungeon.Boss)
	assert.Equal(t, []*entity.Enemy{s.Dungeon.Boss}, s.Dungeon.Enemies)
	assert.Equal(t, []audio.Intent{audio.IntentBossMusic}, rec.Intents)
}

func TestKillingBossIsVictory(t *testing.T) {
	ctx := context.Background()
	m, rec := newTestMachine(t)
	s := startExploring(t, m)
	s.Dungeon.Level = world.MaxLevels

	boss := newEnemyAt(m, grid.Position{X: 2, Y: 1}, 1)
	boss.PromoteToBoss()
	minion := newEnemyAt(m, grid.Position{X: 9, Y: 9}, 20)
	s.Dungeon.Enemies = []*entity.Enemy{boss, minion}
	s.Dungeon.Boss = boss

	m.HandleInput(ctx, Press(ActionMoveRight))
	require.Same(t, boss, s.Engaged)
	rec.Reset()
	for i := 0; i < 10 && m.State() == StateCombat; i++ {
		s.Hero.HP = entity.HeroMaxHP
		m.HandleInput(ctx, Press(ActionAttack))
	}

	require.Equal(t, StateVictory, m.State())
	assert.Empty(t, s.Dungeon.Enemies)
	assert.Nil(t, s.Dungeon.Boss)
	assert.Contains(t, rec.Intents, audio.IntentVictoryMusic)

	m.HandleInput(ctx, Press(ActionConfirm))
	assert.Equal(t, StateMenu, m.State())
	last, _ := rec.Last()
	assert.Equal(t, audio.IntentBackgroundMusic, last)
	assert.Equal(t, 1, s.Level())
	assert.Empty(t, s.Hero.Inventory)
	assert.Zero(t, s.Hero.Exp)
}

func TestHeroDefeatIsGameOver(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)

	e := newEnemyAt(m, grid.Position{X: 2, Y: 1}, 10000)
	s.Dungeon.Enemies = []*entity.Enemy{e}
	m.HandleInput(ctx, Press(ActionMoveRight))
	s.Hero.HP = 1
	s.Hero.Money = 30

	m.HandleInput(ctx, Press(ActionAttack))
	require.Equal(t, StateGameOver, m.State())
	assert.Zero(t, s.Hero.HP)
	assert.Nil(t, s.Engaged)
	assert.Equal(t, 2, s.Log.Len())

	m.HandleInput(ctx, Press(ActionAttack))
	m.HandleInput(ctx, Press(ActionConfirm))
	m.Update(ctx)
	assert.Equal(t, StateGameOver, m.State(), "game over ignores input")

	m.Restart(ctx)
	assert.Equal(t, StateMenu, m.State())
	assert.Equal(t, entity.HeroMaxHP, s.Hero.HP)
	assert.Equal(t, 30, s.Hero.Money, "money survives a restart")
	assert.Zero(t, s.Log.Len())
}

func TestSummonDuringBossFightRespectsCap(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)
	s := startExploring(t, m)
	s.Dungeon.Level = world.MaxLevels

	boss := newEnemyAt(m, grid.Position{X: 15, Y: 10}, 100)
	boss.PromoteToBoss()
	s.Dungeon.Enemies = []*entity.Enemy{boss}
	s.Dungeon.Boss = boss
	s.Hero.Pos = grid.Position{X: 0, Y: 14}

	for i := 0; i < 60 && m.State() == StateExploration; i++ {
		s.Hero.Pos = grid.Position{X: 0, Y: 14}
		m.Update(ctx)
		assert.LessOrEqual(t, len(s.Dungeon.Enemies), world.SummonCap)
	}
}
