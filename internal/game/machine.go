package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonescape/internal/audio"
	"github.com/samdwyer/dungeonescape/internal/combat"
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// Options configures a Machine.
type Options struct {
	Content *gamedata.Content
	Rand    *rand.Rand
	Audio   *audio.Dispatcher
	Logger  *slog.Logger
	Bounds  grid.Bounds // Zero value means grid.DefaultBounds()
}

// Machine owns the session and applies inputs and ticks to it.
// It is not safe for concurrent use; the game loop drives it from one goroutine.
type Machine struct {
	session  *Session
	content  *gamedata.Content
	items    *item.Generator
	resolver *combat.Resolver
	audio    *audio.Dispatcher
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewMachine builds a machine sitting on the menu with a fresh hero.
func NewMachine(opts Options) (*Machine, error) {
	if opts.Content == nil {
		return nil, fmt.Errorf("new machine: %w: no content", gamedata.ErrInvalidContent)
	}
	tables, err := item.NewTables(opts.Content)
	if err != nil {
		return nil, fmt.Errorf("new machine: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dispatcher := opts.Audio
	if dispatcher == nil {
		dispatcher = audio.NewDispatcher(nil, false, logger)
	}
	bounds := opts.Bounds
	if bounds == (grid.Bounds{}) {
		bounds = grid.DefaultBounds()
	}

	items := item.NewGenerator(tables, rng)
	m := &Machine{
		content:  opts.Content,
		items:    items,
		resolver: combat.NewResolver(rng),
		audio:    dispatcher,
		rng:      rng,
		logger:   logger,
	}
	m.session = &Session{
		State:   StateMenu,
		Hero:    entity.NewHero(),
		Dungeon: world.NewDungeon(bounds, rng, items, logger),
		Log:     NewCombatLog(CombatLogCapacity),
	}
	m.session.closeInventory()
	m.selectDifficulty(m.defaultDifficultyIndex())
	return m, nil
}

// Session returns the live session. Callers must treat it as read-only.
func (m *Machine) Session() *Session {
	return m.session
}

// State returns the current state.
func (m *Machine) State() State {
	return m.session.State
}

// Content returns the static tables the machine was built from.
func (m *Machine) Content() *gamedata.Content {
	return m.content
}

// Tables returns the item tables used for scaling and prices.
func (m *Machine) Tables() *item.Tables {
	return m.items.Tables()
}

// Audio returns the dispatcher receiving sound intents.
func (m *Machine) Audio() *audio.Dispatcher {
	return m.audio
}

// HandleInput applies one input event to the current state.
func (m *Machine) HandleInput(ctx context.Context, ev Event) {
	s := m.session
	if ev.Action == ActionQuit {
		s.Quit = true
		return
	}

	switch s.State {
	case StateMenu:
		m.handleMenu(ctx, ev)
	case StateInstructions:
		if ev.Action == ActionConfirm || ev.Action == ActionClick {
			m.transition(ctx, StateMenu)
		}
	case StateDifficultySelection:
		m.handleDifficulty(ctx, ev)
	case StateExploration:
		m.handleExploration(ctx, ev)
	case StateCombat:
		if ev.Action == ActionAttack {
			m.attack(ctx)
		}
	case StateVictory:
		if ev.Action == ActionConfirm {
			m.Restart(ctx)
		}
	case StateGameOver:
		// Terminal. The game loop decides whether to call Restart.
	}
}

// Update advances one tick. Only exploration reacts to time.
func (m *Machine) Update(ctx context.Context) {
	s := m.session
	s.Frame++
	if s.State != StateExploration {
		return
	}

	s.Hero.ClearMoved()
	if s.Dungeon.IsHealingZone(s.Hero.Pos) {
		s.Hero.Heal(healPerTick)
	}
	s.Dungeon.WanderEnemies()
	s.Dungeon.SummonTick(ctx, s.Difficulty.Multiplier)
	m.checkCollision(ctx)
}

// Restart returns to the menu with a fresh hero and an empty level 1.
// Money survives; everything else about the run is discarded.
func (m *Machine) Restart(ctx context.Context) {
	s := m.session
	if s.State == StateVictory {
		m.audio.Dispatch(audio.IntentBackgroundMusic)
	}
	s.Hero.Reset()
	s.Hero.Pos = entity.StartPosition
	s.Dungeon.Reset()
	s.Engaged = nil
	s.Log.Clear()
	s.closeInventory()
	m.transition(ctx, StateMenu)
}

func (m *Machine) handleMenu(ctx context.Context, ev Event) {
	s := m.session
	switch ev.Action {
	case ActionMoveUp:
		s.MenuCursor = (s.MenuCursor + len(MenuButtons) - 1) % len(MenuButtons)
	case ActionMoveDown:
		s.MenuCursor = (s.MenuCursor + 1) % len(MenuButtons)
	case ActionConfirm:
		m.pressMenuButton(ctx, MenuButtons[s.MenuCursor])
	case ActionClick:
		if b, ok := menuButtonAt(ev.X, ev.Y); ok {
			s.MenuCursor = int(b)
			m.pressMenuButton(ctx, b)
		}
	}
}

func (m *Machine) pressMenuButton(ctx context.Context, b MenuButton) {
	switch b {
	case ButtonStart:
		m.transition(ctx, StateDifficultySelection)
	case ButtonSound:
		enabled := m.audio.Toggle()
		m.logger.Info("sound toggled", "enabled", enabled)
	case ButtonQuit:
		m.session.Quit = true
	case ButtonInstructions:
		m.transition(ctx, StateInstructions)
	}
}

func (m *Machine) handleDifficulty(ctx context.Context, ev Event) {
	s := m.session
	n := len(m.content.Difficulties())
	switch ev.Action {
	case ActionMoveUp:
		m.selectDifficulty((s.DifficultyCursor + n - 1) % n)
	case ActionMoveDown:
		m.selectDifficulty((s.DifficultyCursor + 1) % n)
	case ActionConfirm:
		m.startRun(ctx)
	case ActionClick:
		for i := 0; i < n; i++ {
			if DifficultyButtonRect(i).Contains(ev.X, ev.Y) {
				m.selectDifficulty(i)
				return
			}
		}
		if StartButtonRect(n).Contains(ev.X, ev.Y) {
			m.startRun(ctx)
		}
	}
}

func (m *Machine) selectDifficulty(i int) {
	s := m.session
	s.DifficultyCursor = i
	s.Difficulty = m.content.Difficulties()[i]
}

func (m *Machine) defaultDifficultyIndex() int {
	for i, d := range m.content.Difficulties() {
		if d.Name == gamedata.DefaultDifficulty {
			return i
		}
	}
	return 0
}

// startRun spawns level 1 at the selected difficulty and begins exploring.
func (m *Machine) startRun(ctx context.Context) {
	s := m.session
	s.Dungeon.Begin(ctx, s.Difficulty.Multiplier, s.Hero)
	s.Engaged = nil
	s.Log.Clear()
	s.closeInventory()
	m.logger.Info("run started",
		"difficulty", s.Difficulty.Name,
		"multiplier", s.Difficulty.Multiplier,
		"enemies", len(s.Dungeon.Enemies),
	)
	m.transition(ctx, StateExploration)
}

// transition switches state and records the change.
func (m *Machine) transition(ctx context.Context, to State) {
	s := m.session
	from := s.State
	if from == to {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "state.transition")
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
		attribute.Int("level", s.Dungeon.Level),
	)
	span.End()

	s.State = to
	m.logger.Debug("state transition", "from", from.String(), "to", to.String())
}
