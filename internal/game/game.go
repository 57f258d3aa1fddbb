package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonescape/internal/audio"
	"github.com/samdwyer/dungeonescape/internal/config"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
	"github.com/samdwyer/dungeonescape/internal/ui"
)

// Game binds the state machine to a terminal.
type Game struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	player   *audio.TerminalPlayer
	machine  *Machine
	logger   *slog.Logger
}

// New creates a new game instance.
func New(cfg *config.Config, content *gamedata.Content, logger *slog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	player := audio.NewTerminalPlayer(screen)
	machine, err := NewMachine(Options{
		Content: content,
		Rand:    cfg.NewRand(),
		Audio:   audio.NewDispatcher(player, cfg.SoundEnabled, logger),
		Logger:  logger,
	})
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		player:   player,
		machine:  machine,
		logger:   logger,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start")
	span.SetAttributes(
		attribute.Int64("seed", g.cfg.Seed),
		attribute.Bool("sound", g.cfg.SoundEnabled),
		attribute.Int64("tick_ms", g.cfg.TickInterval.Milliseconds()),
	)
	span.End()
	g.logger.Info("game started", "seed", g.cfg.Seed, "tick", g.cfg.TickInterval)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	g.machine.Audio().Dispatch(audio.IntentBackgroundMusic)

	for !g.machine.Session().Quit {
		g.renderer.Render(g.view())

		select {
		case <-ctx.Done():
			g.screen.Close()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				g.screen.Close()
				return nil
			}
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			g.machine.Update(ctx)
		}
	}

	// Cleanup
	g.logger.Info("game stopped", "state", g.machine.State().String(), "level", g.machine.Session().Level())
	g.screen.Close()
	return nil
}

// pollEvents forwards terminal events until the screen is finalized.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			g.machine.HandleInput(ctx, Click(x, y))
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter && g.machine.State() == StateGameOver {
		g.machine.Restart(ctx)
		return
	}
	if a := KeyAction(ev.Key(), ev.Rune()); a != ActionNone {
		g.machine.HandleInput(ctx, Press(a))
	}
}

// KeyAction maps a key press to an action.
func KeyAction(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return ActionQuit
		case 'i', 'I':
			return ActionToggleInventory
		case 'w', 'W':
			return ActionInventoryUp
		case 's', 'S':
			return ActionInventoryDown
		case 'e', 'E':
			return ActionEquip
		case 'd', 'D':
			return ActionSell
		case ' ':
			return ActionAttack
		}
	}
	return ActionNone
}

// view snapshots the session for the renderer.
func (g *Game) view() ui.View {
	return BuildView(g.machine, g.player.NowPlaying())
}

// BuildView converts the machine's session into a renderer snapshot.
func BuildView(m *Machine, nowPlaying string) ui.View {
	s := m.Session()
	v := ui.View{
		Hero:       s.Hero,
		Dungeon:    s.Dungeon,
		Enemy:      s.Engaged,
		Tables:     m.Tables(),
		Difficulty: s.Difficulty.Name,
		Frame:      s.Frame,
	}
	if m.Audio().Enabled() {
		v.NowPlaying = nowPlaying
	}

	switch s.State {
	case StateMenu:
		v.Mode = ui.ModeMenu
		for _, b := range MenuButtons {
			rect := MenuButtonRect(b)
			v.Buttons = append(v.Buttons, ui.Button{
				Label:    b.Label(m.Audio().Enabled()),
				X:        rect.X,
				Y:        rect.Y,
				W:        rect.W,
				Selected: int(b) == s.MenuCursor,
			})
		}
	case StateInstructions:
		v.Mode = ui.ModeInstructions
	case StateDifficultySelection:
		v.Mode = ui.ModeDifficulty
		difficulties := m.Content().Difficulties()
		for i, d := range difficulties {
			rect := DifficultyButtonRect(i)
			v.Buttons = append(v.Buttons, ui.Button{
				Label:    d.Name,
				X:        rect.X,
				Y:        rect.Y,
				W:        rect.W,
				Selected: i == s.DifficultyCursor,
			})
		}
		rect := StartButtonRect(len(difficulties))
		v.Buttons = append(v.Buttons, ui.Button{Label: "START", X: rect.X, Y: rect.Y, W: rect.W, Accent: true})
	case StateExploration:
		v.Mode = ui.ModeExploration
		if s.Inventory.Visible {
			v.Inventory = &ui.InventoryView{
				Selected: s.Inventory.Selected,
				Start:    s.Inventory.Start,
				PageSize: InventoryPageSize,
			}
		}
	case StateCombat:
		v.Mode = ui.ModeCombat
		v.Log = s.Log.Recent(CombatLogWindow)
	case StateGameOver:
		v.Mode = ui.ModeGameOver
	case StateVictory:
		v.Mode = ui.ModeVictory
	}
	return v
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
