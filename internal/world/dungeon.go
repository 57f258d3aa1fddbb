package world

import (
	"context"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/grid"
	"github.com/samdwyer/dungeonescape/internal/item"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
)

const (
	// MaxLevels is the boss level. Reaching it spawns the boss encounter.
	MaxLevels = 3

	// SummonCap is the enemy count at which the boss stops summoning.
	SummonCap = 6

	// Normal encounters spawn between minEnemies and maxEnemies enemies.
	minEnemies = 1
	maxEnemies = 3
)

// DefaultHealingZones are the fixed healing tiles present on every level.
var DefaultHealingZones = []grid.Position{{X: 5, Y: 2}, {X: 8, Y: 6}}

// Dungeon manages the current level: its enemies, boss, chests and healing zones.
type Dungeon struct {
	Bounds       grid.Bounds
	Level        int
	Enemies      []*entity.Enemy
	Boss         *entity.Enemy
	Chests       []*Chest
	HealingZones []grid.Position

	rng    *rand.Rand
	items  *item.Generator
	logger *slog.Logger
}

// NewDungeon creates an empty dungeon at level 1.
func NewDungeon(bounds grid.Bounds, rng *rand.Rand, items *item.Generator, logger *slog.Logger) *Dungeon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dungeon{
		Bounds:       bounds,
		Level:        1,
		HealingZones: DefaultHealingZones,
		rng:          rng,
		items:        items,
		logger:       logger,
	}
}

// Begin starts a fresh run at level 1 with a normal encounter.
func (d *Dungeon) Begin(ctx context.Context, multiplier float64, hero *entity.Hero) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.begin")
	defer span.End()

	d.Level = 1
	d.Enemies, d.Boss = d.SpawnEnemies(d.Level, multiplier, false)
	d.StartLevel(hero)

	span.SetAttributes(
		attribute.Float64("difficulty.multiplier", multiplier),
		attribute.Int("enemy_count", len(d.Enemies)),
	)
}

// SpawnEnemies creates the encounter for a level. Normal levels get 1-3
// enemies; the boss level gets a single promoted boss, which is also returned.
func (d *Dungeon) SpawnEnemies(level int, multiplier float64, bossLevel bool) ([]*entity.Enemy, *entity.Enemy) {
	quantity := 1
	if !bossLevel {
		quantity = minEnemies + d.rng.Intn(maxEnemies-minEnemies+1)
	}

	stats := entity.EnemyStats{
		HP:       scale(30+level*5, multiplier),
		Strength: scale(5+level*2, multiplier),
		Defense:  2,
		Speed:    1,
	}

	enemies := make([]*entity.Enemy, 0, quantity)
	for i := 0; i < quantity; i++ {
		enemies = append(enemies, entity.NewEnemy("Enemy", d.Bounds.RandomInterior(d.rng), stats, d.rng))
	}

	if !bossLevel {
		return enemies, nil
	}
	boss := enemies[0]
	boss.PromoteToBoss()
	return enemies, boss
}

// StartLevel puts the hero back at the start tile and regenerates the chests.
func (d *Dungeon) StartLevel(hero *entity.Hero) {
	hero.Pos = entity.StartPosition
	d.Chests = GenerateChests(d.Bounds, d.items, d.rng, d.Level)
}

// AdvanceLevel moves to the next level, spawning the boss encounter when the
// new level is MaxLevels. It is a no-op once MaxLevels has been reached.
func (d *Dungeon) AdvanceLevel(ctx context.Context, multiplier float64, hero *entity.Hero) bool {
	if d.Level >= MaxLevels {
		return false
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.advance")
	defer span.End()

	d.Level++
	d.Enemies, d.Boss = d.SpawnEnemies(d.Level, multiplier, d.IsBossLevel())
	d.StartLevel(hero)

	span.SetAttributes(
		attribute.Int("level", d.Level),
		attribute.Bool("boss_level", d.IsBossLevel()),
		attribute.Int("enemy_count", len(d.Enemies)),
	)
	d.logger.Info("level advanced", "level", d.Level, "boss", d.IsBossLevel(), "enemies", len(d.Enemies))
	return true
}

// IsBossLevel returns true on the final level.
func (d *Dungeon) IsBossLevel() bool {
	return d.Level == MaxLevels
}

// IsCleared returns true when no enemies remain, or when the only one left
// is the boss.
func (d *Dungeon) IsCleared() bool {
	switch len(d.Enemies) {
	case 0:
		return true
	case 1:
		return d.Enemies[0].IsBoss
	default:
		return false
	}
}

// RemoveEnemy drops an enemy from the active set.
func (d *Dungeon) RemoveEnemy(e *entity.Enemy) {
	for i, existing := range d.Enemies {
		if existing == e {
			d.Enemies = append(d.Enemies[:i], d.Enemies[i+1:]...)
			break
		}
	}
	if d.Boss == e {
		d.Boss = nil
	}
}

// Clear removes every enemy, including the boss.
func (d *Dungeon) Clear() {
	d.Enemies = nil
	d.Boss = nil
}

// Reset returns the dungeon to level 1 with no encounter.
func (d *Dungeon) Reset() {
	d.Clear()
	d.Level = 1
	d.Chests = nil
}

// SummonTick advances the boss summon cooldown. When it fires and fewer than
// SummonCap enemies are alive, a minion scaled by multiplier is spawned and
// returned. The cooldown is consumed either way.
func (d *Dungeon) SummonTick(ctx context.Context, multiplier float64) *entity.Enemy {
	if d.Boss == nil || !d.Boss.TickSummon() {
		return nil
	}
	if len(d.Enemies) >= SummonCap {
		return nil
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "boss.summon")
	defer span.End()

	minion := entity.NewEnemy("Minion", d.Bounds.RandomInterior(d.rng), entity.EnemyStats{
		HP:       scale(20, multiplier),
		Strength: scale(5, multiplier),
		Defense:  1,
		Speed:    1,
	}, d.rng)
	d.Enemies = append(d.Enemies, minion)

	span.SetAttributes(attribute.Int("enemy_count", len(d.Enemies)))
	d.logger.Debug("boss summoned minion", "x", minion.Pos.X, "y", minion.Pos.Y, "enemies", len(d.Enemies))
	return minion
}

// WanderEnemies gives every enemy its per-tick chance to step.
func (d *Dungeon) WanderEnemies() {
	for _, e := range d.Enemies {
		e.ClearMoved()
		e.Wander(d.rng, d.Bounds)
	}
}

// EnemyAt returns the first enemy, in spawn order, standing on pos.
func (d *Dungeon) EnemyAt(pos grid.Position) *entity.Enemy {
	for _, e := range d.Enemies {
		if e.Pos == pos {
			return e
		}
	}
	return nil
}

// OpenChests opens every unopened chest on the hero's tile and moves its
// items into the inventory. Returns the chests opened.
func (d *Dungeon) OpenChests(ctx context.Context, hero *entity.Hero) []*Chest {
	var opened []*Chest
	for _, c := range d.Chests {
		if c.Opened || c.Pos != hero.Pos {
			continue
		}
		c.Opened = true
		hero.AddItems(c.Items...)
		opened = append(opened, c)

		tracer := telemetry.Tracer("world")
		_, span := tracer.Start(ctx, "chest.open")
		span.SetAttributes(
			attribute.Int("items", len(c.Items)),
			attribute.Int("level", d.Level),
		)
		span.End()
		d.logger.Info("chest opened", "items", len(c.Items))
	}
	return opened
}

// IsHealingZone returns true if pos is a healing tile.
func (d *Dungeon) IsHealingZone(pos grid.Position) bool {
	for _, z := range d.HealingZones {
		if z == pos {
			return true
		}
	}
	return false
}

// TileAt returns the tile shown at pos, ignoring characters.
func (d *Dungeon) TileAt(pos grid.Position) Tile {
	tile := TileFloor
	for _, c := range d.Chests {
		if c.Pos != pos {
			continue
		}
		if !c.Opened {
			return TileChest
		}
		tile = TileChestOpen
	}
	if tile != TileFloor {
		return tile
	}
	if d.IsHealingZone(pos) {
		return TileHealing
	}
	return TileFloor
}

// scale returns floor(base * multiplier).
func scale(base int, multiplier float64) int {
	return int(float64(base) * multiplier)
}
