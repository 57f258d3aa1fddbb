package entity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonescape/internal/grid"
)

const (
	// WanderChance is the per-tick probability that an enemy tries to step.
	WanderChance = 0.02

	// SummonInterval is the number of ticks between boss summon attempts.
	SummonInterval = 3
)

// Enemy represents a hostile creature in the dungeon.
type Enemy struct {
	Character
	ID             uuid.UUID
	IsBoss         bool
	CanSummon      bool
	SummonCooldown int
	Direction      grid.Direction // Persistent wander direction
}

// EnemyStats are the combat stats an enemy spawns with.
type EnemyStats struct {
	HP       int
	Strength int
	Defense  int
	Speed    int
}

// NewEnemy creates an enemy at pos with a random wander direction.
// The ID is drawn from rng so seeded sessions are reproducible.
func NewEnemy(name string, pos grid.Position, stats EnemyStats, rng *rand.Rand) *Enemy {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return &Enemy{
		Character: Character{
			Name:     name,
			Pos:      pos,
			HP:       stats.HP,
			Strength: stats.Strength,
			Defense:  stats.Defense,
			Speed:    stats.Speed,
		},
		ID:        id,
		Direction: grid.RandomDirection(rng),
	}
}

// PromoteToBoss turns the enemy into the level boss: hp x5, strength x3,
// and a summon cooldown.
func (e *Enemy) PromoteToBoss() {
	e.Name = "Boss"
	e.IsBoss = true
	e.HP *= 5
	e.Strength *= 3
	e.CanSummon = true
	e.SummonCooldown = SummonInterval
}

// Wander gives the enemy a WanderChance of stepping along its direction.
// A step that would leave the bounds picks a new direction instead and
// the enemy stays put this tick.
func (e *Enemy) Wander(rng *rand.Rand, bounds grid.Bounds) bool {
	if rng.Float64() >= WanderChance {
		return false
	}
	if !bounds.Contains(e.Pos.Add(e.Direction)) {
		e.Direction = grid.RandomDirection(rng)
		return false
	}
	return e.MoveBy(e.Direction, bounds)
}

// TickSummon counts the cooldown down and reports whether a summon is due.
// When due the cooldown is reset, whether or not the caller spawns anything.
func (e *Enemy) TickSummon() bool {
	if !e.CanSummon {
		return false
	}
	e.SummonCooldown--
	if e.SummonCooldown > 0 {
		return false
	}
	e.SummonCooldown = SummonInterval
	return true
}
