// Package combat provides the turn-based damage exchange between the hero
// and a single engaged enemy.
package combat

import (
	"fmt"
	"math/rand"
)

const (
	// Enemy counter-hits roll uniformly in [EnemyRollMin, EnemyRollMax]
	// before the hero's defense is subtracted.
	EnemyRollMin = 3
	EnemyRollMax = 30

	// MinEnemyDamage is the floor applied after defense.
	MinEnemyDamage = 1
)

// Combatant is the interface for any entity that can take part in an exchange.
// Both the hero and enemies implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetStrength() int
	GetDefense() int
	TakeDamage(amount int) int // Returns actual damage taken
}

// ExchangeResult contains the outcome of one attack action.
type ExchangeResult struct {
	HeroDamage    int      // Damage rolled by the hero against the enemy
	EnemyDamage   int      // Counter-hit damage; zero when the enemy died
	EnemyDefeated bool     // Enemy HP reached zero
	HeroDefeated  bool     // Hero HP reached zero from the counter-hit
	Messages      []string // Log lines, one per damage event
}

// Countered returns true if the enemy survived and struck back.
func (r ExchangeResult) Countered() bool {
	return !r.EnemyDefeated
}

// Resolver rolls and applies damage.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from the given random source.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Exchange resolves a full attack action: the hero hits, and only if the
// enemy survives does the enemy hit back. A kill is never countered.
func (r *Resolver) Exchange(hero, enemy Combatant) ExchangeResult {
	var result ExchangeResult

	result.HeroDamage = r.RollHeroDamage(hero.GetStrength())
	enemy.TakeDamage(result.HeroDamage)
	result.Messages = append(result.Messages,
		fmt.Sprintf("%s dealt %d damage to %s!", hero.GetName(), result.HeroDamage, enemy.GetName()))

	if !enemy.IsAlive() {
		result.EnemyDefeated = true
		return result
	}

	result.EnemyDamage = r.RollEnemyDamage(hero.GetDefense())
	hero.TakeDamage(result.EnemyDamage)
	result.Messages = append(result.Messages,
		fmt.Sprintf("%s dealt %d damage to %s!", enemy.GetName(), result.EnemyDamage, hero.GetName()))

	result.HeroDefeated = !hero.IsAlive()
	return result
}

// RollHeroDamage returns a uniform integer in [strength/2, strength].
func (r *Resolver) RollHeroDamage(strength int) int {
	if strength <= 0 {
		return 0
	}
	low := strength / 2
	return low + r.rng.Intn(strength-low+1)
}

// RollEnemyDamage returns max(1, roll(3,30) - defense/2).
func (r *Resolver) RollEnemyDamage(defense int) int {
	roll := EnemyRollMin + r.rng.Intn(EnemyRollMax-EnemyRollMin+1)
	return max(MinEnemyDamage, roll-defense/2)
}
