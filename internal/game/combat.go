package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonescape/internal/audio"
	"github.com/samdwyer/dungeonescape/internal/entity"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
	"github.com/samdwyer/dungeonescape/internal/world"
)

// ExpPerKill is awarded for every defeated enemy.
const ExpPerKill = 10

// engage starts combat against e.
func (m *Machine) engage(ctx context.Context, e *entity.Enemy) {
	s := m.session
	s.Engaged = e
	s.closeInventory()
	m.logger.Info("combat engaged", "enemy", e.Name, "boss", e.IsBoss, "enemy_hp", e.HP)
	m.transition(ctx, StateCombat)
}

// attack plays one exchange against the engaged enemy.
func (m *Machine) attack(ctx context.Context) {
	s := m.session
	e := s.Engaged
	if e == nil {
		return
	}

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	result := m.resolver.Exchange(s.Hero, e)
	for _, msg := range result.Messages {
		s.Log.Add(msg)
	}

	span.SetAttributes(
		attribute.String("enemy", e.Name),
		attribute.Int("hero_damage", result.HeroDamage),
		attribute.Int("enemy_damage", result.EnemyDamage),
		attribute.Int("hero_hp", s.Hero.HP),
		attribute.Int("enemy_hp", e.HP),
	)

	switch {
	case result.EnemyDefeated:
		m.enemyDefeated(ctx, e)
	case result.HeroDefeated:
		m.endCombat(ctx, "defeat", e)
		s.Engaged = nil
		m.logger.Info("hero defeated", "enemy", e.Name, "level", s.Dungeon.Level)
		m.transition(ctx, StateGameOver)
	}
}

// enemyDefeated awards the kill and decides where the run goes next.
func (m *Machine) enemyDefeated(ctx context.Context, e *entity.Enemy) {
	s := m.session
	s.Hero.GainExp(ExpPerKill)
	s.Log.Clear()
	drop := m.items.Generate()
	s.Hero.AddItems(drop)
	s.Engaged = nil
	m.endCombat(ctx, "victory", e)
	m.logger.Info("enemy defeated", "enemy", e.Name, "drop", drop.Name, "exp", s.Hero.Exp)

	if e.IsBoss {
		s.Dungeon.Clear()
		m.audio.Dispatch(audio.IntentVictoryMusic)
		m.transition(ctx, StateVictory)
		return
	}

	s.Dungeon.RemoveEnemy(e)
	s.Dungeon.SummonTick(ctx, s.Difficulty.Multiplier)
	if s.Dungeon.IsCleared() && s.Dungeon.AdvanceLevel(ctx, s.Difficulty.Multiplier, s.Hero) {
		if s.Dungeon.IsBossLevel() {
			m.audio.Dispatch(audio.IntentBossMusic)
		} else {
			m.audio.Dispatch(audio.IntentBackgroundMusic)
		}
	}
	m.transition(ctx, StateExploration)
}

func (m *Machine) endCombat(ctx context.Context, outcome string, e *entity.Enemy) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.String("enemy", e.Name),
		attribute.Bool("boss", e.IsBoss),
		attribute.Int("level", m.session.Dungeon.Level),
		attribute.Bool("boss_level", m.session.Dungeon.Level == world.MaxLevels),
	)
	span.End()
}
