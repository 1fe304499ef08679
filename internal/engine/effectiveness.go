package engine

import (
	"math"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// Per-type damage modifiers. Two modifiers against the same type multiply.
const (
	halfDamageModifier   = 0.8
	doubleDamageModifier = 1.25
)

// Effectiveness combines the matchups of the given types into offense and
// defense multipliers. Unknown type keys contribute nothing.
func (e *engine) Effectiveness(typeKeys []string) *godex.Effectiveness {
	offense := make(map[string]float64)
	defense := make(map[string]float64)

	for _, key := range typeKeys {
		matchup, ok := e.catalog.GetType(key)
		if !ok {
			continue
		}
		applyModifier(offense, matchup.HalfDamageTo, halfDamageModifier)
		applyModifier(defense, matchup.HalfDamageFrom, halfDamageModifier)
		applyModifier(offense, matchup.DoubleDamageTo, doubleDamageModifier)
		applyModifier(defense, matchup.DoubleDamageFrom, doubleDamageModifier)
	}

	return &godex.Effectiveness{
		Offense: finalizeMultipliers(offense),
		Defense: finalizeMultipliers(defense),
	}
}

// creatureEffectiveness memoises Effectiveness per creature key
func (e *engine) creatureEffectiveness(def *godex.CreatureDef) *godex.Effectiveness {
	e.mu.Lock()
	defer e.mu.Unlock()

	if eff, ok := e.memo[def.Key]; ok {
		return eff
	}
	eff := e.Effectiveness(def.Types)
	e.memo[def.Key] = eff
	return eff
}

func applyModifier(into map[string]float64, targets []string, modifier float64) {
	for _, target := range targets {
		if current, ok := into[target]; ok {
			into[target] = current * modifier
			continue
		}
		into[target] = modifier
	}
}

// finalizeMultipliers rounds every value and drops the ones with no effect
func finalizeMultipliers(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for key, value := range raw {
		rounded := round2(value)
		if rounded == 1 {
			continue
		}
		out[key] = rounded
	}
	return out
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
