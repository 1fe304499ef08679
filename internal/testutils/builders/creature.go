// Package builders provides test data builders for creating catalog fixtures
package builders

import (
	"strings"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// CreatureBuilder provides a fluent interface for building test CreatureDef instances
type CreatureBuilder struct {
	def *godex.CreatureDef
}

// NewCreatureBuilder creates a single-typed normal creature that knows
// tackle and body-slam, the moves in the default fixture move set.
func NewCreatureBuilder(key string) *CreatureBuilder {
	return &CreatureBuilder{
		def: &godex.CreatureDef{
			Key:         key,
			ID:          1,
			Name:        strings.ToUpper(key[:1]) + key[1:],
			Types:       []string{"normal"},
			BaseStats:   godex.BaseStats{Attack: 100, Defense: 100, Stamina: 100},
			QuickMoves:  []string{"tackle"},
			ChargeMoves: []string{"body-slam"},
		},
	}
}

// WithID sets the numeric id
func (b *CreatureBuilder) WithID(id int) *CreatureBuilder {
	b.def.ID = id
	return b
}

// WithName sets the display name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.def.Name = name
	return b
}

// WithTypes replaces the type keys
func (b *CreatureBuilder) WithTypes(types ...string) *CreatureBuilder {
	b.def.Types = types
	return b
}

// WithBaseStats sets attack, defense and stamina
func (b *CreatureBuilder) WithBaseStats(attack, defense, stamina int) *CreatureBuilder {
	b.def.BaseStats = godex.BaseStats{Attack: attack, Defense: defense, Stamina: stamina}
	return b
}

// WithQuickMoves replaces the quick move keys
func (b *CreatureBuilder) WithQuickMoves(keys ...string) *CreatureBuilder {
	b.def.QuickMoves = keys
	return b
}

// WithChargeMoves replaces the charge move keys
func (b *CreatureBuilder) WithChargeMoves(keys ...string) *CreatureBuilder {
	b.def.ChargeMoves = keys
	return b
}

// EvolvesFrom sets the previous stage
func (b *CreatureBuilder) EvolvesFrom(key string) *CreatureBuilder {
	b.def.EvolvesFrom = key
	return b
}

// EvolvesTo sets the next stages and the candy needed to reach them
func (b *CreatureBuilder) EvolvesTo(candy int, keys ...string) *CreatureBuilder {
	b.def.EvolvesTo = keys
	b.def.CandyCost = candy
	return b
}

// WithCPM sets the evolution multiplier range; pass min == max for a
// single value
func (b *CreatureBuilder) WithCPM(minCPM, maxCPM float64) *CreatureBuilder {
	b.def.CPM = &godex.CPMRange{Min: minCPM, Max: maxCPM}
	return b
}

// Build returns the built CreatureDef
func (b *CreatureBuilder) Build() *godex.CreatureDef {
	return b.def
}
