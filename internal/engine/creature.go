package engine

import (
	"log/slog"
	"maps"

	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// BuildCreature resolves search against the catalog and attaches the
// derived combat figures. Each call returns a fresh value.
func (e *engine) BuildCreature(search string) (*godex.BuiltCreature, bool) {
	def, ok := e.catalog.GetCreature(search)
	if !ok {
		return nil, false
	}

	eff := e.creatureEffectiveness(def)
	quick, bestQuick := evaluateMoveSet(def.QuickMoves, e.catalog.GetQuickMove)
	charge, bestCharge := evaluateMoveSet(def.ChargeMoves, e.catalog.GetChargeMove)

	built := &godex.BuiltCreature{
		Def:            def,
		Offense:        maps.Clone(eff.Offense),
		Defense:        maps.Clone(eff.Defense),
		QuickMoves:     quick,
		ChargeMoves:    charge,
		BestQuickMove:  bestQuick,
		BestChargeMove: bestCharge,
		Level:          e.referenceLevel.Level,
		CP:             calculateCP(def.BaseStats, godex.IVs{}, e.referenceLevel.CPMultiplier),
		HP:             calculateHP(def.BaseStats, 0, e.referenceLevel.CPMultiplier),
		PowerUpCost:    e.referenceLevel.PowerUpCost,
		MaxCP:          calculateCP(def.BaseStats, godex.PerfectIVs, e.maxLevel.CPMultiplier),
		Family:         e.ResolveFamilyTree(def),
	}

	slog.Debug("built creature",
		"key", def.Key,
		"cp", built.CP,
		"max_cp", built.MaxCP)

	return built, true
}
