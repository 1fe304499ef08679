// Package engine derives combat figures from the catalog: type
// effectiveness, move DPS, CP and HP by level, evolution families and
// roster coverage.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/godex/internal/engine Engine

import (
	"github.com/KirkDiggler/godex/internal/entities/godex"
	"github.com/KirkDiggler/godex/internal/repositories/catalog"
)

// Engine provides the creature statistics calculations. Lookups that miss
// the catalog report ok == false; formula inputs outside the level table
// or the IV range are errors.
type Engine interface {
	// Catalog returns the catalog the engine reads from
	Catalog() catalog.Repository

	// Type and move metrics
	Effectiveness(typeKeys []string) *godex.Effectiveness
	EvaluateMove(search string) (*godex.MoveMetrics, bool)

	// Creature construction
	BuildCreature(search string) (*godex.BuiltCreature, bool)

	// Level formulas
	CP(def *godex.CreatureDef, level float64, ivs godex.IVs) (int, error)
	HP(def *godex.CreatureDef, level float64, staminaIV int) (int, error)
	PowerUpCost(level float64) (int, error)

	// Evolution families
	ResolveFamilyTree(def *godex.CreatureDef) *godex.FamilyTree
	CanEvolve(def *godex.CreatureDef, cp, candy int) *godex.EvolutionProjection

	// NewRoster starts an empty roster backed by this engine
	NewRoster() *Roster
}
