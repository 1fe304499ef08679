package dex

import (
	"github.com/KirkDiggler/godex/internal/entities/godex"
)

// GetCreatureInput defines the request for looking up a creature
type GetCreatureInput struct {
	Search string
}

// GetCreatureOutput defines the response for looking up a creature
type GetCreatureOutput struct {
	Creature *godex.BuiltCreature
}

// EvaluateMoveInput defines the request for evaluating a move
type EvaluateMoveInput struct {
	Search string
}

// EvaluateMoveOutput defines the response for evaluating a move
type EvaluateMoveOutput struct {
	Metrics *godex.MoveMetrics
}

// CalculateStatsInput defines the request for CP and HP at a level.
// A zero Level means the reference level.
type CalculateStatsInput struct {
	Search string
	Level  float64
	IVs    godex.IVs
}

// CalculateStatsOutput defines the response for CP and HP at a level
type CalculateStatsOutput struct {
	Creature    *godex.CreatureDef
	Level       float64
	IVs         godex.IVs
	CP          int
	HP          int
	PowerUpCost int
}

// GetFamilyTreeInput defines the request for resolving a family
type GetFamilyTreeInput struct {
	Search string
}

// GetFamilyTreeOutput defines the response for resolving a family
type GetFamilyTreeOutput struct {
	Creature *godex.CreatureDef
	Family   *godex.FamilyTree
}

// CanEvolveInput defines the request for projecting evolutions
type CanEvolveInput struct {
	Search string
	CP     int
	Candy  int
}

// CanEvolveOutput defines the response for projecting evolutions
type CanEvolveOutput struct {
	Creature   *godex.CreatureDef
	Projection *godex.EvolutionProjection
}

// RollIVsInput defines the request for rolling a random IV spread.
// A zero Level means the reference level.
type RollIVsInput struct {
	Search string
	Level  float64
}

// RollIVsOutput defines the response for rolling a random IV spread
type RollIVsOutput struct {
	Creature *godex.CreatureDef
	Level    float64
	IVs      godex.IVs
	CP       int
	HP       int
}

// ListCreaturesInput defines the request for listing creatures.
// An empty Type lists the whole catalog.
type ListCreaturesInput struct {
	Type string
}

// ListCreaturesOutput defines the response for listing creatures
type ListCreaturesOutput struct {
	Creatures []*godex.CreatureDef
}
